package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/charinv/internal/config"
	"github.com/verte-zerg/charinv/internal/model"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
}

func writeProjectFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestResolveOutputPath(t *testing.T) {
	cases := []struct {
		name     string
		cfg      model.Config
		explicit bool
		want     string
	}{
		{"plain", model.Config{Output: "out.txt"}, true, "out.txt"},
		{"chinese default", model.Config{Output: defaultOutput, ChineseOnly: true}, false, defaultChineseOutput},
		{"chinese overrides explicit", model.Config{Output: "mine.txt", ChineseOnly: true}, true, defaultChineseOutput},
		{"keep explicit", model.Config{Output: "mine.txt", ChineseOnly: true, KeepOutput: true}, true, "mine.txt"},
		{"keep without explicit", model.Config{Output: defaultOutput, ChineseOnly: true, KeepOutput: true}, false, defaultChineseOutput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveOutputPath(tc.cfg, tc.explicit); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestValidateConfig(t *testing.T) {
	if err := validateConfig(model.Config{Output: "x", Roots: []string{"."}}); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	if err := validateConfig(model.Config{Output: " ", Roots: []string{"."}}); err == nil {
		t.Fatalf("expected error for empty output")
	}
	if err := validateConfig(model.Config{Output: "x"}); err == nil {
		t.Fatalf("expected error for missing roots")
	}
	if err := validateConfig(model.Config{Output: "x", Roots: []string{"."}, Extensions: []string{}}); err == nil {
		t.Fatalf("expected error for empty extensions")
	}
}

func TestDefaultConfigTemplateIsValidTOML(t *testing.T) {
	var uncommented []string
	for _, line := range strings.Split(defaultConfigTemplate(), "\n") {
		if strings.HasPrefix(line, "# ") && strings.Contains(line, "=") {
			line = strings.TrimPrefix(line, "# ")
		}
		uncommented = append(uncommented, line)
	}
	var cfg config.FileConfig
	if _, err := toml.Decode(strings.Join(uncommented, "\n"), &cfg); err != nil {
		t.Fatalf("template does not decode: %v", err)
	}
	if cfg.Scan.Output == nil || *cfg.Scan.Output != defaultOutput {
		t.Fatalf("unexpected output in template: %v", cfg.Scan.Output)
	}
	if len(cfg.Scan.Exclude) == 0 {
		t.Fatalf("expected exclude list in template")
	}
}

func TestApplyStringSliceConfigRespectsFlags(t *testing.T) {
	var roots []string
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().StringSliceVar(&roots, "root", []string{"."}, "")

	applyStringSliceConfig(cmd, "root", &roots, []string{"src"})
	if len(roots) != 1 || roots[0] != "src" {
		t.Fatalf("expected config roots, got %v", roots)
	}
	if err := cmd.Flags().Set("root", "cli"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	applyStringSliceConfig(cmd, "root", &roots, []string{"src"})
	if len(roots) != 1 || roots[0] != "cli" {
		t.Fatalf("expected flag to win, got %v", roots)
	}
}

func TestRootCommandWritesReport(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	writeProjectFile(t, filepath.Join(dir, "Assets", "dialog.json"), `{"text": "你好，世界。"}`)
	writeProjectFile(t, filepath.Join(dir, "Library", "cache.txt"), "IGNORED")
	out := filepath.Join(dir, "characters.txt")

	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--root", dir, "--output", out})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "# === Chinese characters ===") {
		t.Fatalf("expected chinese section:\n%s", text)
	}
	if !strings.Contains(text, "# === ASCII letters ===\netx\n") {
		t.Fatalf("excluded file contributed characters:\n%s", text)
	}
	if !strings.Contains(buf.String(), "Character extraction complete") {
		t.Fatalf("expected summary, got:\n%s", buf.String())
	}
}

func TestRootCommandChineseOnly(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	writeProjectFile(t, filepath.Join(dir, "a.txt"), "A你好。1")
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--root", ".", "--chinese-only", "--output", "ignored.txt"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "ignored.txt")); !os.IsNotExist(err) {
		t.Fatalf("expected explicit output to be overridden")
	}
	data, err := os.ReadFile(filepath.Join(dir, defaultChineseOutput))
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	lines := strings.Split(string(data), "\n")
	if lines[len(lines)-1] != "。你好" {
		t.Fatalf("unexpected glyph line %q", lines[len(lines)-1])
	}
	if !strings.Contains(string(data), "# Unique characters: 3") {
		t.Fatalf("expected 3 unique characters:\n%s", data)
	}
}

func TestRootCommandWriteFailure(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	writeProjectFile(t, filepath.Join(dir, "a.txt"), "abc")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--root", dir, "--output", dir})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error when output is a directory")
	}
}

func TestRecordAndHistoryDiff(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	out := filepath.Join(t.TempDir(), "characters.txt")

	for _, content := range []string{"ab", "bc你"} {
		writeProjectFile(t, src, content)
		cmd := newRootCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetArgs([]string{"--root", dir, "--output", out, "--record"})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}
	}

	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"history", "--diff"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(buf.String(), "Added (2):\nc你\n") {
		t.Fatalf("unexpected diff:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Removed (1):\na\n") {
		t.Fatalf("unexpected diff:\n%s", buf.String())
	}

	cmd = newRootCmd()
	buf.Reset()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"history"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("history: %v", err)
	}
	if lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"); len(lines) != 3 {
		t.Fatalf("expected header and 2 runs, got:\n%s", buf.String())
	}
}
