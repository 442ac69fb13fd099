package scan

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestDiscoverPrunesAndFilters(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "Assets", "b.cs"), "b")
	writeFile(t, filepath.Join(dir, "Assets", "b.cs.meta"), "meta")
	writeFile(t, filepath.Join(dir, "Library", "c.txt"), "c")
	writeFile(t, filepath.Join(dir, "sub", "Temp", "d.txt"), "d")
	writeFile(t, filepath.Join(dir, "sub", "Build", "e.json"), "e")
	writeFile(t, filepath.Join(dir, ".git", "f.txt"), "f")
	writeFile(t, filepath.Join(dir, "image.png"), "png")

	files, err := Discover(context.Background(), []string{dir, filepath.Join(dir, "missing")}, NewSelector(nil, nil))
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	want := []string{
		filepath.Join(dir, "Assets", "b.cs"),
		filepath.Join(dir, "a.txt"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Fatalf("unexpected files:\n got %v\nwant %v", files, want)
	}
}

func TestDiscoverDeduplicatesOverlappingRoots(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Assets", "x.txt"), "x")

	files, err := Discover(context.Background(), []string{dir, filepath.Join(dir, "Assets")}, NewSelector(nil, nil))
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %v", files)
	}
}

func TestRunSampleScenario(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sample.txt"), "Hi5! 你好。\n")
	writeFile(t, filepath.Join(dir, "Library", "ignored.txt"), "ZZZ")
	writeFile(t, filepath.Join(dir, "x.cs.meta"), "QQQ")

	res, err := Run(context.Background(), []string{dir}, NewSelector(nil, nil))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Files != 1 || res.Skipped != 0 {
		t.Fatalf("unexpected file counts: %+v", res)
	}
	if got := string(res.Inventory.Sorted()); got != "\n !5Hi。你好" {
		t.Fatalf("unexpected chars %q", got)
	}
	for _, r := range res.Inventory.Chars() {
		if res.Inventory.Count(r) != 1 {
			t.Fatalf("expected count 1 for %q, got %d", r, res.Inventory.Count(r))
		}
	}
	for _, r := range "ZQ" {
		if res.Inventory.Contains(r) {
			t.Fatalf("excluded file contributed %q", r)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "# 标题\nhello")
	writeFile(t, filepath.Join(dir, "b", "c.json"), `{"k": "值"}`)

	first, err := Run(context.Background(), []string{dir}, NewSelector(nil, nil))
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := Run(context.Background(), []string{dir}, NewSelector(nil, nil))
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !reflect.DeepEqual(first.Inventory.Counts(), second.Inventory.Counts()) {
		t.Fatalf("expected identical inventories")
	}
}

func TestRunSkipsUnreadableFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ok.txt"), "ok")
	if err := os.Symlink(filepath.Join(dir, "gone.txt"), filepath.Join(dir, "broken.txt")); err != nil {
		t.Skipf("symlink: %v", err)
	}

	res, err := Run(context.Background(), []string{dir}, NewSelector(nil, nil))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Files != 2 || res.Skipped != 1 {
		t.Fatalf("unexpected file counts: %+v", res)
	}
	if got := string(res.Inventory.Sorted()); got != "ko" {
		t.Fatalf("unexpected chars %q", got)
	}
}
