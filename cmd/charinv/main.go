// Package main provides the CLI entrypoint for charinv.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/charinv/internal/charset"
	"github.com/verte-zerg/charinv/internal/config"
	"github.com/verte-zerg/charinv/internal/inventoryui"
	"github.com/verte-zerg/charinv/internal/logger"
	"github.com/verte-zerg/charinv/internal/model"
	"github.com/verte-zerg/charinv/internal/report"
	"github.com/verte-zerg/charinv/internal/scan"
	"github.com/verte-zerg/charinv/internal/store"
)

const (
	defaultOutput        = "characters.txt"
	defaultChineseOutput = "chinese_characters.txt"
	defaultHistoryLimit  = 20
)

var (
	scanOutput      string
	scanChineseOnly bool
	scanKeepOutput  bool
	scanRecord      bool
	scanRoots       []string
	verbose         bool

	historyLimit int
	historyDiff  bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "charinv",
		Short:             "Extract the character inventory of a project for font glyph generation",
		SilenceUsage:      true,
		SilenceErrors:     false,
		Args:              cobra.NoArgs,
		PersistentPreRunE: setupLogger,
		RunE:              runScanCmd,
	}

	addScanFlags(rootCmd)
	rootCmd.Flags().BoolVar(&scanRecord, "record", false, "record the run in the history database")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newViewCmd())

	return rootCmd
}

func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&scanOutput, "output", "o", defaultOutput, "output file name")
	cmd.Flags().BoolVar(&scanChineseOnly, "chinese-only", false, "only keep CJK ideographs and CJK punctuation")
	cmd.Flags().BoolVar(&scanKeepOutput, "keep-output", false, "keep an explicit --output path when --chinese-only is set")
	cmd.Flags().StringSliceVar(&scanRoots, "root", scan.DefaultRoots, "directory to scan (repeatable)")
}

func setupLogger(_ *cobra.Command, _ []string) error {
	l, err := logger.New(verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	logger.Setup(l)
	return nil
}

type scanOutcome struct {
	cfg        model.Config
	result     scan.Result
	inventory  *charset.Inventory
	outputPath string
	startedAt  time.Time
}

func collect(cmd *cobra.Command) (scanOutcome, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return scanOutcome{}, fmt.Errorf("failed to load config: %w", err)
	}
	sc := fileCfg.Scan
	applyStringConfig(cmd, "output", &scanOutput, sc.Output)
	applyBoolConfig(cmd, "chinese-only", &scanChineseOnly, sc.ChineseOnly)
	applyBoolConfig(cmd, "keep-output", &scanKeepOutput, sc.KeepOutput)
	applyBoolConfig(cmd, "record", &scanRecord, sc.Record)
	applyStringSliceConfig(cmd, "root", &scanRoots, sc.Roots)

	cfg := model.Config{
		Roots:       scanRoots,
		Output:      scanOutput,
		ChineseOnly: scanChineseOnly,
		KeepOutput:  scanKeepOutput,
		Record:      scanRecord,
		Verbose:     verbose,
		Extensions:  sc.Extensions,
		Exclude:     sc.Exclude,
	}
	if err := validateConfig(cfg); err != nil {
		return scanOutcome{}, err
	}

	ctx := cmd.Context()
	logger.Info(ctx, "extracting characters", zap.Strings("roots", cfg.Roots))
	out := scanOutcome{cfg: cfg, startedAt: time.Now()}
	out.result, err = scan.Run(ctx, cfg.Roots, scan.NewSelector(cfg.Extensions, cfg.Exclude))
	if err != nil {
		return scanOutcome{}, err
	}
	out.inventory = out.result.Inventory

	explicitOutput := cmd.Flags().Changed("output") || sc.Output != nil
	out.outputPath = resolveOutputPath(cfg, explicitOutput)
	if cfg.ChineseOnly {
		out.inventory = out.inventory.Filter(charset.IsChinese)
		logger.Info(ctx, "kept chinese characters only", zap.Int("unique", out.inventory.Len()))
	}
	return out, nil
}

func runScanCmd(cmd *cobra.Command, _ []string) error {
	out, err := collect(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if err := report.Write(out.outputPath, out.inventory, time.Now()); err != nil {
		logger.Error(ctx, "failed to write report", zap.String("output", out.outputPath), zap.Error(err))
		return err
	}
	logger.Info(ctx, "report written", zap.String("output", out.outputPath))

	summary := report.Summary{
		OutputPath: out.outputPath,
		Files:      out.result.Files,
		Skipped:    out.result.Skipped,
		Inventory:  out.inventory,
	}
	if err := report.RenderSummary(cmd.OutOrStdout(), summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	if out.cfg.Record {
		if err := recordRun(ctx, out); err != nil {
			logger.Error(ctx, "failed to record run", zap.Error(err))
		}
	}
	return nil
}

func recordRun(ctx context.Context, out scanOutcome) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn(ctx, "failed to close db", zap.Error(cerr))
		}
	}()
	run := model.RunSummary{
		StartedAt:        out.startedAt,
		EndedAt:          time.Now(),
		OutputPath:       out.outputPath,
		ChineseOnly:      out.cfg.ChineseOnly,
		FilesScanned:     out.result.Files,
		FilesSkipped:     out.result.Skipped,
		UniqueChars:      out.inventory.Len(),
		TotalOccurrences: out.inventory.Total(),
	}
	id, err := st.InsertRun(ctx, run, out.inventory.Counts())
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	logger.Debug(ctx, "run recorded", zap.Int64("id", id))
	return nil
}

// resolveOutputPath applies the chinese-only default name. An explicit output
// path survives only when keep-output is set.
func resolveOutputPath(cfg model.Config, explicit bool) string {
	if !cfg.ChineseOnly {
		return cfg.Output
	}
	if cfg.KeepOutput && explicit {
		return cfg.Output
	}
	return defaultChineseOutput
}

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Scan and browse the character inventory",
		Args:  cobra.NoArgs,
		RunE:  runViewCmd,
	}
	addScanFlags(cmd)
	return cmd
}

func runViewCmd(cmd *cobra.Command, _ []string) error {
	out, err := collect(cmd)
	if err != nil {
		return err
	}
	summary := report.Summary{
		OutputPath: out.outputPath,
		Files:      out.result.Files,
		Skipped:    out.result.Skipped,
		Inventory:  out.inventory,
	}
	program := tea.NewProgram(inventoryui.NewModel(summary, time.Now()), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLimit, "last", defaultHistoryLimit, "number of runs to list (0 for all)")
	cmd.Flags().BoolVar(&historyDiff, "diff", false, "show characters added and removed by the latest run")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if historyLimit < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := cmd.Context()
	if !historyDiff {
		runs, err := st.ListRuns(ctx, historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}
		return report.RenderRuns(cmd.OutOrStdout(), runs)
	}

	runs, err := st.ListRuns(ctx, 2)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) < 2 {
		return fmt.Errorf("need at least two recorded runs to diff (found %d)", len(runs))
	}
	latest, previous := runs[0], runs[1]
	curr, err := st.ListRunChars(ctx, latest.ID)
	if err != nil {
		return fmt.Errorf("failed to load run %d: %w", latest.ID, err)
	}
	prev, err := st.ListRunChars(ctx, previous.ID)
	if err != nil {
		return fmt.Errorf("failed to load run %d: %w", previous.ID, err)
	}
	added, removed := report.DiffChars(prev, curr)
	return report.RenderDiff(cmd.OutOrStdout(), previous.ID, latest.ID, added, removed)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyStringSliceConfig(cmd *cobra.Command, name string, target *[]string, value []string) {
	if value == nil {
		return
	}
	if cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = append([]string(nil), value...)
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# charinv configuration
# Uncomment a value to enable it. CLI flags override config values.

[scan]
# roots = [%s]
# output = %q
# chinese-only = false     # Keep CJK ideographs and CJK punctuation only
# keep-output = false      # Keep an explicit output path with chinese-only
# record = false           # Record runs in the history database
# extensions = [%s]
# exclude = [%s]
`,
		quoteList(scan.DefaultRoots),
		defaultOutput,
		quoteList(scan.DefaultExtensions),
		quoteList(scan.DefaultExclude),
	)
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}

func validateConfig(cfg model.Config) error {
	if strings.TrimSpace(cfg.Output) == "" {
		return fmt.Errorf("--output must not be empty")
	}
	if len(cfg.Roots) == 0 {
		return fmt.Errorf("at least one --root is required")
	}
	if cfg.Extensions != nil && len(cfg.Extensions) == 0 {
		return fmt.Errorf("extensions must not be empty")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
