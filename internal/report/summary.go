package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/charinv/internal/charset"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

// Summary describes a finished run for terminal output.
type Summary struct {
	OutputPath string
	Files      int
	Skipped    int
	Inventory  *charset.Inventory
}

// CategoryRows returns one row per category with its character count and
// the first few characters as a sample.
func CategoryRows(inv *charset.Inventory) [][]string {
	classified := charset.ClassifyAll(inv.Chars())
	rows := make([][]string, 0, len(charset.Categories))
	for _, cat := range charset.Categories {
		chars := classified[cat]
		rows = append(rows, []string{
			SectionTitle(cat),
			fmt.Sprintf("%d", len(chars)),
			sample(cat, chars, 12),
		})
	}
	return rows
}

func sample(cat charset.Category, chars []rune, n int) string {
	if cat == charset.Whitespace {
		labels := make([]string, len(chars))
		for i, r := range chars {
			labels[i] = WhitespaceLabel(r)
		}
		return strings.Join(labels, " ")
	}
	if len(chars) > n {
		return string(chars[:n]) + "…"
	}
	return string(chars)
}

// RenderSummary prints the success banner and per-category counts.
func RenderSummary(w io.Writer, s Summary) error {
	color := shouldUseColor(w)
	style := func(st lipgloss.Style, v string) string {
		if !color {
			return v
		}
		return st.Render(v)
	}

	if _, err := fmt.Fprintln(w, style(successStyle, "Character extraction complete")); err != nil {
		return err
	}
	fields := [][2]string{
		{"Output file:", s.OutputPath},
		{"Files scanned:", fmt.Sprintf("%d (%d skipped)", s.Files, s.Skipped)},
		{"Unique characters:", fmt.Sprintf("%d", s.Inventory.Len())},
		{"Total occurrences:", fmt.Sprintf("%d", s.Inventory.Total())},
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(w, "%s %s\n", style(labelStyle, f[0]), style(valueStyle, f[1])); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, style(headingStyle, "Categories")); err != nil {
		return err
	}
	lines := formatTable([]string{"Category", "Count", "Sample"}, CategoryRows(s.Inventory), map[int]bool{1: true})
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
