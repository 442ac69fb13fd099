// Package report renders character inventories.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/charinv/internal/charset"
)

const (
	// TopN is the number of entries in the frequency list.
	TopN = 50
	// ChineseLineWidth is the number of characters per line in the chinese section.
	ChineseLineWidth = 80
	// GlyphLineWidth is the number of characters per line in the glyph inventory.
	GlyphLineWidth = 100

	timestampLayout = "2006-01-02 15:04:05"
)

const (
	titleLine     = "# Characters extracted from project files"
	topHeader     = "# === Top 50 most frequent characters ==="
	glyphsHeader  = "# === All characters (font glyph set) ==="
	sectionFormat = "# === %s ==="
)

var sectionTitles = map[charset.Category]string{
	charset.ASCIILetters:   "ASCII letters",
	charset.ASCIIDigits:    "ASCII digits",
	charset.ASCIISymbols:   "ASCII symbols",
	charset.Chinese:        "Chinese characters",
	charset.ChineseSymbols: "Chinese symbols",
	charset.Whitespace:     "Whitespace",
	charset.Other:          "Other characters",
}

// SectionTitle returns the human title of a category.
func SectionTitle(c charset.Category) string {
	return sectionTitles[c]
}

// Lines renders the report for inv as individual lines.
func Lines(inv *charset.Inventory, generatedAt time.Time) []string {
	classified := charset.ClassifyAll(inv.Chars())

	lines := []string{
		titleLine,
		"# Generated: " + generatedAt.Format(timestampLayout),
		fmt.Sprintf("# Unique characters: %d", inv.Len()),
		fmt.Sprintf("# Total occurrences: %d", inv.Total()),
		"",
	}

	for _, cat := range charset.Categories {
		chars := classified[cat]
		if len(chars) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf(sectionFormat, sectionTitles[cat]))
		switch cat {
		case charset.Chinese:
			lines = append(lines, WrapRunes(string(chars), ChineseLineWidth)...)
		case charset.Whitespace:
			labels := make([]string, len(chars))
			for i, r := range chars {
				labels[i] = WhitespaceLabel(r)
			}
			lines = append(lines, strings.Join(labels, " "))
		default:
			lines = append(lines, string(chars))
		}
		lines = append(lines, "")
	}

	if top := TopCharsByFrequency(inv, TopN); len(top) > 0 {
		lines = append(lines, topHeader)
		for _, cc := range top {
			lines = append(lines, fmt.Sprintf("# %s (occurs %d times)", DisplayChar(cc.Char), cc.Count))
		}
		lines = append(lines, "")
	}

	if glyphs := GlyphInventory(inv); glyphs != "" {
		lines = append(lines, glyphsHeader)
		lines = append(lines, WrapRunes(glyphs, GlyphLineWidth)...)
	}
	return lines
}

// GlyphInventory returns every printable character of inv sorted by code
// point, for use as font subset input.
func GlyphInventory(inv *charset.Inventory) string {
	var b strings.Builder
	for _, r := range inv.Sorted() {
		if GlyphChar(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Render returns the full report text.
func Render(inv *charset.Inventory, generatedAt time.Time) string {
	return strings.Join(Lines(inv, generatedAt), "\n")
}

// Write renders the report and writes it to path as UTF-8.
func Write(path string, inv *charset.Inventory, generatedAt time.Time) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(Render(inv, generatedAt)), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
