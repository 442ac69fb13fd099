package report

import "fmt"

// WrapRunes splits text into lines of at most width characters.
func WrapRunes(text string, width int) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{text}
	}
	lines := make([]string, 0, (len(runes)+width-1)/width)
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		lines = append(lines, string(runes[start:end]))
	}
	return lines
}

// WhitespaceLabel names a whitespace character for the whitespace section.
func WhitespaceLabel(r rune) string {
	switch r {
	case ' ':
		return "space"
	case '\t':
		return "tab"
	case '\n':
		return "newline"
	case '\r':
		return "carriage-return"
	default:
		return fmt.Sprintf("U+%04X", r)
	}
}

// DisplayChar renders a character for the frequency list.
func DisplayChar(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	case ' ':
		return "space"
	default:
		return string(r)
	}
}

// GlyphChar reports whether r belongs in the flattened glyph inventory.
func GlyphChar(r rune) bool {
	return r >= 32
}
