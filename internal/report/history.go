package report

import (
	"fmt"
	"io"

	"github.com/verte-zerg/charinv/internal/model"
)

// RenderRuns prints recorded runs as a table, newest first.
func RenderRuns(w io.Writer, runs []model.RunSummary) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}
	headers := []string{"ID", "Finished", "Files", "Skipped", "Unique", "Occurrences", "Mode", "Output"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		mode := "all"
		if run.ChineseOnly {
			mode = "chinese"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", run.ID),
			run.EndedAt.Local().Format(timestampLayout),
			fmt.Sprintf("%d", run.FilesScanned),
			fmt.Sprintf("%d", run.FilesSkipped),
			fmt.Sprintf("%d", run.UniqueChars),
			fmt.Sprintf("%d", run.TotalOccurrences),
			mode,
			run.OutputPath,
		})
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderDiff prints the characters gained and lost between two runs.
func RenderDiff(w io.Writer, from, to int64, added, removed []rune) error {
	if _, err := fmt.Fprintf(w, "Changes from run %d to run %d\n", from, to); err != nil {
		return err
	}
	sections := []struct {
		title string
		chars []rune
	}{
		{"Added", added},
		{"Removed", removed},
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%s (%d):\n", s.title, len(s.chars)); err != nil {
			return err
		}
		for _, line := range WrapRunes(printable(s.chars), GlyphLineWidth) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}

func printable(chars []rune) string {
	out := make([]rune, 0, len(chars))
	for _, r := range chars {
		if GlyphChar(r) {
			out = append(out, r)
		}
	}
	return string(out)
}
