// Package stats contains text statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/textstat/internal/model"
)

// Render prints the selected sections. An empty selection prints everything.
func Render(w io.Writer, st model.TextStatistics, sections model.ReportSections) error {
	if !sections.Any() {
		sections = model.AllSections()
	}
	if sections.Chars {
		if _, err := fmt.Fprintf(w, "Number of characters: %d\n", st.CharacterCount); err != nil {
			return err
		}
	}
	if sections.Lines {
		if _, err := fmt.Fprintf(w, "Number of lines: %d\n", st.LineCount); err != nil {
			return err
		}
	}
	if sections.EmptyLines {
		if _, err := fmt.Fprintf(w, "Number of empty lines: %d\n", st.EmptyLineCount); err != nil {
			return err
		}
	}
	if sections.Freq {
		return RenderFrequency(w, st.Frequency)
	}
	return nil
}

// RenderFrequency prints the frequency table in first-occurrence order.
// Characters are written raw, so a newline entry spans two lines.
func RenderFrequency(w io.Writer, freq model.Frequency) error {
	if _, err := fmt.Fprintln(w, "Character frequency:"); err != nil {
		return err
	}
	for r, n := range freq.All() {
		if _, err := fmt.Fprintf(w, "'%s': %d\n", string(r), n); err != nil {
			return err
		}
	}
	return nil
}

// RenderTop prints a ranked, column-aligned table of the n most frequent characters.
func RenderTop(w io.Writer, st model.TextStatistics, n int) error {
	if st.Distinct() == 0 {
		_, err := fmt.Fprintln(w, "No characters found.")
		return err
	}
	top := TopChars(st.Frequency, n)
	if _, err := fmt.Fprintf(w, "Top characters (%d of %d distinct)\n", len(top), st.Distinct()); err != nil {
		return err
	}
	headers := []string{"Char", "Count", "Share"}
	rows := make([][]string, 0, len(top))
	for _, cc := range top {
		rows = append(rows, []string{
			CharLabel(cc.Char),
			fmt.Sprintf("%d", cc.Count),
			fmt.Sprintf("%.2f%%", Share(cc.Count, st.CharacterCount)*100),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
