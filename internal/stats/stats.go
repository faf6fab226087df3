// Package stats contains text statistics calculations and reporting.
package stats

import (
	"strings"

	"github.com/verte-zerg/textstat/internal/model"
)

const emptyLineMarker = "\n\n"

// Analyze computes character, line, empty-line and frequency statistics in one pass.
func Analyze(text string) model.TextStatistics {
	var (
		freq     model.FrequencyBuilder
		chars    int
		newlines int
	)
	for _, r := range text {
		chars++
		if r == '\n' {
			newlines++
		}
		freq.Add(r)
	}
	return model.TextStatistics{
		CharacterCount: chars,
		LineCount:      newlines + 1,
		EmptyLineCount: CountEmptyLines(text),
		Frequency:      freq.Build(),
	}
}

// CountEmptyLines counts non-overlapping occurrences of "\n\n".
// Three consecutive newlines count once.
func CountEmptyLines(text string) int {
	return strings.Count(text, emptyLineMarker)
}

// Share returns part as a fraction of total, zero when total is zero.
func Share(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total)
}
