// Package stats contains text statistics calculations and reporting.
package stats

import (
	"fmt"
	"sort"
	"unicode"

	"github.com/verte-zerg/textstat/internal/model"
)

// TopChars returns the n most frequent characters. Ties keep first-occurrence order.
// A non-positive n returns every character.
func TopChars(freq model.Frequency, n int) []model.CharCount {
	items := freq.Entries()
	if len(items) == 0 {
		return nil
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
	if n <= 0 || n > len(items) {
		n = len(items)
	}
	return items[:n]
}

// CharLabel returns a printable label for a character.
func CharLabel(r rune) string {
	switch r {
	case ' ':
		return "<space>"
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	}
	if !unicode.IsPrint(r) {
		return fmt.Sprintf("%U", r)
	}
	return string(r)
}
