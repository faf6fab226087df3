// Package model defines shared data structures.
package model

import "iter"

// TextStatistics is the result of analyzing one text.
type TextStatistics struct {
	CharacterCount int
	LineCount      int
	EmptyLineCount int
	Frequency      Frequency
}

// Distinct returns the number of distinct characters.
func (s TextStatistics) Distinct() int {
	return s.Frequency.Len()
}

// CharCount pairs a character with its number of occurrences.
type CharCount struct {
	Char  rune
	Count int
}

// Frequency maps characters to occurrence counts, iterating in first-occurrence order.
// The zero value is an empty mapping.
type Frequency struct {
	order  []rune
	counts map[rune]int
}

// Len returns the number of distinct characters.
func (f Frequency) Len() int {
	return len(f.order)
}

// Count returns the occurrences of r, zero when absent.
func (f Frequency) Count(r rune) int {
	return f.counts[r]
}

// Runes returns the distinct characters in first-occurrence order.
func (f Frequency) Runes() []rune {
	out := make([]rune, len(f.order))
	copy(out, f.order)
	return out
}

// All iterates characters and counts in first-occurrence order.
func (f Frequency) All() iter.Seq2[rune, int] {
	return func(yield func(rune, int) bool) {
		for _, r := range f.order {
			if !yield(r, f.counts[r]) {
				return
			}
		}
	}
}

// Entries returns the mapping as a slice in first-occurrence order.
func (f Frequency) Entries() []CharCount {
	out := make([]CharCount, 0, len(f.order))
	for r, n := range f.All() {
		out = append(out, CharCount{Char: r, Count: n})
	}
	return out
}

// Total returns the sum of all counts.
func (f Frequency) Total() int {
	total := 0
	for _, n := range f.counts {
		total += n
	}
	return total
}

// FrequencyBuilder accumulates a Frequency one character at a time.
type FrequencyBuilder struct {
	order  []rune
	counts map[rune]int
}

// Add increments the count for r, recording it on first sight.
func (b *FrequencyBuilder) Add(r rune) {
	if b.counts == nil {
		b.counts = map[rune]int{}
	}
	if _, ok := b.counts[r]; !ok {
		b.order = append(b.order, r)
	}
	b.counts[r]++
}

// Build returns the accumulated Frequency and resets the builder.
func (b *FrequencyBuilder) Build() Frequency {
	f := Frequency{order: b.order, counts: b.counts}
	b.order = nil
	b.counts = nil
	return f
}

// ReportSections selects which parts of a TextStatistics are rendered.
type ReportSections struct {
	Chars      bool
	Lines      bool
	EmptyLines bool
	Freq       bool
}

// AllSections selects every section.
func AllSections() ReportSections {
	return ReportSections{Chars: true, Lines: true, EmptyLines: true, Freq: true}
}

// Any reports whether at least one section is selected.
func (s ReportSections) Any() bool {
	return s.Chars || s.Lines || s.EmptyLines || s.Freq
}
