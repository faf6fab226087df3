package model

import "testing"

func TestFrequencyBuilderKeepsFirstOccurrenceOrder(t *testing.T) {
	var b FrequencyBuilder
	for _, r := range "banana" {
		b.Add(r)
	}
	f := b.Build()

	runes := f.Runes()
	if string(runes) != "ban" {
		t.Fatalf("unexpected order: %q", string(runes))
	}
	if f.Count('a') != 3 || f.Count('n') != 2 || f.Count('b') != 1 {
		t.Fatalf("unexpected counts: %+v", f.Entries())
	}
	if f.Count('z') != 0 {
		t.Fatalf("expected zero for absent char")
	}
	if f.Total() != 6 {
		t.Fatalf("expected total 6, got %d", f.Total())
	}
}

func TestFrequencyBuilderResetsAfterBuild(t *testing.T) {
	var b FrequencyBuilder
	b.Add('x')
	first := b.Build()
	b.Add('y')
	second := b.Build()

	if first.Len() != 1 || first.Count('x') != 1 {
		t.Fatalf("first frequency mutated: %+v", first.Entries())
	}
	if second.Len() != 1 || second.Count('x') != 0 {
		t.Fatalf("second frequency leaked state: %+v", second.Entries())
	}
}

func TestFrequencyZeroValue(t *testing.T) {
	var f Frequency
	if f.Len() != 0 || f.Total() != 0 || len(f.Entries()) != 0 {
		t.Fatalf("expected empty zero value")
	}
}

func TestFrequencyRunesReturnsCopy(t *testing.T) {
	var b FrequencyBuilder
	b.Add('a')
	f := b.Build()
	runes := f.Runes()
	runes[0] = 'z'
	if f.Runes()[0] != 'a' {
		t.Fatalf("Runes exposed internal slice")
	}
}

func TestReportSectionsAny(t *testing.T) {
	if (ReportSections{}).Any() {
		t.Fatalf("empty selection reported as non-empty")
	}
	if !(ReportSections{Freq: true}).Any() {
		t.Fatalf("expected selection to be non-empty")
	}
	if !AllSections().Any() {
		t.Fatalf("expected all sections to be non-empty")
	}
}
