package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Char", "Count", "Share"}
	rows := [][]string{
		{"a", "12", "97.50%"},
		{"<space>", "3", "8.00%"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Char    Count  Share" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "a          12 97.50%" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "<space>     3  8.00%" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"Char", "Count"}, [][]string{{"世", "1"}}, map[int]bool{1: true})
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[1] != "世       1" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}

func TestFormatTableEmpty(t *testing.T) {
	if lines := formatTable(nil, nil, nil); lines != nil {
		t.Fatalf("expected nil, got %v", lines)
	}
}
