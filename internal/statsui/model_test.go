package statsui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/textstat/internal/stats"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewRendersOverview(t *testing.T) {
	m := NewModel("sample.txt", stats.Analyze("aab\n\nc"))
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	out := m.View()
	for _, want := range []string{"Overview", "Characters", "Empty lines", "Distinct", "sample.txt", "Most frequent"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestViewEmptyBeforeSize(t *testing.T) {
	m := NewModel("sample.txt", stats.Analyze("abc"))
	if m.View() != "" {
		t.Fatalf("expected empty view before window size is known")
	}
}

func TestMoveTabWraps(t *testing.T) {
	m := NewModel("sample.txt", stats.Analyze("abc"))
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabFrequency {
		t.Fatalf("expected frequency tab, got %d", m.activeTab)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.activeTab != tabOverview {
		t.Fatalf("expected wrap to overview, got %d", m.activeTab)
	}
	m.Update(runeKey("h"))
	if m.activeTab != tabFrequency {
		t.Fatalf("expected wrap back to frequency, got %d", m.activeTab)
	}
}

func TestToggleSortReordersRows(t *testing.T) {
	m := NewModel("sample.txt", stats.Analyze("abbccc"))
	rows := m.freqTable.Rows()
	if rows[0][1] != "a" {
		t.Fatalf("expected first-seen order, got %v", rows)
	}

	m.Update(runeKey("s"))
	if m.sort != sortFirstSeen {
		t.Fatalf("sort toggled outside frequency tab")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(runeKey("s"))
	if m.sort != sortByCount {
		t.Fatalf("expected count sort")
	}
	rows = m.freqTable.Rows()
	if rows[0][1] != "c" || rows[0][3] != "3" || rows[0][4] != "50.00%" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
}

func TestBuildFreqRowsLabelsWhitespace(t *testing.T) {
	rows := buildFreqRows(stats.Analyze("a b\n"), sortFirstSeen)
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[1][1] != "<space>" || rows[1][2] != "U+0020" {
		t.Fatalf("unexpected space row: %v", rows[1])
	}
	if rows[3][1] != `\n` {
		t.Fatalf("unexpected newline row: %v", rows[3])
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel("sample.txt", stats.Analyze("abc"))
	_, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestFrequencyTabWithEmptyText(t *testing.T) {
	m := NewModel("empty.txt", stats.Analyze(""))
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if !strings.Contains(m.View(), "No characters found.") {
		t.Fatalf("expected empty notice")
	}
}

func TestTruncateLineCountsTerminalCells(t *testing.T) {
	got := truncateLine("File: 世界世界世界.txt", 12)
	if runewidth.StringWidth(got) > 12 {
		t.Fatalf("truncated line %q is %d cells wide", got, runewidth.StringWidth(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis, got %q", got)
	}
	if truncateLine("short", 12) != "short" {
		t.Fatalf("short line should be unchanged")
	}
}
