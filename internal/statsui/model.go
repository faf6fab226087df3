// Package statsui provides the Bubble Tea text statistics interface.
package statsui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/textstat/internal/model"
	"github.com/verte-zerg/textstat/internal/stats"
)

const (
	tabOverview = iota
	tabFrequency
)

const overviewTopChars = 10

type sortMode int

const (
	sortFirstSeen sortMode = iota
	sortByCount
)

func (s sortMode) String() string {
	if s == sortByCount {
		return "count"
	}
	return "first seen"
}

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model implements the Bubble Tea stats UI for a single analyzed file.
type Model struct {
	path  string
	stats model.TextStatistics

	tabs      []string
	activeTab int
	overview  viewport.Model
	freqTable table.Model
	sort      sortMode

	width  int
	height int
}

// NewModel constructs a stats UI model.
func NewModel(path string, st model.TextStatistics) *Model {
	m := &Model{
		path:     path,
		stats:    st,
		tabs:     []string{"Overview", "Frequency"},
		overview: viewport.New(0, 0),
	}
	m.freqTable = buildFreqTable(st, m.sort, 0, 1)
	m.overview.SetContent(renderOverview(st, 0))
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "s":
			if m.activeTab == tabFrequency {
				m.toggleSort()
			}
			return m, nil
		}
		var cmd tea.Cmd
		if m.activeTab == tabFrequency {
			m.freqTable, cmd = m.freqTable.Update(msg)
		} else {
			m.overview, cmd = m.overview.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(), m.width, bodyHeight)
	footer := fitLines(m.renderHelp(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := max(1, lipgloss.Height(activeNavStyle.Render("X")))
	headerHeight = tabsHeight + 1
	footerHeight = 1
	bodyHeight = max(1, m.height-headerHeight-footerHeight)
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.overview.Width = m.width
	m.overview.Height = bodyHeight
	m.overview.SetContent(renderOverview(m.stats, m.width))
	m.freqTable.SetWidth(m.width)
	m.freqTable.SetHeight(max(1, bodyHeight-1))
}

func (m *Model) moveTab(delta int) {
	m.activeTab = (m.activeTab + delta + len(m.tabs)) % len(m.tabs)
	if m.activeTab == tabFrequency {
		m.freqTable.Focus()
	} else {
		m.freqTable.Blur()
	}
}

func (m *Model) toggleSort() {
	if m.sort == sortFirstSeen {
		m.sort = sortByCount
	} else {
		m.sort = sortFirstSeen
	}
	m.freqTable.SetRows(buildFreqRows(m.stats, m.sort))
	m.freqTable.GotoTop()
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	summary := fmt.Sprintf("File: %s  sort: %s", m.path, m.sort)
	return m.renderTabs() + "\n" + headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderHelp() string {
	help := "Nav: left/right  Scroll: up/down/pgup/pgdn  Quit: q"
	if m.activeTab == tabFrequency {
		help = "Nav: left/right  Scroll: up/down/pgup/pgdn  Sort: s  Quit: q"
	}
	return headerStyle.Render(help)
}

func (m *Model) renderBody() string {
	if m.activeTab == tabFrequency {
		if m.stats.Distinct() == 0 {
			return "No characters found."
		}
		return tableMutedStyle.Render(m.freqTable.View())
	}
	return m.overview.View()
}

func renderOverview(st model.TextStatistics, width int) string {
	cards := []string{
		metricCard("Characters", fmt.Sprintf("%d", st.CharacterCount)),
		metricCard("Lines", fmt.Sprintf("%d", st.LineCount)),
		metricCard("Empty lines", fmt.Sprintf("%d", st.EmptyLineCount)),
		metricCard("Distinct", fmt.Sprintf("%d", st.Distinct())),
	}
	var summary string
	if width > 0 && width < 60 {
		summary = strings.Join(cards, "\n")
	} else {
		summary = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	top := stats.TopChars(st.Frequency, overviewTopChars)
	if len(top) == 0 {
		return summary
	}
	lines := []string{cardTitleStyle.Render("Most frequent")}
	for _, cc := range top {
		share := stats.Share(cc.Count, st.CharacterCount) * 100
		lines = append(lines, fmt.Sprintf("%-8s %8d %7.2f%%", stats.CharLabel(cc.Char), cc.Count, share))
	}
	return summary + "\n\n" + strings.Join(lines, "\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func buildFreqTable(st model.TextStatistics, mode sortMode, width, height int) table.Model {
	t := table.New(
		table.WithColumns(freqColumns()),
		table.WithRows(buildFreqRows(st, mode)),
		table.WithHeight(max(1, height-1)),
	)
	t.SetWidth(width)
	t.SetStyles(freqTableStyles())
	return t
}

func freqColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 5},
		{Title: "Char", Width: 8},
		{Title: "Code", Width: 8},
		{Title: "Count", Width: 10},
		{Title: "Share", Width: 8},
	}
}

func buildFreqRows(st model.TextStatistics, mode sortMode) []table.Row {
	entries := st.Frequency.Entries()
	if mode == sortByCount {
		entries = stats.TopChars(st.Frequency, 0)
	}
	rows := make([]table.Row, 0, len(entries))
	for i, cc := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			stats.CharLabel(cc.Char),
			fmt.Sprintf("%U", cc.Char),
			fmt.Sprintf("%d", cc.Count),
			fmt.Sprintf("%.2f%%", stats.Share(cc.Count, st.CharacterCount)*100),
		})
	}
	return rows
}

func freqTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
