package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ontop/internal/storage"
)

// Runs browser layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the level sidebar
	sidebarWidth       = 24
	maxRuns            = 100
)

// allLevels is the sidebar entry listing recent runs on every level.
const allLevels = "All levels"

// RunSource is the part of the store the runs browser reads.
type RunSource interface {
	RecentRuns(limit int) ([]storage.RunEntry, error)
	BestRuns(level string, limit int) ([]storage.RunEntry, error)
	Stats() ([]storage.LevelStats, error)
}

// RunsKeyMap defines the key bindings for the runs browser.
type RunsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev level"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next level"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next level"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for browsing the run log.
type RunsModel struct {
	source      RunSource
	levels      []string // allLevels followed by every played level
	stats       map[string]storage.LevelStats
	cursor      int
	runs        []storage.RunEntry
	err         error
	table       table.Model
	help        help.Model
	keys        RunsKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewRunsModel creates a runs browser over a store.
func NewRunsModel(source RunSource, width, height int) RunsModel {
	h := help.New()
	h.ShowAll = false

	m := RunsModel{
		source:      source,
		levels:      []string{allLevels},
		stats:       make(map[string]storage.LevelStats),
		keys:        DefaultRunsKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	if stats, err := source.Stats(); err != nil {
		m.err = err
	} else {
		for _, st := range stats {
			m.levels = append(m.levels, st.Level)
			m.stats[st.Level] = st
		}
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Level", Width: 12},
		{Title: "Outcome", Width: 9},
		{Title: "Time", Width: 7},
		{Title: "Kills", Width: 5},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// selectedLevel returns the level under the cursor, "" for all levels.
func (m *RunsModel) selectedLevel() string {
	if m.cursor == 0 {
		return ""
	}
	return m.levels[m.cursor]
}

// loadRuns shows recent runs for all levels or the fastest wins on one.
func (m *RunsModel) loadRuns() {
	var (
		runs []storage.RunEntry
		err  error
	)
	if lvl := m.selectedLevel(); lvl == "" {
		runs, err = m.source.RecentRuns(maxRuns)
	} else {
		runs, err = m.source.BestRuns(lvl, maxRuns)
	}
	if err != nil {
		m.err = err
		runs = nil
	}
	m.runs = runs
	m.updateTableRows()
}

func (m *RunsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.ID),
			r.Level,
			outcomeLabel(r),
			formatDuration(r.Duration),
			fmt.Sprintf("%d", r.Kills),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func outcomeLabel(r storage.RunEntry) string {
	if r.Outcome == storage.OutcomeDied && r.Cause != "" {
		return r.Cause
	}
	return r.Outcome
}

// formatDuration renders a run time as M:SS.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the runs browser.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.Right):
			m.cursor = (m.cursor + 1) % len(m.levels)
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab), key.Matches(msg, m.keys.Left):
			m.cursor = (m.cursor - 1 + len(m.levels)) % len(m.levels)
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runs browser.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "RUNS - " + m.levels[m.cursor]
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(m.err.Error()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m RunsModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Levels\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, lvl := range m.levels {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := lvl
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	if st, ok := m.stats[m.selectedLevel()]; ok {
		sidebar.WriteString("\n")
		sidebar.WriteString(statsText(st))
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

func (m RunsModel) renderNarrowLayout() string {
	var b strings.Builder

	b.WriteString(centerText(fmt.Sprintf("< %s >", m.levels[m.cursor]), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// statsText summarizes a level for the sidebar.
func statsText(st storage.LevelStats) string {
	best := "-"
	if st.BestTime > 0 {
		best = formatDuration(st.BestTime)
	}
	return fmt.Sprintf("Runs:   %d\nWins:   %d\nDeaths: %d\nBest:   %s\nKills:  %d",
		st.Runs, st.Wins, st.Deaths, best, st.Kills)
}

func (m RunsModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		if m.selectedLevel() != "" {
			return emptyStyle.Render("No wins on this level yet.")
		}
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to start the log!")
	}
	return m.table.View()
}

// centerText pads text to be centered within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunRuns runs the runs browser until the user leaves it.
func RunRuns(source RunSource, width, height int) error {
	p := tea.NewProgram(NewRunsModel(source, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
