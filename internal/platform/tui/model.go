package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ontop/internal/config"
	"github.com/vovakirdan/ontop/internal/core"
	"github.com/vovakirdan/ontop/internal/mode"
)

// Terminals report a held key as a burst of repeated presses after an
// initial delay. A key counts as held until it has not repeated for a while.
const (
	holdInitial = 500 * time.Millisecond
	holdRepeat  = 150 * time.Millisecond
)

// maxDt caps the tick delta after a stall so the simulation does not jump.
const maxDt = 0.1

// Model is the Bubble Tea model driving one mode manager.
type Model struct {
	mgr    *mode.Manager
	screen *Screen
	keys   KeyMap
	help   help.Model
	fps    int

	heldUntil map[core.Action]time.Time
	events    []core.Event
	last      time.Time
	quitting  bool
}

// NewModel creates a model for a started manager and a terminal of
// width x height cells. The bottom row is kept for the key help.
func NewModel(mgr *mode.Manager, display config.DisplayConfig, width, height int) *Model {
	h := help.New()
	h.Width = width
	return &Model{
		mgr:       mgr,
		screen:    NewScreen(width, height-1, display.CellWidth, display.CellHeight),
		keys:      DefaultKeyMap(),
		help:      h,
		fps:       display.FPS,
		heldUntil: make(map[core.Action]time.Time),
	}
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	a := m.keys.MapKey(msg)
	if a == core.ActionNone {
		return m, nil
	}
	if held(a) {
		m.press(a, time.Now())
	}
	m.events = append(m.events, core.KeyDown(a))
	return m, nil
}

// press marks a continuous action as held. Pressing one direction releases
// the other.
func (m *Model) press(a core.Action, now time.Time) {
	until, ok := m.heldUntil[a]
	wait := holdInitial
	if ok && now.Before(until) {
		wait = holdRepeat
	}
	m.heldUntil[a] = now.Add(wait)

	switch a {
	case core.ActionLeft:
		delete(m.heldUntil, core.ActionRight)
	case core.ActionRight:
		delete(m.heldUntil, core.ActionLeft)
	}
}

// handleMouse converts a cell position to the pixel at the cell's center.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	x := (float64(msg.X) + 0.5) * m.screen.cellW
	y := (float64(msg.Y) + 0.5) * m.screen.cellH

	switch msg.Action {
	case tea.MouseActionMotion:
		m.events = append(m.events, core.MouseMove(x, y))
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.events = append(m.events, core.MouseDown(core.MouseLeft, x, y))
		case tea.MouseButtonRight:
			m.events = append(m.events, core.MouseDown(core.MouseRight, x, y))
		case tea.MouseButtonMiddle:
			m.events = append(m.events, core.MouseDown(core.MouseMiddle, x, y))
		}
	}
}

// input collects the held actions and pending events for one tick.
func (m *Model) input(now time.Time) core.Input {
	in := core.NewInput()
	for a, until := range m.heldUntil {
		if now.Before(until) {
			in.Held.Set(a)
			continue
		}
		delete(m.heldUntil, a)
	}
	in.Events = m.events
	m.events = nil
	return in
}

func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(max(m.fps, 1))
	if !m.last.IsZero() {
		dt = min(now.Sub(m.last).Seconds(), maxDt)
	}
	m.last = now

	m.mgr.Tick(m.input(now), dt)
	if !m.mgr.Running() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.fps)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.render()

	dir := filepath.Join(config.HomeDir(), ".ontop", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("ontop_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

func (m *Model) render() {
	m.screen.Clear(core.ColorBlack)
	m.mgr.Draw(m.screen)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.render()

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts a Bubble Tea program for the manager and blocks until the
// session ends. Modes are shut down before returning.
func Run(mgr *mode.Manager, display config.DisplayConfig, width, height int) error {
	model := NewModel(mgr, display, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	mgr.Shutdown()
	if err != nil {
		return err
	}
	return mgr.Err()
}
