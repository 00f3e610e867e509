package tui

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ontop/internal/config"
	"github.com/vovakirdan/ontop/internal/core"
	"github.com/vovakirdan/ontop/internal/mode"
	"github.com/vovakirdan/ontop/internal/storage"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24, 10, 20)

	if s.Width() != 80 || s.Height() != 24 {
		t.Errorf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	if w, h := s.Size(); w != 800 || h != 480 {
		t.Errorf("Size() = %vx%v, expected 800x480 pixels", w, h)
	}
	if s.Get(0, 0).Rune != ' ' {
		t.Error("new screen should be blank")
	}
	if s.Get(-1, 0).Rune != ' ' || s.Get(80, 0).Rune != ' ' {
		t.Error("out of bounds Get should return a blank cell")
	}
}

func TestScreenDrawSprite(t *testing.T) {
	tests := []struct {
		name string
		dst  core.Rect
		x, y int
		want rune
	}{
		{"covers cells", core.NewRect(20, 40, 20, 40), 2, 3, '@'},
		{"smaller than a cell", core.NewRect(52, 45, 4, 4), 5, 2, '@'},
		{"partly offscreen", core.NewRect(-10, 0, 20, 20), 0, 0, '@'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(20, 10, 10, 20)
			s.DrawSprite(core.Sprite{Kind: core.SpritePlayer}, tc.dst)
			if got := s.Get(tc.x, tc.y).Rune; got != tc.want {
				t.Errorf("cell (%d,%d) = %q, expected %q", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestScreenSpriteKeepsBackground(t *testing.T) {
	s := NewScreen(10, 5, 10, 20)
	s.Clear(core.ColorSky)
	s.DrawSprite(core.Sprite{Kind: core.SpriteMonster}, core.NewRect(0, 0, 10, 20))

	c := s.Get(0, 0)
	if c.Rune != 'Z' || c.Bg != core.ColorSky {
		t.Errorf("cell = %+v, expected Z over the sky", c)
	}
}

func TestJavelinGlyph(t *testing.T) {
	tests := []struct {
		deg  float64
		want rune
	}{
		{0, '-'},
		{180, '-'},
		{45, '/'},
		{90, '|'},
		{-90, '|'},
		{135, '\\'},
		{-45, '\\'},
	}

	for _, tc := range tests {
		if got := javelinGlyph(tc.deg); got != tc.want {
			t.Errorf("javelinGlyph(%v) = %q, expected %q", tc.deg, got, tc.want)
		}
	}
}

func TestScreenText(t *testing.T) {
	s := NewScreen(20, 3, 10, 20)
	s.DrawText(30, 20, "hi", core.ColorWhite)
	s.DrawTextCentered(40, "ontop", core.ColorWhite)

	if got := s.Row(1); got != "   hi"+strings.Repeat(" ", 15) {
		t.Errorf("Row(1) = %q", got)
	}
	if got := strings.TrimSpace(s.Row(2)); got != "ontop" || !strings.HasPrefix(s.Row(2), strings.Repeat(" ", 7)+"o") {
		t.Errorf("Row(2) = %q, expected centered text", s.Row(2))
	}
	if s.TextWidth("héllo") != 50 {
		t.Errorf("TextWidth counts runes, got %v", s.TextWidth("héllo"))
	}

	s.Dim()
	if c := s.Get(3, 1); c.Fg != core.ColorGray || c.Rune != 'h' {
		t.Errorf("Dim should grey text out, got %+v", c)
	}
}

func TestRenderScreen(t *testing.T) {
	s := NewScreen(4, 2, 10, 20)
	s.DrawText(0, 0, "ab", core.ColorRed)

	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(out, "ab") {
		t.Errorf("rendered output should contain the text, got %q", out)
	}
}

func TestKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionJump},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRecall},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")}, core.ActionNone},
	}

	for _, tc := range tests {
		if got := km.MapKey(tc.msg); got != tc.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	mgr := mode.NewManager(&mode.Env{Config: config.DefaultConfig(), Log: log.New(io.Discard)})
	if err := mgr.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return NewModel(mgr, config.DefaultConfig().Display, 80, 25)
}

func TestModelHeldKeys(t *testing.T) {
	m := newTestModel(t)
	now := time.Now()

	m.press(core.ActionRight, now)
	in := m.input(now.Add(100 * time.Millisecond))
	if !in.Held.Has(core.ActionRight) {
		t.Error("a fresh press should be held through the repeat delay")
	}

	// A repeat extends the hold by the shorter repeat window
	m.press(core.ActionRight, now.Add(400*time.Millisecond))
	if in := m.input(now.Add(500 * time.Millisecond)); !in.Held.Has(core.ActionRight) {
		t.Error("repeated key should stay held")
	}
	if in := m.input(now.Add(600 * time.Millisecond)); in.Held.Has(core.ActionRight) {
		t.Error("key should be released once repeats stop")
	}

	m.press(core.ActionRight, now)
	m.press(core.ActionLeft, now)
	in = m.input(now)
	if in.Held.Has(core.ActionRight) || !in.Held.Has(core.ActionLeft) {
		t.Error("pressing left should release right")
	}
}

func TestModelMouse(t *testing.T) {
	m := newTestModel(t)
	m.handleMouse(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.handleMouse(tea.MouseMsg{X: 4, Y: 2, Action: tea.MouseActionMotion})

	in := m.input(time.Now())
	if len(in.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(in.Events))
	}
	if e := in.Events[0]; e.Kind != core.EventMouseDown || e.Button != core.MouseLeft || e.Pos != core.V(35, 50) {
		t.Errorf("click = %+v, expected left click at the cell center (35, 50)", e)
	}
	if e := in.Events[1]; e.Kind != core.EventMouseMove {
		t.Errorf("motion = %+v", e)
	}
	if len(m.input(time.Now()).Events) != 0 {
		t.Error("events should be consumed by one tick")
	}
}

func TestModelQuitsWithManager(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	_, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should end the program on the next tick")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	if !strings.Contains(out, config.DefaultConfig().Display.Title) {
		t.Error("menu title should be rendered")
	}
	if !strings.Contains(out, "jump") {
		t.Error("key help should be rendered under the game")
	}
}

type fakeRuns struct {
	recent []storage.RunEntry
	best   map[string][]storage.RunEntry
	stats  []storage.LevelStats
	err    error
}

func (f *fakeRuns) RecentRuns(int) ([]storage.RunEntry, error) { return f.recent, f.err }
func (f *fakeRuns) BestRuns(level string, _ int) ([]storage.RunEntry, error) {
	return f.best[level], nil
}
func (f *fakeRuns) Stats() ([]storage.LevelStats, error) { return f.stats, nil }

func TestRunsModel(t *testing.T) {
	src := &fakeRuns{
		recent: []storage.RunEntry{
			{ID: 2, Level: "olympus", Outcome: storage.OutcomeDied, Cause: "monster"},
			{ID: 1, Level: "olympus", Outcome: storage.OutcomeWin, Duration: 95 * time.Second},
		},
		best: map[string][]storage.RunEntry{
			"olympus": {{ID: 1, Level: "olympus", Outcome: storage.OutcomeWin, Duration: 95 * time.Second}},
		},
		stats: []storage.LevelStats{{Level: "olympus", Runs: 2, Wins: 1, Deaths: 1, BestTime: 95 * time.Second}},
	}

	m := NewRunsModel(src, 100, 30)
	if len(m.runs) != 2 || len(m.levels) != 2 {
		t.Fatalf("runs=%d levels=%d, expected 2 recent runs and 2 sidebar entries", len(m.runs), len(m.levels))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(RunsModel)
	if m.selectedLevel() != "olympus" || len(m.runs) != 1 {
		t.Errorf("tab should show the level's best runs, level=%q runs=%d", m.selectedLevel(), len(m.runs))
	}
	if out := m.View(); !strings.Contains(out, "Best:   1:35") {
		t.Errorf("sidebar should show the level stats, got:\n%s", out)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(RunsModel).quitting || cmd == nil {
		t.Error("esc should leave the browser")
	}
}

func TestRunsModelError(t *testing.T) {
	m := NewRunsModel(&fakeRuns{err: errors.New("disk gone")}, 60, 20)
	if !strings.Contains(m.View(), "disk gone") {
		t.Error("load errors should be shown")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{59*time.Second + 600*time.Millisecond, "1:00"},
		{125 * time.Second, "2:05"},
	}
	for _, tc := range tests {
		if got := formatDuration(tc.d); got != tc.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tc.d, got, tc.want)
		}
	}
}
