package mode

import (
	"github.com/vovakirdan/ontop/internal/audio"
	"github.com/vovakirdan/ontop/internal/core"
)

const (
	itemPlay    = "Play"
	itemOptions = "Options"
	itemQuit    = "Quit"
)

// Menu is the title screen.
type Menu struct {
	// Notice is an error shown under the title, e.g. a map that failed to load.
	Notice string

	list *choiceList
	mgr  *Manager
}

// NewMenu creates the title screen.
func NewMenu() *Menu {
	return &Menu{list: newChoiceList(itemPlay, itemOptions, itemQuit)}
}

func (m *Menu) Name() string { return "menu" }

func (m *Menu) Enter(mgr *Manager) error {
	m.mgr = mgr
	mgr.Env().Audio.PlayMusic()
	return nil
}

func (m *Menu) Exit()    {}
func (m *Menu) Suspend() {}
func (m *Menu) Resume()  {}

func (m *Menu) HandleEvent(e core.Event) {
	prev := m.list.sel
	activated := m.list.handle(e)
	if m.list.sel != prev {
		m.mgr.Env().Audio.PlayEffect(audio.EffectSelect)
	}
	if !activated {
		return
	}

	switch m.list.selected() {
	case itemPlay:
		//nolint:errcheck // The manager logs and records transition failures
		m.mgr.Replace(NewIntro(m.mgr.Env().Config))
	case itemOptions:
		//nolint:errcheck // The manager logs and records transition failures
		m.mgr.Push(NewOptions())
	case itemQuit:
		m.mgr.Quit()
	}
}

func (m *Menu) Update(core.InputFrame, float64) {}

func (m *Menu) Draw(cv core.Canvas) {
	_, h := cv.Size()
	lh := cv.LineHeight()
	cv.Clear(core.ColorBlack)

	cv.DrawTextCentered(h*0.2, m.mgr.Env().Config.Display.Title, core.ColorBrightYellow)
	cv.DrawTextCentered(h*0.2+lh*1.5, "Climb to the summit of Olympus", core.ColorGray)

	m.list.draw(cv, h*0.45)

	if m.Notice != "" {
		cv.DrawTextCentered(h*0.45+lh*7, m.Notice, core.ColorBrightRed)
	}
	cv.DrawTextCentered(h-lh*2, "Up/Down: select  Enter: confirm  Ctrl+C: quit", core.ColorGray)
}
