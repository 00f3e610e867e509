package mode

import "github.com/vovakirdan/ontop/internal/core"

const (
	itemResume     = "Resume"
	itemQuitToMenu = "Quit to menu"
)

// Paused is the overlay pushed over a running game.
type Paused struct {
	list *choiceList
	mgr  *Manager
}

// NewPaused creates the pause overlay.
func NewPaused() *Paused {
	return &Paused{list: newChoiceList(itemResume, itemQuitToMenu)}
}

func (p *Paused) Name() string { return "paused" }

func (p *Paused) Enter(mgr *Manager) error {
	p.mgr = mgr
	return nil
}

func (p *Paused) Exit()    {}
func (p *Paused) Suspend() {}
func (p *Paused) Resume()  {}

func (p *Paused) HandleEvent(e core.Event) {
	if e.Kind == core.EventKeyDown && e.Action == core.ActionBack {
		//nolint:errcheck // The manager logs and records transition failures
		p.mgr.Pop()
		return
	}
	if !p.list.handle(e) {
		return
	}

	switch p.list.selected() {
	case itemResume:
		//nolint:errcheck // The manager logs and records transition failures
		p.mgr.Pop()
	case itemQuitToMenu:
		if p.mgr.Pop() == nil {
			//nolint:errcheck // The manager logs and records transition failures
			p.mgr.Replace(NewMenu())
		}
	}
}

func (p *Paused) Update(core.InputFrame, float64) {}

func (p *Paused) Draw(cv core.Canvas) {
	_, h := cv.Size()
	lh := cv.LineHeight()

	cv.Dim()
	cv.DrawTextCentered(h*0.3, "PAUSED", core.ColorBrightWhite)
	p.list.draw(cv, h*0.45)
	cv.DrawTextCentered(h-lh*2, "Esc: resume", core.ColorGray)
}
