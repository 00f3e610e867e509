package mode

import (
	"fmt"

	"github.com/vovakirdan/ontop/internal/audio"
	"github.com/vovakirdan/ontop/internal/core"
)

// Options adjusts the master volume. It is pushed over the menu.
type Options struct {
	list *choiceList
	mgr  *Manager
}

// NewOptions creates the options screen.
func NewOptions() *Options {
	return &Options{list: newChoiceList("", "Back")}
}

func (o *Options) Name() string { return "options" }

func (o *Options) Enter(mgr *Manager) error {
	o.mgr = mgr
	o.refresh()
	return nil
}

func (o *Options) Exit()    {}
func (o *Options) Suspend() {}
func (o *Options) Resume()  {}

func (o *Options) refresh() {
	o.list.items[0] = fmt.Sprintf("Volume: %d%%", o.mgr.Env().Settings.Percent())
}

// adjust changes the volume by steps, applies it and persists it.
func (o *Options) adjust(steps int) {
	env := o.mgr.Env()
	v := env.Settings.Step(float64(steps) * audio.VolumeStep)
	env.Audio.SetVolume(v)
	env.Audio.PlayEffect(audio.EffectSelect)
	o.refresh()

	if env.Store != nil {
		if err := env.Store.SaveVolume(v); err != nil {
			env.Log.Warn("cannot save volume", "err", err)
		}
	}
}

func (o *Options) HandleEvent(e core.Event) {
	onVolume := o.list.sel == 0

	switch {
	case e.Kind == core.EventKeyDown && e.Action == core.ActionBack:
		//nolint:errcheck // The manager logs and records transition failures
		o.mgr.Pop()
		return
	case e.Kind == core.EventKeyDown && onVolume && e.Action == core.ActionLeft:
		o.adjust(-1)
		return
	case e.Kind == core.EventKeyDown && onVolume && e.Action == core.ActionRight:
		o.adjust(1)
		return
	case e.Kind == core.EventMouseDown && e.Button == core.MouseRight:
		if i, ok := o.list.hit(e.Pos); ok && i == 0 {
			o.list.sel = 0
			o.adjust(-1)
		}
		return
	}

	if !o.list.handle(e) {
		return
	}
	if o.list.sel == 0 {
		o.adjust(1)
		return
	}
	//nolint:errcheck // The manager logs and records transition failures
	o.mgr.Pop()
}

func (o *Options) Update(core.InputFrame, float64) {}

func (o *Options) Draw(cv core.Canvas) {
	_, h := cv.Size()
	lh := cv.LineHeight()
	cv.Clear(core.ColorBlack)

	cv.DrawTextCentered(h*0.2, "Options", core.ColorBrightYellow)
	o.list.draw(cv, h*0.45)
	cv.DrawTextCentered(h-lh*2, "Left/Right: volume  Esc: back", core.ColorGray)
}
