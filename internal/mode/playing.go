package mode

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/ontop/internal/audio"
	"github.com/vovakirdan/ontop/internal/core"
	"github.com/vovakirdan/ontop/internal/level"
	"github.com/vovakirdan/ontop/internal/sim"
	"github.com/vovakirdan/ontop/internal/storage"
)

// Keyboard throws aim this far ahead of and above the player.
var keyboardAim = core.V(120, -60)

// Playing owns one playthrough: the world, its camera and the run record.
type Playing struct {
	mgr      *Manager
	world    *sim.World
	level    *level.Level
	mouse    core.Vec // Last pointer position in screen space
	hasMouse bool
	throws   int
	kills    int
	recorded bool
}

// NewPlaying creates the gameplay mode. The level is loaded on Enter.
func NewPlaying() *Playing {
	return &Playing{}
}

func (p *Playing) Name() string { return "playing" }

// World returns the running simulation, nil before Enter and after Exit.
func (p *Playing) World() *sim.World {
	return p.world
}

func (p *Playing) Enter(mgr *Manager) error {
	p.mgr = mgr
	env := mgr.Env()
	if env.LoadLevel == nil {
		return errors.New("playing: no level loader configured")
	}

	lvl, err := env.LoadLevel()
	if err != nil {
		return fmt.Errorf("playing: load level: %w", err)
	}
	p.level = lvl
	p.world = sim.NewWorld(lvl, env.Config, env.Log)
	env.Audio.PlayMusic()
	return nil
}

// Exit records an unfinished run as quit and releases the world.
func (p *Playing) Exit() {
	if p.world != nil && !p.recorded {
		p.record(storage.OutcomeQuit)
	}
	p.world = nil
}

func (p *Playing) Suspend() {
	p.mgr.Env().Log.Debug("game paused", "seconds", p.world.Elapsed())
}

func (p *Playing) Resume() {
	p.mgr.Env().Log.Debug("game resumed")
}

func (p *Playing) HandleEvent(e core.Event) {
	w := p.world
	switch e.Kind {
	case core.EventKeyDown:
		switch e.Action {
		case core.ActionBack:
			//nolint:errcheck // The manager logs and records transition failures
			p.mgr.Push(NewPaused())
		case core.ActionJump, core.ActionUp:
			w.Jump()
		case core.ActionRecall:
			w.RecallJavelin()
		case core.ActionConfirm:
			aim := keyboardAim
			if w.Player.Facing == sim.FacingLeft {
				aim.X = -aim.X
			}
			w.ThrowJavelin(w.Player.Center().Add(aim))
		}
	case core.EventMouseMove:
		p.mouse = e.Pos
		p.hasMouse = true
	case core.EventMouseDown:
		p.mouse = e.Pos
		p.hasMouse = true
		switch e.Button {
		case core.MouseLeft:
			w.ThrowJavelin(w.Camera.ScreenToWorld(e.Pos))
		case core.MouseRight:
			w.RecallJavelin()
		}
	}
}

func (p *Playing) Update(held core.InputFrame, dt float64) {
	out := p.world.Step(held, dt)
	p.playEvents()

	switch out {
	case sim.OutcomeDied:
		p.record(storage.OutcomeDied)
		//nolint:errcheck // The manager logs and records transition failures
		p.mgr.Replace(NewMenu())
	case sim.OutcomeReached:
		p.mgr.Env().Audio.PlayEffect(audio.EffectPortal)
		p.record(storage.OutcomeWin)
		//nolint:errcheck // The manager logs and records transition failures
		p.mgr.Replace(NewOutro(p.mgr.Env().Config))
	}
}

// playEvents turns simulation events into sounds and counters.
func (p *Playing) playEvents() {
	sink := p.mgr.Env().Audio
	for _, ev := range p.world.Events() {
		switch ev {
		case sim.EventJavelinThrown:
			p.throws++
			sink.PlayEffect(audio.EffectThrow)
		case sim.EventJavelinStuck:
			sink.PlayEffect(audio.EffectStick)
		case sim.EventJavelinRecalled:
			sink.PlayEffect(audio.EffectRecall)
		case sim.EventMonsterKilled:
			p.kills++
			sink.PlayEffect(audio.EffectKill)
		case sim.EventPlayerDied:
			sink.PlayEffect(audio.EffectDeath)
		}
	}
}

func (p *Playing) record(outcome string) {
	p.recorded = true
	env := p.mgr.Env()
	run := storage.RunEntry{
		Level:    p.level.Name,
		Outcome:  outcome,
		Cause:    p.world.Cause(),
		Duration: time.Duration(p.world.Elapsed() * float64(time.Second)),
		Kills:    p.kills,
		Throws:   p.throws,
	}
	env.Log.Info("run finished", "outcome", outcome, "seconds", p.world.Elapsed(), "kills", run.Kills)

	if env.Store == nil {
		return
	}
	if _, err := env.Store.SaveRun(run); err != nil {
		env.Log.Warn("cannot save run", "err", err)
	}
}

func (p *Playing) Draw(cv core.Canvas) {
	if p.world == nil {
		return
	}
	p.world.Draw(cv)
	p.drawHUD(cv)
}

func (p *Playing) drawHUD(cv core.Canvas) {
	w := p.world
	lh := cv.LineHeight()
	_, h := cv.Size()

	status := "javelin ready"
	if id, ok := w.Player.Javelin(); ok {
		if j, ok := w.Javelin(id); ok {
			status = "javelin " + j.State.String()
		}
	}
	secs := int(w.Elapsed())
	cv.DrawText(lh/2, lh/2, fmt.Sprintf("%02d:%02d  kills %d  %s", secs/60, secs%60, p.kills, status), core.ColorBrightWhite)
	pos := w.Player.Rect.Center()
	cv.DrawText(lh/2, lh*1.5, fmt.Sprintf("x %.0f  y %.0f", pos.X, pos.Y), core.ColorGray)

	if p.hasMouse && w.Player.Alive() {
		size := lh
		cv.DrawSprite(core.Sprite{Kind: core.SpriteCrosshair}, core.RectAround(p.mouse, size, size))
	}

	if !w.Player.Alive() {
		cv.DrawTextCentered(h*0.4, deathText(w.Cause()), core.ColorBrightRed)
	}
}

func deathText(cause string) string {
	switch cause {
	case sim.CauseMonster:
		return "A zombie got you"
	case sim.CauseHazard:
		return "Impaled on the spikes"
	default:
		return "You fell"
	}
}
