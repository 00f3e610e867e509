// Package mode sequences the game screens: a stack of modes where only the
// top receives input and updates, while every mode on the stack is drawn
// bottom to top so a paused game stays visible under its overlay.
package mode

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ontop/internal/audio"
	"github.com/vovakirdan/ontop/internal/config"
	"github.com/vovakirdan/ontop/internal/core"
	"github.com/vovakirdan/ontop/internal/level"
	"github.com/vovakirdan/ontop/internal/storage"
)

// ErrEmptyStack is returned by Pop when there is nothing to pop.
var ErrEmptyStack = errors.New("mode: pop on empty stack")

// Mode is one screen of the game.
type Mode interface {
	// Name identifies the mode in logs.
	Name() string

	// Enter is called when the mode becomes part of the stack.
	// An error aborts the transition.
	Enter(m *Manager) error

	// Exit is called when the mode leaves the stack for good.
	Exit()

	// Suspend is called when another mode is pushed on top.
	Suspend()

	// Resume is called when the mode above is popped.
	Resume()

	// HandleEvent receives discrete input while the mode is on top.
	HandleEvent(e core.Event)

	// Update advances the mode while it is on top.
	Update(held core.InputFrame, dt float64)

	// Draw renders the mode. Called for every mode on the stack.
	Draw(cv core.Canvas)
}

// Store persists what the modes produce. A nil Store disables persistence.
type Store interface {
	SaveRun(run storage.RunEntry) (int64, error)
	SaveVolume(v float64) error
}

// Env carries the session-wide dependencies shared by all modes.
type Env struct {
	Config   config.Config
	Audio    audio.Sink
	Settings *audio.Settings
	Store    Store
	Log      *log.Logger

	// LoadLevel returns the level a new game starts on.
	LoadLevel func() (*level.Level, error)
}

// Manager owns the mode stack.
type Manager struct {
	env   *Env
	stack []Mode
	err   error
	quit  bool
}

// NewManager creates a manager with an empty stack.
func NewManager(env *Env) *Manager {
	if env.Log == nil {
		env.Log = log.New(io.Discard)
	}
	if env.Audio == nil {
		env.Audio = audio.Nop{}
	}
	if env.Settings == nil {
		env.Settings = audio.NewSettings(env.Config.Audio.Volume)
	}
	return &Manager{env: env}
}

// Env returns the shared dependencies.
func (m *Manager) Env() *Env {
	return m.env
}

// Top returns the interactive mode, or nil if the stack is empty.
func (m *Manager) Top() Mode {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Depth returns the number of stacked modes.
func (m *Manager) Depth() int {
	return len(m.stack)
}

// Push suspends the current top and enters md above it.
func (m *Manager) Push(md Mode) error {
	prev := m.Top()
	if prev != nil {
		prev.Suspend()
	}
	if err := md.Enter(m); err != nil {
		if prev != nil {
			prev.Resume()
		}
		return m.enterFailed(md, err)
	}
	m.stack = append(m.stack, md)
	m.env.Log.Debug("mode pushed", "mode", md.Name(), "depth", len(m.stack))
	return nil
}

// Pop exits the top mode and resumes the one below.
func (m *Manager) Pop() error {
	top := m.Top()
	if top == nil {
		m.err = ErrEmptyStack
		m.env.Log.Error("mode stack corrupted", "err", ErrEmptyStack)
		return ErrEmptyStack
	}
	m.stack = m.stack[:len(m.stack)-1]
	top.Exit()
	m.env.Log.Debug("mode popped", "mode", top.Name(), "depth", len(m.stack))
	if next := m.Top(); next != nil {
		next.Resume()
	}
	return nil
}

// Replace exits every mode on the stack, top first, then enters md.
func (m *Manager) Replace(md Mode) error {
	for len(m.stack) > 0 {
		top := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		top.Exit()
	}
	if err := md.Enter(m); err != nil {
		return m.enterFailed(md, err)
	}
	m.stack = append(m.stack, md)
	m.env.Log.Debug("mode replaced", "mode", md.Name())
	return nil
}

// enterFailed falls back to the menu, showing the error there. A menu that
// cannot be entered is fatal.
func (m *Manager) enterFailed(md Mode, err error) error {
	err = fmt.Errorf("mode: enter %s: %w", md.Name(), err)
	m.env.Log.Error("mode transition failed", "mode", md.Name(), "err", err)
	if _, isMenu := md.(*Menu); isMenu {
		m.err = err
		return err
	}
	menu := NewMenu()
	menu.Notice = err.Error()
	if rerr := m.Replace(menu); rerr != nil {
		return rerr
	}
	return err
}

// Start enters the title screen on an empty stack.
func (m *Manager) Start() error {
	return m.Replace(NewMenu())
}

// Quit asks the session to end after the current tick.
func (m *Manager) Quit() {
	m.quit = true
}

// Err returns the fatal error that stopped the manager, if any.
func (m *Manager) Err() error {
	return m.err
}

// Running reports whether the session should keep ticking.
func (m *Manager) Running() bool {
	return !m.quit && m.err == nil && len(m.stack) > 0
}

// Tick dispatches the frame's events to the top mode, then updates it.
// The top is looked up again after every event since events may transition.
func (m *Manager) Tick(in core.Input, dt float64) {
	for _, e := range in.Events {
		if e.Kind == core.EventQuit || (e.Kind == core.EventKeyDown && e.Action == core.ActionQuit) {
			m.Quit()
			return
		}
		top := m.Top()
		if top == nil || !m.Running() {
			return
		}
		top.HandleEvent(e)
	}
	if top := m.Top(); top != nil && m.Running() {
		top.Update(in.Held, dt)
	}
}

// Draw renders the whole stack bottom to top.
func (m *Manager) Draw(cv core.Canvas) {
	for _, md := range m.stack {
		md.Draw(cv)
	}
}

// Shutdown exits every mode so owned state is released and recorded.
func (m *Manager) Shutdown() {
	for len(m.stack) > 0 {
		top := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		top.Exit()
	}
	m.env.Audio.StopMusic()
}
