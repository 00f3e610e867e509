// Package gui runs the game in a desktop window with Ebitengine.
package gui

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/ontop/internal/config"
	"github.com/vovakirdan/ontop/internal/core"
	"github.com/vovakirdan/ontop/internal/mode"
)

// binding maps physical keys to an action.
type binding struct {
	action core.Action
	keys   []ebiten.Key
}

// bindings are checked in order; the first match wins for a key.
var bindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyQ}},
	{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{core.ActionJump, []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ}},
	{core.ActionRecall, []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight, ebiten.KeyR}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter, ebiten.KeyF}},
	{core.ActionBack, []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}},
}

// Game adapts a mode manager to ebiten.Game.
type Game struct {
	mgr     *mode.Manager
	sprites *spriteSet
	text    *textCache
	w, h    int
	mouse   core.Vec
}

// NewGame creates the window game for a started manager.
func NewGame(mgr *mode.Manager, cfg config.Config, logger *log.Logger) *Game {
	return &Game{
		mgr:     mgr,
		sprites: newSpriteSet(cfg.Assets.SpriteDir, logger),
		text:    newTextCache(),
		w:       cfg.Display.Width,
		h:       cfg.Display.Height,
	}
}

// input polls the keyboard and mouse for one tick.
func (g *Game) input() core.Input {
	in := core.NewInput()

	for _, b := range bindings {
		for _, k := range b.keys {
			if ebiten.IsKeyPressed(k) {
				in.Held.Set(b.action)
			}
			if inpututil.IsKeyJustPressed(k) {
				in.Push(core.KeyDown(b.action))
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && ebiten.IsKeyPressed(ebiten.KeyControl) {
		in.Push(core.KeyDown(core.ActionQuit))
	}

	cx, cy := ebiten.CursorPosition()
	pos := core.V(float64(cx), float64(cy))
	if pos != g.mouse {
		g.mouse = pos
		in.Push(core.MouseMove(pos.X, pos.Y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Push(core.MouseDown(core.MouseLeft, pos.X, pos.Y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		in.Push(core.MouseDown(core.MouseRight, pos.X, pos.Y))
	}

	if ebiten.IsWindowBeingClosed() {
		in.Push(core.Event{Kind: core.EventQuit})
	}
	return in
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	g.mgr.Tick(g.input(), 1/float64(ebiten.TPS()))
	if !g.mgr.Running() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.mgr.Draw(&canvas{
		dst:     screen,
		w:       float64(g.w),
		h:       float64(g.h),
		sprites: g.sprites,
		text:    g.text,
	})
}

// Layout implements ebiten.Game. The canvas follows the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the session ends. Modes are shut
// down before returning.
func Run(mgr *mode.Manager, cfg config.Config, logger *log.Logger) error {
	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Display.FPS)

	err := ebiten.RunGame(NewGame(mgr, cfg, logger))
	mgr.Shutdown()
	if err != nil {
		return err
	}
	return mgr.Err()
}
