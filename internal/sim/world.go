package sim

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ontop/internal/config"
	"github.com/vovakirdan/ontop/internal/core"
	"github.com/vovakirdan/ontop/internal/level"
)

// Event is a notable thing that happened during a tick. Modes turn events
// into sounds and run statistics.
type Event int

const (
	EventJavelinThrown Event = iota
	EventJavelinStuck
	EventJavelinRecalled
	EventJavelinCaught
	EventMonsterKilled
	EventPlayerDied
)

func (e Event) String() string {
	switch e {
	case EventJavelinThrown:
		return "javelin_thrown"
	case EventJavelinStuck:
		return "javelin_stuck"
	case EventJavelinRecalled:
		return "javelin_recalled"
	case EventJavelinCaught:
		return "javelin_caught"
	case EventMonsterKilled:
		return "monster_killed"
	case EventPlayerDied:
		return "player_died"
	default:
		return "unknown"
	}
}

// Outcome is what a tick means for the surrounding mode.
type Outcome int

const (
	OutcomeNone    Outcome = iota
	OutcomeDied            // Death animation finished
	OutcomeReached         // Player touched the portal
)

// Death causes reported by Cause.
const (
	CauseMonster = "monster"
	CauseHazard  = "hazard"
	CauseFall    = "fall"
)

// World is one playthrough of a level: the registry and every entity.
// It is owned by the Playing mode and discarded when the mode exits.
type World struct {
	Level     *level.Level
	Platforms *Registry
	Player    *Player
	Monsters  []*Monster
	Hazards   []core.Rect
	Portals   []core.Rect
	Camera    Camera

	javelins []*Javelin
	events   []Event
	cause    string
	kills    int
	ticks    int
	elapsed  float64
	cfg      config.Config
	log      *log.Logger
}

// NewWorld populates a world from a parsed level.
func NewWorld(lvl *level.Level, cfg config.Config, logger *log.Logger) *World {
	w := &World{
		Level:     lvl,
		Platforms: NewRegistry(),
		Hazards:   lvl.Hazards,
		Portals:   lvl.Portals,
		cfg:       cfg,
		log:       logger,
	}

	for _, r := range lvl.Solids {
		w.Platforms.Add(r, PlatformStatic)
	}
	if w.Platforms.Len() == 0 {
		logger.Warn("level has no collidable tiles, the player will fall forever", "level", lvl.Name)
	}

	spawn := lvl.Spawn
	if !lvl.HasSpawn {
		spawn = core.V(cfg.Level.FallbackSpawnX, cfg.Level.FallbackSpawnY)
		logger.Warn("level has no PlayerSpawn, using fallback", "x", spawn.X, "y", spawn.Y)
	}
	w.Player = NewPlayer(spawn, cfg.Player)

	for _, ms := range lvl.Monsters {
		w.Monsters = append(w.Monsters, NewMonster(ms, cfg.Monster))
	}

	mapW, mapH := lvl.PixelSize()
	w.Camera = NewCamera(mapW, mapH, float64(cfg.Display.Width), float64(cfg.Display.Height))
	w.Camera.Follow(w.Player.Rect)

	logger.Info("world ready",
		"level", lvl.Name,
		"platforms", w.Platforms.Len(),
		"monsters", len(w.Monsters),
		"hazards", len(w.Hazards),
	)
	return w
}

// Jump makes the player jump if grounded.
func (w *World) Jump() bool {
	return w.Player.Jump()
}

// Step advances the simulation one tick: player, then monsters, then
// javelins, then the contact checks that decide the outcome.
func (w *World) Step(held core.InputFrame, dt float64) Outcome {
	w.ticks++
	w.elapsed += dt

	w.Player.Update(held, w.Platforms, dt)
	for _, m := range w.Monsters {
		m.Update(w.Platforms, dt)
	}
	w.updateJavelins()
	w.pruneMonsters()
	w.Camera.Follow(w.Player.Rect)

	return w.checkContacts()
}

// pruneMonsters drops monsters whose death animation finished.
func (w *World) pruneMonsters() {
	live := w.Monsters[:0]
	for _, m := range w.Monsters {
		if m.Removed() {
			w.kills++
			continue
		}
		live = append(live, m)
	}
	for i := len(live); i < len(w.Monsters); i++ {
		w.Monsters[i] = nil
	}
	w.Monsters = live
}

func (w *World) checkContacts() Outcome {
	p := w.Player

	if p.Alive() {
		for _, m := range w.Monsters {
			if m.Alive() && m.Rect.Intersects(p.Rect) {
				w.killPlayer(CauseMonster)
				break
			}
		}
	}
	if p.Alive() {
		for _, h := range w.Hazards {
			if h.Intersects(p.Rect) {
				w.killPlayer(CauseHazard)
				break
			}
		}
	}
	if p.Alive() {
		if _, mapH := w.Level.PixelSize(); p.Rect.Y > mapH {
			w.killPlayer(CauseFall)
		}
	}
	if p.Alive() {
		for _, portal := range w.Portals {
			if portal.Intersects(p.Rect) {
				w.log.Info("portal reached", "seconds", w.elapsed)
				return OutcomeReached
			}
		}
	}

	if p.DeathFinished() {
		return OutcomeDied
	}
	return OutcomeNone
}

func (w *World) killPlayer(cause string) {
	if !w.Player.Die() {
		return
	}
	w.cause = cause
	w.emit(EventPlayerDied)
	w.log.Info("player died", "cause", cause, "x", w.Player.Rect.X, "y", w.Player.Rect.Y)
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

// Events returns and clears the events emitted since the last call.
func (w *World) Events() []Event {
	ev := w.events
	w.events = nil
	return ev
}

// Cause returns why the player died, or "" while alive.
func (w *World) Cause() string {
	return w.cause
}

// Kills returns the number of monsters fully removed.
func (w *World) Kills() int {
	return w.kills
}

// Elapsed returns the simulated seconds since the world was created.
func (w *World) Elapsed() float64 {
	return w.elapsed
}

// Ticks returns the number of steps taken.
func (w *World) Ticks() int {
	return w.ticks
}
