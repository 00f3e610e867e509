package sim

import (
	"math"

	"github.com/vovakirdan/ontop/internal/core"
)

// JavelinID indexes a javelin in the world's javelin arena.
type JavelinID int

// NoJavelin marks an empty javelin reference.
const NoJavelin JavelinID = -1

// JavelinState is the javelin lifecycle.
type JavelinState int

const (
	JavelinFlying JavelinState = iota
	JavelinStuck
	JavelinReturning
)

func (s JavelinState) String() string {
	switch s {
	case JavelinFlying:
		return "flying"
	case JavelinStuck:
		return "stuck"
	case JavelinReturning:
		return "returning"
	default:
		return "unknown"
	}
}

// lostBelow is how far below the map a flying javelin may fall before it is
// called back automatically.
const lostBelow = 1000

// Javelin is a thrown projectile. While Stuck it is registered as a platform
// the player can stand on.
type Javelin struct {
	ID    JavelinID
	Pos   core.Vec // Center
	Vel   core.Vec // Per-tick displacement
	State JavelinState
	Angle float64 // Degrees, counter-clockwise, from the velocity

	platform PlatformID
	stuck    bool // platform is registered
	w, h     float64
}

// Rect returns the axis-aligned bounds of the rotated javelin.
func (j *Javelin) Rect() core.Rect {
	w, h := core.RotatedBounds(j.w, j.h, j.Angle)
	return core.RectAround(j.Pos, w, h)
}

// Platform returns the registry ID of the javelin while it is Stuck.
func (j *Javelin) Platform() (PlatformID, bool) {
	return j.platform, j.stuck
}

// Sprite returns the draw request for the javelin.
func (j *Javelin) Sprite() core.Sprite {
	return core.Sprite{Kind: core.SpriteJavelin, Angle: j.Angle}
}

// aim updates the angle from the current velocity.
func (j *Javelin) aim() {
	j.Angle = math.Atan2(-j.Vel.Y, j.Vel.X) * 180 / math.Pi
}

// Javelin returns a live javelin by ID.
func (w *World) Javelin(id JavelinID) (*Javelin, bool) {
	if id < 0 || int(id) >= len(w.javelins) || w.javelins[id] == nil {
		return nil, false
	}
	return w.javelins[id], true
}

// Javelins returns the live javelins.
func (w *World) Javelins() []*Javelin {
	out := make([]*Javelin, 0, len(w.javelins))
	for _, j := range w.javelins {
		if j != nil {
			out = append(out, j)
		}
	}
	return out
}

// ThrowJavelin handles the throw action aimed at a world point. With the
// javelin in hand it spawns one flying toward target; otherwise a stuck
// javelin is recalled. A dead player cannot throw.
func (w *World) ThrowJavelin(target core.Vec) bool {
	p := w.Player
	if !p.Alive() {
		return false
	}
	if !p.HasJavelin {
		if id, ok := p.Javelin(); ok {
			if j, ok := w.Javelin(id); ok && j.State == JavelinStuck {
				return w.RecallJavelin()
			}
		}
		return false
	}

	center := p.Center()
	dir := target.Sub(center).Normalize(core.V(1, 0))
	offset := p.Rect.W/2 + w.cfg.Javelin.Width/2
	j := &Javelin{
		Pos:   center.Add(dir.Scale(offset)),
		Vel:   dir.Scale(w.cfg.Javelin.Speed),
		State: JavelinFlying,
		w:     w.cfg.Javelin.Width,
		h:     w.cfg.Javelin.Height,
	}
	j.aim()
	j.ID = w.allocJavelin(j)

	p.HasJavelin = false
	p.javelin = j.ID
	w.emit(EventJavelinThrown)
	w.log.Debug("javelin thrown", "id", j.ID, "angle", j.Angle)
	return true
}

// RecallJavelin sends the player's javelin back. A stuck javelin stops being
// a platform immediately. It returns false if there is nothing to recall.
func (w *World) RecallJavelin() bool {
	if !w.Player.Alive() {
		return false
	}
	id, ok := w.Player.Javelin()
	if !ok {
		return false
	}
	j, ok := w.Javelin(id)
	if !ok || j.State == JavelinReturning {
		return false
	}
	if j.stuck {
		w.Platforms.Remove(j.platform)
		j.stuck = false
	}
	j.State = JavelinReturning
	j.Vel = core.Vec{}
	w.emit(EventJavelinRecalled)
	return true
}

func (w *World) allocJavelin(j *Javelin) JavelinID {
	for i, slot := range w.javelins {
		if slot == nil {
			w.javelins[i] = j
			return JavelinID(i)
		}
	}
	w.javelins = append(w.javelins, j)
	return JavelinID(len(w.javelins) - 1)
}

func (w *World) freeJavelin(id JavelinID) {
	if j, ok := w.Javelin(id); ok && j.stuck {
		w.Platforms.Remove(j.platform)
	}
	w.javelins[id] = nil
}

// updateJavelins advances every live javelin one tick.
func (w *World) updateJavelins() {
	for _, j := range w.javelins {
		if j == nil {
			continue
		}
		switch j.State {
		case JavelinFlying:
			w.updateFlying(j)
		case JavelinReturning:
			w.updateReturning(j)
		}
	}
}

func (w *World) updateFlying(j *Javelin) {
	j.Vel.Y += w.cfg.Javelin.Gravity
	j.Pos = j.Pos.Add(j.Vel)
	j.aim()

	r := j.Rect()
	for _, m := range w.Monsters {
		if m.Alive() && r.Intersects(m.Rect) {
			m.Die()
			w.emit(EventMonsterKilled)
			break
		}
	}

	if w.Platforms.Any(r) {
		w.stick(j)
		return
	}

	_, mapH := w.Level.PixelSize()
	if j.Pos.Y > mapH+lostBelow {
		w.log.Debug("javelin left the map, recalling", "id", j.ID)
		j.State = JavelinReturning
		j.Vel = core.Vec{}
	}
}

// stick freezes the javelin, registers it as a platform and pushes the owner
// out along the vertical axis if they overlap.
func (w *World) stick(j *Javelin) {
	j.State = JavelinStuck
	j.Vel = core.Vec{}
	r := j.Rect()
	j.platform = w.Platforms.Add(r, PlatformJavelin)
	j.stuck = true
	w.emit(EventJavelinStuck)

	p := &w.Player.Body
	limit := int(p.Rect.H+r.H) + 1
	for i := 0; i < limit && p.Rect.Intersects(r); i++ {
		switch {
		case p.Vel.Y > 0:
			p.Rect.Y = r.Y - p.Rect.H
			p.Vel.Y = 0
			p.Grounded = true
		case p.Vel.Y < 0:
			p.Rect.Y = r.Bottom()
			p.Vel.Y = 0
		default:
			p.Rect.Y++
		}
	}
}

func (w *World) updateReturning(j *Javelin) {
	p := w.Player
	target := p.Center()
	to := target.Sub(j.Pos)
	recall := w.cfg.Javelin.RecallSpeed
	if to.LenSq() < recall*recall/4 {
		w.freeJavelin(j.ID)
		p.RetrieveJavelin()
		w.emit(EventJavelinCaught)
		return
	}
	j.Vel = to.Normalize(core.V(1, 0)).Scale(recall)
	j.Pos = j.Pos.Add(j.Vel)
	j.aim()
}
