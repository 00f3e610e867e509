package sim

import "github.com/vovakirdan/ontop/internal/core"

// Body is the physical state shared by movers that collide with platforms.
// Velocities are per-tick displacements.
type Body struct {
	Rect     core.Rect
	Vel      core.Vec
	Grounded bool
}

// ApplyGravity adds one tick of gravity to the vertical velocity,
// clamped to maxFall.
func (b *Body) ApplyGravity(gravity, maxFall float64) {
	b.Vel.Y += gravity
	if b.Vel.Y > maxFall {
		b.Vel.Y = maxFall
	}
}

// MoveX applies the horizontal velocity and resolves against platforms in a
// single pass: the first contact clamps the leading edge and zeroes Vel.X.
func (b *Body) MoveX(reg *Registry) {
	b.Rect.X += b.Vel.X
	for _, p := range reg.Hits(b.Rect) {
		if b.Vel.X > 0 {
			b.Rect.X = p.Rect.X - b.Rect.W
		} else if b.Vel.X < 0 {
			b.Rect.X = p.Rect.Right()
		}
		b.Vel.X = 0
	}
}

// MoveY applies the vertical velocity and resolves against platforms in a
// single pass. Grounded is only true after a descending contact this tick.
func (b *Body) MoveY(reg *Registry) {
	b.Rect.Y += b.Vel.Y
	b.Grounded = false
	for _, p := range reg.Hits(b.Rect) {
		if b.Vel.Y > 0 {
			if b.Rect.Bottom() > p.Rect.Y {
				b.Rect.Y = p.Rect.Y - b.Rect.H
				b.Vel.Y = 0
				b.Grounded = true
			}
		} else if b.Vel.Y < 0 {
			if b.Rect.Y < p.Rect.Bottom() {
				b.Rect.Y = p.Rect.Bottom()
				b.Vel.Y = 0
			}
		}
	}
}

// Center returns the center of the body's rectangle.
func (b *Body) Center() core.Vec {
	return b.Rect.Center()
}
