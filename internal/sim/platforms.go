// Package sim implements the platformer simulation: the platform registry,
// the shared motion model, the player, javelins and monsters, and the world
// that steps them in order. It has no rendering, audio or terminal
// dependencies; frontends reach it through core.Canvas and core.InputFrame.
package sim

import "github.com/vovakirdan/ontop/internal/core"

// PlatformID identifies a platform for its whole lifetime in a registry.
type PlatformID int

// PlatformKind tells static map tiles from stuck javelins.
type PlatformKind int

const (
	PlatformStatic PlatformKind = iota
	PlatformJavelin
)

// Platform is a solid rectangle movers collide with.
type Platform struct {
	ID   PlatformID
	Kind PlatformKind
	Rect core.Rect
}

// Registry is the set of solid rectangles queried by every mover each tick.
// It is owned by a single World and is not safe for concurrent use.
type Registry struct {
	platforms []Platform
	nextID    PlatformID
	scratch   []Platform
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a platform and returns its ID.
func (r *Registry) Add(rect core.Rect, kind PlatformKind) PlatformID {
	id := r.nextID
	r.nextID++
	r.platforms = append(r.platforms, Platform{ID: id, Kind: kind, Rect: rect})
	return id
}

// Remove unregisters a platform. It returns false if the ID is unknown.
func (r *Registry) Remove(id PlatformID) bool {
	for i, p := range r.platforms {
		if p.ID == id {
			r.platforms = append(r.platforms[:i], r.platforms[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether a platform with the given ID is registered.
func (r *Registry) Contains(id PlatformID) bool {
	for _, p := range r.platforms {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Len returns the number of registered platforms.
func (r *Registry) Len() int {
	return len(r.platforms)
}

// Hits returns every platform intersecting rect, in insertion order.
// The returned slice is reused by the next call.
func (r *Registry) Hits(rect core.Rect) []Platform {
	r.scratch = r.scratch[:0]
	for _, p := range r.platforms {
		if p.Rect.Intersects(rect) {
			r.scratch = append(r.scratch, p)
		}
	}
	return r.scratch
}

// Any reports whether rect intersects at least one platform.
func (r *Registry) Any(rect core.Rect) bool {
	for _, p := range r.platforms {
		if p.Rect.Intersects(rect) {
			return true
		}
	}
	return false
}
