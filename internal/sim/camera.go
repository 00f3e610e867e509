package sim

import "github.com/vovakirdan/ontop/internal/core"

// Camera is the top-left corner of the visible region in world space.
// The view never shows anything beyond the map bounds.
type Camera struct {
	Pos   core.Vec
	ViewW float64
	ViewH float64
	MapW  float64
	MapH  float64
}

// NewCamera creates a camera for a map and view size.
func NewCamera(mapW, mapH, viewW, viewH float64) Camera {
	return Camera{MapW: mapW, MapH: mapH, ViewW: viewW, ViewH: viewH}
}

// Resize changes the view size. The position is clamped on the next Follow.
func (c *Camera) Resize(viewW, viewH float64) {
	c.ViewW = viewW
	c.ViewH = viewH
}

// Follow centers the view on target, clamped to the map.
func (c *Camera) Follow(target core.Rect) {
	center := target.Center()
	c.Pos.X = clampView(center.X-c.ViewW/2, c.MapW-c.ViewW)
	c.Pos.Y = clampView(center.Y-c.ViewH/2, c.MapH-c.ViewH)
}

// clampView clamps an offset to [0, limit]; a map smaller than the view
// pins it to 0.
func clampView(v, limit float64) float64 {
	if limit < 0 {
		return 0
	}
	return core.ClampF(v, 0, limit)
}

// Apply converts a world rectangle to screen space.
func (c Camera) Apply(r core.Rect) core.Rect {
	return r.Move(-c.Pos.X, -c.Pos.Y)
}

// ScreenToWorld converts a screen point (mouse position) to world space.
func (c Camera) ScreenToWorld(p core.Vec) core.Vec {
	return p.Add(c.Pos)
}

// Visible reports whether a world rectangle is at least partly on screen.
func (c Camera) Visible(r core.Rect) bool {
	return r.Intersects(core.NewRect(c.Pos.X, c.Pos.Y, c.ViewW, c.ViewH))
}
