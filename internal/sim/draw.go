package sim

import "github.com/vovakirdan/ontop/internal/core"

// Tile frames understood by frontends.
const (
	TileRock = iota
	TileLedge
	TileDecor
)

func tileFrame(glyph rune) int {
	switch glyph {
	case '#':
		return TileRock
	case '=':
		return TileLedge
	default:
		return TileDecor
	}
}

// Draw renders the visible part of the world. The camera is resized to the
// canvas and re-centered before drawing so a resized window stays clamped.
func (w *World) Draw(cv core.Canvas) {
	vw, vh := cv.Size()
	w.Camera.Resize(vw, vh)
	w.Camera.Follow(w.Player.Rect)
	cam := w.Camera

	cv.Clear(core.ColorSky)

	for _, layer := range w.Level.Layers {
		for _, t := range layer.Tiles {
			r := w.Level.TileRect(t)
			if !cam.Visible(r) {
				continue
			}
			cv.DrawSprite(core.Sprite{Kind: core.SpriteTile, Frame: tileFrame(t.Glyph)}, cam.Apply(r))
		}
	}

	for _, h := range w.Hazards {
		if cam.Visible(h) {
			cv.DrawSprite(core.Sprite{Kind: core.SpriteHazard}, cam.Apply(h))
		}
	}
	for _, p := range w.Portals {
		if cam.Visible(p) {
			cv.DrawSprite(core.Sprite{Kind: core.SpritePortal}, cam.Apply(p))
		}
	}

	for _, m := range w.Monsters {
		if cam.Visible(m.Rect) {
			cv.DrawSprite(m.Sprite(), cam.Apply(m.Rect))
		}
	}

	for _, j := range w.javelins {
		if j == nil {
			continue
		}
		// The sprite is rotated by the frontend around the center of dst
		dst := core.RectAround(j.Pos, j.w, j.h)
		if cam.Visible(j.Rect()) {
			cv.DrawSprite(j.Sprite(), cam.Apply(dst))
		}
	}

	cv.DrawSprite(w.Player.Sprite(), cam.Apply(w.Player.Rect))
}
