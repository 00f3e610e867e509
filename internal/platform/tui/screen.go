package tui

import (
	"math"
	"strings"

	"github.com/vovakirdan/ontop/internal/core"
	"github.com/vovakirdan/ontop/internal/sim"
)

// Cell is one terminal character with its colors.
type Cell struct {
	Rune rune
	Fg   core.Color
	Bg   core.Color
}

// Screen is a 2D cell buffer implementing core.Canvas. Canvas coordinates
// are pixels; each cell covers cellW x cellH of them.
type Screen struct {
	width  int
	height int
	cellW  float64
	cellH  float64
	cells  [][]Cell
}

// NewScreen creates a screen of width x height cells.
func NewScreen(width, height int, cellW, cellH float64) *Screen {
	s := &Screen{
		width:  max(width, 1),
		height: max(height, 1),
		cellW:  cellW,
		cellH:  cellH,
	}
	s.allocate()
	s.Clear(core.ColorBlack)
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; the next
// frame redraws everything.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear(core.ColorBlack)
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// Get returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// setRune draws a glyph keeping the background already in the cell.
func (s *Screen) setRune(x, y int, r rune, fg core.Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	c := &s.cells[y][x]
	c.Rune = r
	c.Fg = fg
}

// cellAt converts a pixel position to a cell.
func (s *Screen) cellAt(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

// span returns the cells whose centers lie inside dst. A rectangle smaller
// than a cell still covers the cell holding its center.
func (s *Screen) span(dst core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Ceil(dst.X/s.cellW - 0.5))
	y0 = int(math.Ceil(dst.Y/s.cellH - 0.5))
	x1 = int(math.Ceil(dst.Right()/s.cellW-0.5)) - 1
	y1 = int(math.Ceil(dst.Bottom()/s.cellH-0.5)) - 1
	cx, cy := s.cellAt(dst.Center().X, dst.Center().Y)
	if x1 < x0 {
		x0, x1 = cx, cx
	}
	if y1 < y0 {
		y0, y1 = cy, cy
	}
	return x0, y0, x1, y1
}

// Size returns the visible area in pixels.
func (s *Screen) Size() (float64, float64) {
	return float64(s.width) * s.cellW, float64(s.height) * s.cellH
}

// Clear fills the entire screen with blank cells of the given background.
func (s *Screen) Clear(bg core.Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Fg: core.ColorDefault, Bg: bg}
		}
	}
}

// FillRect paints the background of the cells covered by dst.
func (s *Screen) FillRect(dst core.Rect, c core.Color) {
	x0, y0, x1, y1 := s.span(dst)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			s.Set(x, y, Cell{Rune: ' ', Bg: c})
		}
	}
}

// DrawSprite fills dst with the sprite's glyph.
func (s *Screen) DrawSprite(sp core.Sprite, dst core.Rect) {
	if sp.Kind == core.SpriteJavelin {
		s.drawJavelin(sp, dst)
		return
	}

	r, fg := glyph(sp)
	x0, y0, x1, y1 := s.span(dst)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if sp.Kind == core.SpriteTile {
				s.Set(x, y, Cell{Rune: r, Fg: fg, Bg: tileBg(sp.Frame)})
				continue
			}
			s.setRune(x, y, r, fg)
		}
	}
}

// drawJavelin draws a line of slanted glyphs along the javelin's angle.
func (s *Screen) drawJavelin(sp core.Sprite, dst core.Rect) {
	rad := sp.Angle * math.Pi / 180
	dir := core.V(math.Cos(rad), -math.Sin(rad))
	c := dst.Center()
	r := javelinGlyph(sp.Angle)

	half := dst.W / 2
	step := math.Min(s.cellW, s.cellH) / 2
	for t := -half; t <= half; t += step {
		p := c.Add(dir.Scale(t))
		x, y := s.cellAt(p.X, p.Y)
		s.setRune(x, y, r, core.ColorBrightYellow)
	}
}

// javelinGlyph picks the character closest to a direction in degrees.
func javelinGlyph(deg float64) rune {
	deg = math.Mod(deg, 180)
	if deg < 0 {
		deg += 180
	}
	switch {
	case deg < 22.5 || deg >= 157.5:
		return '-'
	case deg < 67.5:
		return '/'
	case deg < 112.5:
		return '|'
	default:
		return '\\'
	}
}

// glyph maps a sprite to a character and color.
func glyph(sp core.Sprite) (rune, core.Color) {
	switch sp.Kind {
	case core.SpritePlayer:
		return '@', core.ColorBrightWhite
	case core.SpritePlayerDead:
		return 'x', core.ColorBrightRed
	case core.SpriteSmoke:
		if sp.Frame%2 == 0 {
			return '░', core.ColorGray
		}
		return '▒', core.ColorGray
	case core.SpriteMonster:
		return 'Z', core.ColorGreen
	case core.SpriteMonsterDead:
		return '%', core.ColorGreen
	case core.SpriteTile:
		switch sp.Frame {
		case sim.TileRock:
			return '█', core.ColorGray
		case sim.TileLedge:
			return '▀', core.ColorOrange
		default:
			return '.', core.ColorGreen
		}
	case core.SpriteHazard:
		return '^', core.ColorBrightRed
	case core.SpritePortal:
		return 'O', core.ColorBrightMagenta
	case core.SpriteCrosshair:
		return '+', core.ColorBrightYellow
	default:
		return '?', core.ColorWhite
	}
}

func tileBg(frame int) core.Color {
	if frame == sim.TileDecor {
		return core.ColorSky
	}
	return core.ColorBlack
}

// DrawText writes a string horizontally starting at the cell holding (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y float64, text string, c core.Color) {
	cx, cy := s.cellAt(x, y)
	i := 0
	for _, r := range text {
		s.setRune(cx+i, cy, r, c)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y float64, text string, c core.Color) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(float64(x)*s.cellW, y, text, c)
}

// Dim greys out everything drawn so far.
func (s *Screen) Dim() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x].Fg = core.ColorGray
			s.cells[y][x].Bg = core.ColorBlack
		}
	}
}

// LineHeight is one row of cells.
func (s *Screen) LineHeight() float64 {
	return s.cellH
}

// TextWidth returns the width of text in pixels.
func (s *Screen) TextWidth(text string) float64 {
	return float64(len([]rune(text))) * s.cellW
}

// String converts the screen buffer to plain text, one line per row.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the text of the specified row.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
