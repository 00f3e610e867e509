package core

// Color is a palette entry understood by every frontend.
// Terminal frontends map it to ANSI 256-color codes, window frontends to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
	ColorSky
)

// SpriteKind names a visual a frontend knows how to draw.
// Frontends that fail to load the real image draw a placeholder instead.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpritePlayerDead
	SpriteSmoke
	SpriteJavelin
	SpriteMonster
	SpriteMonsterDead
	SpriteTile
	SpriteHazard
	SpritePortal
	SpriteCrosshair
)

// String returns the sprite name, also used as the asset file stem.
func (k SpriteKind) String() string {
	switch k {
	case SpritePlayer:
		return "player"
	case SpritePlayerDead:
		return "player_dead"
	case SpriteSmoke:
		return "smoke"
	case SpriteJavelin:
		return "javelin"
	case SpriteMonster:
		return "zombie"
	case SpriteMonsterDead:
		return "zombie_dead"
	case SpriteTile:
		return "tile"
	case SpriteHazard:
		return "hazard"
	case SpritePortal:
		return "portal"
	case SpriteCrosshair:
		return "crosshair"
	default:
		return "unknown"
	}
}

// Sprite is a draw request for a kind of visual at a given animation state.
type Sprite struct {
	Kind  SpriteKind
	Frame int     // Animation frame index
	Angle float64 // Rotation in degrees, counter-clockwise (javelin)
	Flip  bool    // Mirror horizontally (facing left)
}

// Canvas is the render sink the modes draw into. All coordinates are screen
// space pixels; the camera has already been applied.
type Canvas interface {
	// Size returns the visible area in pixels.
	Size() (w, h float64)

	// Clear fills the whole canvas with a background color.
	Clear(c Color)

	// FillRect fills a screen rectangle with a solid color.
	FillRect(dst Rect, c Color)

	// DrawSprite draws a sprite stretched into dst.
	DrawSprite(s Sprite, dst Rect)

	// DrawText draws a single line of text with its top-left at (x, y).
	DrawText(x, y float64, text string, c Color)

	// DrawTextCentered draws a line of text centered horizontally at y.
	DrawTextCentered(y float64, text string, c Color)

	// Dim darkens everything drawn so far (pause overlay).
	Dim()

	// LineHeight returns the vertical distance between text lines in pixels.
	LineHeight() float64

	// TextWidth returns the rendered width of a line of text in pixels.
	TextWidth(text string) float64
}
