package gui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/ontop/internal/core"
)

// The debug font is 6x16 pixels per character.
const (
	charWidth  = 6
	lineHeight = 16
)

// palette maps core colors to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xe0, 0xe0, 0xe0, 0xff},
	core.ColorRed:           {0xaa, 0x22, 0x22, 0xff},
	core.ColorGreen:         {0x33, 0x99, 0x33, 0xff},
	core.ColorYellow:        {0xcc, 0xaa, 0x22, 0xff},
	core.ColorBlue:          {0x22, 0x44, 0xaa, 0xff},
	core.ColorMagenta:       {0xaa, 0x33, 0xaa, 0xff},
	core.ColorCyan:          {0x22, 0xaa, 0xaa, 0xff},
	core.ColorWhite:         {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorBrightRed:     {0xff, 0x55, 0x55, 0xff},
	core.ColorBrightGreen:   {0x55, 0xff, 0x55, 0xff},
	core.ColorBrightYellow:  {0xff, 0xee, 0x55, 0xff},
	core.ColorBrightBlue:    {0x55, 0x77, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x55, 0xff, 0xff},
	core.ColorBrightCyan:    {0x55, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x88, 0x22, 0xff},
	core.ColorGray:          {0x80, 0x80, 0x80, 0xff},
	core.ColorBlack:         {0x00, 0x00, 0x00, 0xff},
	core.ColorSky:           {0x5c, 0x94, 0xfc, 0xff},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// canvas implements core.Canvas on the frame's screen image.
type canvas struct {
	dst     *ebiten.Image
	w, h    float64
	sprites *spriteSet
	text    *textCache
}

func (c *canvas) Size() (float64, float64) {
	return c.w, c.h
}

func (c *canvas) Clear(col core.Color) {
	c.dst.Fill(rgba(col))
}

func (c *canvas) FillRect(dst core.Rect, col core.Color) {
	vector.FillRect(c.dst, float32(dst.X), float32(dst.Y), float32(dst.W), float32(dst.H), rgba(col), false)
}

// DrawSprite stretches the sprite image over dst, mirrored when flipped and
// rotated around the center of dst by the sprite angle.
func (c *canvas) DrawSprite(s core.Sprite, dst core.Rect) {
	img, tint := c.sprites.image(s)
	bw, bh := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM = spriteGeoM(float64(bw), float64(bh), dst, s.Angle, s.Flip)
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(img, op)
}

// spriteGeoM maps an image of bw x bh onto dst.
func spriteGeoM(bw, bh float64, dst core.Rect, angle float64, flip bool) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-bw/2, -bh/2)
	sx := dst.W / bw
	if flip {
		sx = -sx
	}
	g.Scale(sx, dst.H/bh)
	if angle != 0 {
		// Screen y points down, so a counter-clockwise angle rotates negatively
		g.Rotate(-angle * math.Pi / 180)
	}
	c := dst.Center()
	g.Translate(c.X, c.Y)
	return g
}

func (c *canvas) DrawText(x, y float64, s string, col core.Color) {
	img := c.text.image(s)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(math.Round(x), math.Round(y))
	op.ColorScale.ScaleWithColor(rgba(col))
	c.dst.DrawImage(img, op)
}

func (c *canvas) DrawTextCentered(y float64, s string, col core.Color) {
	c.DrawText((c.w-c.TextWidth(s))/2, y, s, col)
}

func (c *canvas) Dim() {
	vector.FillRect(c.dst, 0, 0, float32(c.w), float32(c.h), color.RGBA{0, 0, 0, 0xa0}, false)
}

func (c *canvas) LineHeight() float64 {
	return lineHeight
}

func (c *canvas) TextWidth(s string) float64 {
	return float64(len([]rune(s)) * charWidth)
}

// maxCachedText bounds the text cache; the HUD clock makes new strings every second.
const maxCachedText = 256

// textCache keeps white text images so colored text is a tinted draw.
type textCache struct {
	images map[string]*ebiten.Image
}

func newTextCache() *textCache {
	return &textCache{images: make(map[string]*ebiten.Image)}
}

func (t *textCache) image(s string) *ebiten.Image {
	if img, ok := t.images[s]; ok {
		return img
	}
	if len(t.images) >= maxCachedText {
		for k, img := range t.images {
			img.Deallocate()
			delete(t.images, k)
		}
	}
	img := ebiten.NewImage(max(len([]rune(s))*charWidth, 1), lineHeight)
	ebitenutil.DebugPrintAt(img, s, 0, 0)
	t.images[s] = img
	return img
}
