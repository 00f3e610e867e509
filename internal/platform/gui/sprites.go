package gui

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/ontop/internal/core"
	"github.com/vovakirdan/ontop/internal/sim"
)

type spriteKey struct {
	kind  core.SpriteKind
	frame int
}

// spriteSet loads sprite images lazily from a directory. A missing image is
// replaced by a tinted placeholder and reported once.
type spriteSet struct {
	dir    string
	log    *log.Logger
	images map[spriteKey]*ebiten.Image // nil entry: use the placeholder
	pixel  *ebiten.Image
}

func newSpriteSet(dir string, logger *log.Logger) *spriteSet {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &spriteSet{
		dir:    dir,
		log:    logger,
		images: make(map[spriteKey]*ebiten.Image),
		pixel:  pixel,
	}
}

// spriteFiles lists the candidate files for a sprite, most specific first.
func spriteFiles(dir string, s core.Sprite) []string {
	name := s.Kind.String()
	return []string{
		filepath.Join(dir, fmt.Sprintf("%s_%d.png", name, s.Frame)),
		filepath.Join(dir, name+".png"),
	}
}

// image returns the image for a sprite, plus a tint when it is a placeholder.
func (s *spriteSet) image(sp core.Sprite) (*ebiten.Image, color.Color) {
	key := spriteKey{sp.Kind, sp.Frame}
	img, seen := s.images[key]
	if !seen {
		img = s.load(sp)
		s.images[key] = img
	}
	if img == nil {
		return s.pixel, placeholder(sp)
	}
	return img, nil
}

func (s *spriteSet) load(sp core.Sprite) *ebiten.Image {
	if s.dir == "" {
		return nil
	}
	var lastErr error
	for _, path := range spriteFiles(s.dir, sp) {
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err == nil {
			return img
		}
		lastErr = err
	}
	s.log.Warn("sprite missing, using placeholder", "sprite", sp.Kind.String(), "frame", sp.Frame, "err", lastErr)
	return nil
}

// placeholder is the flat color drawn for a sprite without an image.
func placeholder(sp core.Sprite) color.Color {
	switch sp.Kind {
	case core.SpritePlayer:
		return rgba(core.ColorBrightWhite)
	case core.SpritePlayerDead:
		return rgba(core.ColorBrightRed)
	case core.SpriteSmoke:
		c := rgba(core.ColorGray)
		c.A = uint8(0xff - min(sp.Frame, 5)*0x28)
		return premultiply(c)
	case core.SpriteJavelin:
		return rgba(core.ColorBrightYellow)
	case core.SpriteMonster:
		return rgba(core.ColorGreen)
	case core.SpriteMonsterDead:
		return rgba(core.ColorRed)
	case core.SpriteTile:
		switch sp.Frame {
		case sim.TileRock:
			return rgba(core.ColorGray)
		case sim.TileLedge:
			return rgba(core.ColorOrange)
		default:
			return rgba(core.ColorGreen)
		}
	case core.SpriteHazard:
		return rgba(core.ColorBrightRed)
	case core.SpritePortal:
		return rgba(core.ColorBrightMagenta)
	case core.SpriteCrosshair:
		return rgba(core.ColorBrightYellow)
	default:
		return rgba(core.ColorDefault)
	}
}

func premultiply(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 0xff),
		G: uint8(uint32(c.G) * a / 0xff),
		B: uint8(uint32(c.B) * a / 0xff),
		A: c.A,
	}
}
