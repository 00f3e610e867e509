package gui

import (
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/ontop/internal/core"
)

func TestSpriteGeoM(t *testing.T) {
	dst := core.NewRect(10, 20, 40, 10)

	tests := []struct {
		name   string
		angle  float64
		flip   bool
		sx, sy float64 // Point in a 1x1 source image
		wx, wy float64
	}{
		{"top left", 0, false, 0, 0, 10, 20},
		{"bottom right", 0, false, 1, 1, 50, 30},
		{"flipped tip", 0, true, 1, 0.5, 10, 25},
		{"pointing up", 90, false, 1, 0.5, 30, 5},
		{"pointing down", -90, false, 1, 0.5, 30, 45},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := spriteGeoM(1, 1, dst, tc.angle, tc.flip)
			x, y := g.Apply(tc.sx, tc.sy)
			if math.Abs(x-tc.wx) > 1e-9 || math.Abs(y-tc.wy) > 1e-9 {
				t.Errorf("Apply(%v, %v) = (%v, %v), expected (%v, %v)", tc.sx, tc.sy, x, y, tc.wx, tc.wy)
			}
		})
	}
}

func TestSpriteFiles(t *testing.T) {
	got := spriteFiles("Sprites", core.Sprite{Kind: core.SpriteMonster, Frame: 3})
	want := []string{filepath.Join("Sprites", "zombie_3.png"), filepath.Join("Sprites", "zombie.png")}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("spriteFiles() = %v, expected %v", got, want)
	}
}

func TestPlaceholderColors(t *testing.T) {
	if placeholder(core.Sprite{Kind: core.SpritePlayer}) == placeholder(core.Sprite{Kind: core.SpriteMonster}) {
		t.Error("player and monster placeholders should differ")
	}

	smoke := placeholder(core.Sprite{Kind: core.SpriteSmoke, Frame: 5}).(color.RGBA)
	if smoke.A >= 0xff || smoke.R > smoke.A {
		t.Errorf("late smoke frames should be translucent and premultiplied, got %+v", smoke)
	}

	if rgba(core.Color(200)) != rgba(core.ColorDefault) {
		t.Error("unknown colors should fall back to the default")
	}
}
