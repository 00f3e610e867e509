package level

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/ontop/internal/core"
)

const smallMap = `
name: Test
tile_size: 10
layers:
  - name: Decor
    rows:
      - "~..."
  - name: Ground
    collide: true
    rows:
      - "...."
      - "#..#"
      - "####"
objects:
  - name: PlayerSpawn
    x: 12
    y: 0
  - name: picpic
    x: 10
    y: 15
    width: 20
    height: 5
  - name: Portal
    x: 30
    y: 0
  - name: Zombie
    x: 11
    y: 2
    properties:
      speed: 80
      walk_distance: 110
  - name: Monster
    x: 21
    y: 2
  - name: EditorNote
    x: 1
    y: 1
`

func TestParse(t *testing.T) {
	lvl, err := Parse([]byte(smallMap))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if lvl.Cols != 4 || lvl.Rows != 3 {
		t.Errorf("size = %dx%d, expected 4x3", lvl.Cols, lvl.Rows)
	}
	if w, h := lvl.PixelSize(); w != 40 || h != 30 {
		t.Errorf("PixelSize() = (%v, %v), expected (40, 30)", w, h)
	}
	if len(lvl.Layers) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(lvl.Layers))
	}
	if len(lvl.Layers[0].Tiles) != 1 || lvl.Layers[0].Tiles[0].Glyph != '~' {
		t.Errorf("decor layer tiles = %+v", lvl.Layers[0].Tiles)
	}

	// Only the collidable layer produces platforms: 2 + 4 tiles
	if len(lvl.Solids) != 6 {
		t.Errorf("expected 6 solid tiles, got %d", len(lvl.Solids))
	}
	if lvl.Solids[0] != core.NewRect(0, 10, 10, 10) {
		t.Errorf("first solid = %+v", lvl.Solids[0])
	}

	if !lvl.HasSpawn || lvl.Spawn != core.V(12, 0) {
		t.Errorf("spawn = %v (has=%v)", lvl.Spawn, lvl.HasSpawn)
	}
	if len(lvl.Hazards) != 1 || lvl.Hazards[0] != core.NewRect(10, 15, 20, 5) {
		t.Errorf("hazards = %+v", lvl.Hazards)
	}
	// Portal without size defaults to one tile
	if len(lvl.Portals) != 1 || lvl.Portals[0] != core.NewRect(30, 0, 10, 10) {
		t.Errorf("portals = %+v", lvl.Portals)
	}

	if len(lvl.Monsters) != 2 {
		t.Fatalf("expected 2 monsters, got %d", len(lvl.Monsters))
	}
	z := lvl.Monsters[0]
	if !z.Zombie || z.Speed != 80 || z.WalkDistance != 110 {
		t.Errorf("zombie spawn = %+v", z)
	}
	m := lvl.Monsters[1]
	if m.Zombie || m.Speed != 0 {
		t.Errorf("monster spawn = %+v", m)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"no layers", "tile_size: 10\n", ErrNoLayers},
		{"zero tile size", "layers:\n  - name: a\n    rows: ['#']\n", ErrInvalidTileSize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data))
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse() error = %v, expected %v", err, tc.want)
			}
		})
	}

	if _, err := Parse([]byte("layers: [")); err == nil {
		t.Error("Parse() should fail on invalid YAML")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, expected fs.ErrNotExist", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.yaml")
	if err := os.WriteFile(path, []byte(smallMap), 0o600); err != nil {
		t.Fatal(err)
	}
	lvl, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if lvl.Name != "Test" {
		t.Errorf("Name = %q", lvl.Name)
	}
}

func TestDefaultMap(t *testing.T) {
	lvl, err := Open("")
	if err != nil {
		t.Fatalf("default map does not parse: %v", err)
	}

	if lvl.Cols != 32 || lvl.Rows != 48 {
		t.Errorf("default map size = %dx%d, expected 32x48", lvl.Cols, lvl.Rows)
	}
	if !lvl.HasSpawn {
		t.Error("default map should define a PlayerSpawn")
	}
	if len(lvl.Portals) == 0 {
		t.Error("default map should define a Portal")
	}
	if len(lvl.Solids) == 0 {
		t.Error("default map should have collidable tiles")
	}

	// The spawn must not start inside a wall
	spawn := core.NewRect(lvl.Spawn.X, lvl.Spawn.Y, 20, 40)
	for _, s := range lvl.Solids {
		if spawn.Intersects(s) {
			t.Fatalf("spawn %+v overlaps solid %+v", spawn, s)
		}
	}
}

func TestCheck(t *testing.T) {
	lvl, err := Parse([]byte(smallMap))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if w := Check(lvl); len(w) != 0 {
		t.Errorf("Check() = %q, expected no warnings", w)
	}

	def, err := Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	if w := Check(def); len(w) != 0 {
		t.Errorf("default map warnings: %q", w)
	}

	bare := &Level{TileSize: 10, Cols: 2, Rows: 2}
	bare.Monsters = []MonsterSpawn{{Pos: core.V(100, 5)}}
	if w := Check(bare); len(w) != 4 {
		t.Errorf("Check(bare) = %q, expected solids, spawn, portal and monster warnings", w)
	}
}
