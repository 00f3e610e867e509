// Package level loads tile maps for the platformer.
// A map has tile layers (drawn, and turned into platforms when marked
// collidable) and an object layer naming the player spawn, hazards, the end
// portal and monster spawns.
package level

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/ontop/internal/core"
)

//go:embed maps/olympus.yaml
var defaultMapYAML []byte

// Object names recognised in the object layer.
const (
	ObjectPlayerSpawn = "PlayerSpawn"
	ObjectHazard      = "Hazard"
	ObjectPortal      = "Portal"
	ObjectZombie      = "Zombie"
	ObjectMonster     = "Monster"
)

// hazardAlias is the marker name used by older maps for spike tiles.
const hazardAlias = "picpic"

// Sentinel errors returned by Parse.
var (
	ErrNoLayers        = errors.New("level: map has no tile layers")
	ErrInvalidTileSize = errors.New("level: tile_size must be positive")
)

// Object is a named point or rectangle from the map's object layer.
type Object struct {
	Name       string             `yaml:"name"`
	X          float64            `yaml:"x"`
	Y          float64            `yaml:"y"`
	Width      float64            `yaml:"width,omitempty"`
	Height     float64            `yaml:"height,omitempty"`
	Properties map[string]float64 `yaml:"properties,omitempty"`
}

// yamlLayer is the YAML structure of a tile layer.
type yamlLayer struct {
	Name    string   `yaml:"name"`
	Collide bool     `yaml:"collide"`
	Rows    []string `yaml:"rows"`
}

// yamlMap is the YAML structure of a map file.
type yamlMap struct {
	Name     string      `yaml:"name"`
	TileSize float64     `yaml:"tile_size"`
	Layers   []yamlLayer `yaml:"layers"`
	Objects  []Object    `yaml:"objects"`
}

// Tile is a non-empty cell of a tile layer.
type Tile struct {
	Col, Row int
	Glyph    rune
}

// TileLayer is a parsed tile layer.
type TileLayer struct {
	Name    string
	Collide bool
	Tiles   []Tile
}

// MonsterSpawn describes a monster placed on the map.
// Zero Speed or WalkDistance means "use the configured default".
type MonsterSpawn struct {
	Pos          core.Vec
	Speed        float64
	WalkDistance float64
	Zombie       bool // Zombies also turn after walking WalkDistance
}

// Level is a parsed map ready to populate a simulation.
type Level struct {
	Name     string
	TileSize float64
	Cols     int
	Rows     int
	Layers   []TileLayer
	Solids   []core.Rect // One rectangle per collidable tile
	Spawn    core.Vec
	HasSpawn bool
	Hazards  []core.Rect
	Portals  []core.Rect
	Monsters []MonsterSpawn
}

// PixelSize returns the map dimensions in world pixels.
func (l *Level) PixelSize() (float64, float64) {
	return float64(l.Cols) * l.TileSize, float64(l.Rows) * l.TileSize
}

// TileRect returns the world rectangle covered by a tile.
func (l *Level) TileRect(t Tile) core.Rect {
	return core.NewRect(float64(t.Col)*l.TileSize, float64(t.Row)*l.TileSize, l.TileSize, l.TileSize)
}

// Parse parses a YAML map.
func Parse(data []byte) (*Level, error) {
	var ym yamlMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return nil, fmt.Errorf("level: yaml unmarshal: %w", err)
	}
	if ym.TileSize <= 0 {
		return nil, ErrInvalidTileSize
	}
	if len(ym.Layers) == 0 {
		return nil, ErrNoLayers
	}

	lvl := &Level{
		Name:     ym.Name,
		TileSize: ym.TileSize,
	}

	for _, yl := range ym.Layers {
		layer := TileLayer{Name: yl.Name, Collide: yl.Collide}
		for row, line := range yl.Rows {
			col := 0
			for _, r := range line {
				if !isEmpty(r) {
					t := Tile{Col: col, Row: row, Glyph: r}
					layer.Tiles = append(layer.Tiles, t)
					if yl.Collide {
						lvl.Solids = append(lvl.Solids, lvl.TileRect(t))
					}
				}
				col++
			}
			lvl.Cols = max(lvl.Cols, col)
		}
		lvl.Rows = max(lvl.Rows, len(yl.Rows))
		lvl.Layers = append(lvl.Layers, layer)
	}

	for _, obj := range ym.Objects {
		lvl.addObject(obj)
	}

	return lvl, nil
}

// addObject routes an object-layer entry to the matching collection.
// Unknown names are ignored so maps can carry editor-only markers.
func (l *Level) addObject(obj Object) {
	switch obj.Name {
	case ObjectPlayerSpawn:
		l.Spawn = core.V(obj.X, obj.Y)
		l.HasSpawn = true
	case ObjectHazard, hazardAlias:
		l.Hazards = append(l.Hazards, l.objectRect(obj))
	case ObjectPortal:
		l.Portals = append(l.Portals, l.objectRect(obj))
	case ObjectZombie, ObjectMonster:
		l.Monsters = append(l.Monsters, MonsterSpawn{
			Pos:          core.V(obj.X, obj.Y),
			Speed:        obj.Properties["speed"],
			WalkDistance: obj.Properties["walk_distance"],
			Zombie:       obj.Name == ObjectZombie,
		})
	}
}

// objectRect returns the object's rectangle, one tile in size when unset.
func (l *Level) objectRect(obj Object) core.Rect {
	w, h := obj.Width, obj.Height
	if w <= 0 {
		w = l.TileSize
	}
	if h <= 0 {
		h = l.TileSize
	}
	return core.NewRect(obj.X, obj.Y, w, h)
}

// Load reads and parses a map file.
// The returned error wraps the os error, so errors.Is(err, fs.ErrNotExist) works.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level: parse %s: %w", path, err)
	}
	return lvl, nil
}

// Default returns the embedded default map.
func Default() (*Level, error) {
	return Parse(defaultMapYAML)
}

// Open loads the map at path, or the embedded default when path is empty.
func Open(path string) (*Level, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Check reports problems that do not stop a map from loading but make it
// play badly: the game falls back to defaults for each of them.
func Check(l *Level) []string {
	var warnings []string
	w, h := l.PixelSize()
	bounds := core.NewRect(0, 0, w, h)

	if len(l.Solids) == 0 {
		warnings = append(warnings, "no collidable tiles, everything falls")
	}
	if !l.HasSpawn {
		warnings = append(warnings, "no "+ObjectPlayerSpawn+" object, the fallback spawn is used")
	} else if !bounds.Contains(l.Spawn) {
		warnings = append(warnings, "spawn is outside the map")
	}
	if len(l.Portals) == 0 {
		warnings = append(warnings, "no "+ObjectPortal+" object, the level cannot be finished")
	}
	for _, m := range l.Monsters {
		if !bounds.Contains(m.Pos) {
			warnings = append(warnings, fmt.Sprintf("monster at (%.0f, %.0f) is outside the map", m.Pos.X, m.Pos.Y))
		}
	}
	return warnings
}

func isEmpty(r rune) bool {
	return r == '.' || r == ' '
}
