// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable parameters of the game.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Player  PlayerConfig  `yaml:"player"`
	Javelin JavelinConfig `yaml:"javelin"`
	Monster MonsterConfig `yaml:"monster"`
	Level   LevelConfig   `yaml:"level"`
	Intro   StoryConfig   `yaml:"intro"`
	Outro   StoryConfig   `yaml:"outro"`
	Audio   AudioConfig   `yaml:"audio"`
	Assets  AssetsConfig  `yaml:"assets"`
}

// DisplayConfig defines frame pacing and how world pixels map to the screen.
type DisplayConfig struct {
	Title      string  `yaml:"title"`
	FPS        int     `yaml:"fps"`
	Width      int     `yaml:"width"`       // Window width in pixels
	Height     int     `yaml:"height"`      // Window height in pixels
	CellWidth  float64 `yaml:"cell_width"`  // World pixels per terminal column
	CellHeight float64 `yaml:"cell_height"` // World pixels per terminal row
}

// PlayerConfig defines player physics and death animation timing.
// Speeds and gravity are per-tick increments, not per-second.
type PlayerConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Speed             float64 `yaml:"speed"`
	Gravity           float64 `yaml:"gravity"`
	JumpVelocity      float64 `yaml:"jump_velocity"` // Negative = upward
	MaxFallSpeed      float64 `yaml:"max_fall_speed"`
	DeathPoseSeconds  float64 `yaml:"death_pose_seconds"`
	SmokeFrames       int     `yaml:"smoke_frames"`
	SmokeFrameSeconds float64 `yaml:"smoke_frame_seconds"`
	WalkFrames        int     `yaml:"walk_frames"`
	WalkFrameTicks    int     `yaml:"walk_frame_ticks"`
}

// JavelinConfig defines the projectile.
type JavelinConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	Gravity     float64 `yaml:"gravity"`
	RecallSpeed float64 `yaml:"recall_speed"`
}

// MonsterConfig defines default monster parameters. Map objects may override
// speed and walk distance per monster.
type MonsterConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Speed             float64 `yaml:"speed"` // Pixels per second
	WalkDistance      float64 `yaml:"walk_distance"`
	WalkFrames        int     `yaml:"walk_frames"`
	WalkFrameSeconds  float64 `yaml:"walk_frame_seconds"`
	DeathFrames       int     `yaml:"death_frames"`
	DeathFrameSeconds float64 `yaml:"death_frame_seconds"`
}

// LevelConfig selects the map and the spawn used when it has none.
type LevelConfig struct {
	Path           string  `yaml:"path"` // Empty = embedded default map
	FallbackSpawnX float64 `yaml:"fallback_spawn_x"`
	FallbackSpawnY float64 `yaml:"fallback_spawn_y"`
}

// StoryConfig defines a typewriter narrative screen.
type StoryConfig struct {
	Title          string   `yaml:"title"`
	Paragraphs     []string `yaml:"paragraphs"`
	CharsPerSecond float64  `yaml:"chars_per_second"`
	ParagraphPause float64  `yaml:"paragraph_pause"` // Seconds between paragraphs
	FinalHold      float64  `yaml:"final_hold"`      // Seconds after the last paragraph
}

// AudioConfig defines default volume levels.
type AudioConfig struct {
	Volume      float64 `yaml:"volume"`       // Master volume 0..1, overridden by the stored setting
	MusicVolume float64 `yaml:"music_volume"` // Relative level of the background loop
	Enabled     bool    `yaml:"enabled"`
}

// AssetsConfig points the window frontend at sprite images.
type AssetsConfig struct {
	SpriteDir string `yaml:"sprite_dir"`
}

// Validate checks the values the simulation divides by or sizes rectangles with.
func (c Config) Validate() error {
	var errs []error
	if c.Display.FPS <= 0 {
		errs = append(errs, fmt.Errorf("display.fps must be positive, got %d", c.Display.FPS))
	}
	if c.Display.CellWidth <= 0 || c.Display.CellHeight <= 0 {
		errs = append(errs, errors.New("display cell size must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Javelin.Width <= 0 || c.Javelin.Height <= 0 {
		errs = append(errs, errors.New("javelin size must be positive"))
	}
	if c.Monster.Width <= 0 || c.Monster.Height <= 0 {
		errs = append(errs, errors.New("monster size must be positive"))
	}
	if c.Player.MaxFallSpeed <= 0 {
		errs = append(errs, errors.New("player.max_fall_speed must be positive"))
	}
	if c.Javelin.RecallSpeed <= 0 {
		errs = append(errs, errors.New("javelin.recall_speed must be positive"))
	}
	if c.Player.SmokeFrames <= 0 {
		errs = append(errs, fmt.Errorf("player.smoke_frames must be positive, got %d", c.Player.SmokeFrames))
	}
	if c.Monster.DeathFrames <= 0 {
		errs = append(errs, fmt.Errorf("monster.death_frames must be positive, got %d", c.Monster.DeathFrames))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
