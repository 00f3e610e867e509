package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. Empty means "use config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// presetScale returns the monster speed multiplier and the jump boost for a preset.
func presetScale(preset DifficultyPreset) (monsterSpeed, jumpBoost float64) {
	switch preset {
	case DifficultyEasy:
		return 0.75, 1.0
	case DifficultyHard:
		return 1.3, -1.0
	default:
		return 1.0, 0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Easy slows monsters and raises the jump, hard does the opposite.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	speed, boost := presetScale(preset)
	cfg.Monster.Speed *= speed
	cfg.Player.JumpVelocity -= boost
}
