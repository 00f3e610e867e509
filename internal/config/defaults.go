package config

import (
	_ "embed"
)

//go:embed defaults/ontop.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration, used when the embedded
// YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Title:      "GetOnTopOfIt",
			FPS:        60,
			Width:      800,
			Height:     600,
			CellWidth:  10,
			CellHeight: 20,
		},
		Player: PlayerConfig{
			Width:             20,
			Height:            40,
			Speed:             5,
			Gravity:           0.8,
			JumpVelocity:      -14,
			MaxFallSpeed:      15,
			DeathPoseSeconds:  1.0,
			SmokeFrames:       6,
			SmokeFrameSeconds: 0.1,
			WalkFrames:        6,
			WalkFrameTicks:    6,
		},
		Javelin: JavelinConfig{
			Width:       40,
			Height:      10,
			Speed:       15,
			Gravity:     0.5,
			RecallSpeed: 25,
		},
		Monster: MonsterConfig{
			Width:             30,
			Height:            40,
			Speed:             100,
			WalkDistance:      200,
			WalkFrames:        8,
			WalkFrameSeconds:  0.12,
			DeathFrames:       3,
			DeathFrameSeconds: 0.15,
		},
		Level: LevelConfig{
			FallbackSpawnX: 810,
			FallbackSpawnY: 6200,
		},
		Intro: StoryConfig{
			Title: "Olympus",
			Paragraphs: []string{
				"The feast raged on Mount Olympus, a banquet where the gods let go of every restraint.",
				"Dionysos, god of wine and revelry, laughed at the center of it all while the wine flowed and the dances grew wilder.",
				"Zeus watched his peers sink into excess. His anger rose, and a mortal was sent to climb to the summit and end the feast.",
			},
			CharsPerSecond: 50,
			ParagraphPause: 2,
			FinalHold:      5,
		},
		Outro: StoryConfig{
			Title: "The Summit",
			Paragraphs: []string{
				"You reach the top of Olympus, javelin in hand.",
				"The music stops. Zeus nods, and the feast is over.",
			},
			CharsPerSecond: 50,
			ParagraphPause: 2,
			FinalHold:      4,
		},
		Audio: AudioConfig{
			Volume:      1.0,
			MusicVolume: 0.3,
			Enabled:     true,
		},
		Assets: AssetsConfig{
			SpriteDir: "Sprites",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
