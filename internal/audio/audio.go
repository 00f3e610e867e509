// Package audio defines the sound sink the game talks to and the volume
// settings. Device output lives in audio/beepout.
package audio

import "math"

// Effect is a one-shot sound.
type Effect int

const (
	EffectThrow Effect = iota
	EffectStick        // Javelin hits a wall
	EffectRecall
	EffectKill
	EffectDeath
	EffectPortal
	EffectSelect // Menu navigation
)

func (e Effect) String() string {
	switch e {
	case EffectThrow:
		return "throw"
	case EffectStick:
		return "stick"
	case EffectRecall:
		return "recall"
	case EffectKill:
		return "kill"
	case EffectDeath:
		return "death"
	case EffectPortal:
		return "portal"
	case EffectSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Sink accepts playback commands. Implementations never return errors;
// playback failures are logged and swallowed.
type Sink interface {
	PlayMusic()
	StopMusic()
	PlayEffect(e Effect)
	SetVolume(v float64)
	Close()
}

// VolumeStep is the increment used by the options screen.
const VolumeStep = 0.1

// Settings holds the user-adjustable audio settings for a session. It is
// shared by pointer between the sink owner and the options screen.
type Settings struct {
	Volume float64 // Master volume, 0..1
}

// NewSettings creates settings with a clamped volume.
func NewSettings(volume float64) *Settings {
	s := &Settings{}
	s.Set(volume)
	return s
}

// Set changes the master volume, clamped to 0..1.
func (s *Settings) Set(v float64) {
	s.Volume = math.Max(0, math.Min(1, v))
}

// Step changes the master volume by delta and returns the new value.
// The result is rounded to the step grid so repeated steps do not drift.
func (s *Settings) Step(delta float64) float64 {
	s.Set(math.Round((s.Volume+delta)/VolumeStep) * VolumeStep)
	return s.Volume
}

// Percent returns the master volume as a whole percentage.
func (s *Settings) Percent() int {
	return int(math.Round(s.Volume * 100))
}

// Nop is a silent sink.
type Nop struct{}

func (Nop) PlayMusic() {}
func (Nop) StopMusic() {}
func (Nop) PlayEffect(Effect) {}
func (Nop) SetVolume(float64) {}
func (Nop) Close() {}
