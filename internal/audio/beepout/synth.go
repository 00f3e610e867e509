package beepout

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/ontop/internal/audio"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// tone is a fixed-length oscillator with a linear attack and an
// exponential decay.
type tone struct {
	rate   beep.SampleRate
	wave   Wave
	freq   float64
	slide  float64 // Hz per second added to freq
	phase  float64
	pos    int
	total  int
	attack int
	decay  float64 // Decay rate per second
	amp    float64
	rng    *rand.Rand
}

// NewTone creates a streamer playing one note for d.
func NewTone(rate beep.SampleRate, wave Wave, freq float64, d time.Duration, amp float64) beep.Streamer {
	return &tone{
		rate:   rate,
		wave:   wave,
		freq:   freq,
		total:  rate.N(d),
		attack: rate.N(5 * time.Millisecond),
		decay:  4,
		amp:    amp,
		rng:    rand.New(rand.NewSource(int64(freq*1000) + int64(d))),
	}
}

// withSlide returns a tone whose pitch glides by hzPerSec.
func withSlide(s beep.Streamer, hzPerSec float64) beep.Streamer {
	if t, ok := s.(*tone); ok {
		t.slide = hzPerSec
	}
	return s
}

// withDecay returns a tone with a different decay rate.
func withDecay(s beep.Streamer, perSec float64) beep.Streamer {
	if t, ok := s.(*tone); ok {
		t.decay = perSec
	}
	return s
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		sec := float64(t.pos) / float64(t.rate)

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		case WaveNoise:
			v = t.rng.Float64()*2 - 1
		}

		env := math.Exp(-sec * t.decay)
		if t.pos < t.attack {
			env *= float64(t.pos) / float64(t.attack)
		}
		v *= env * t.amp

		samples[i][0] = v
		samples[i][1] = v

		freq := t.freq + t.slide*sec
		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// melody is an endless arpeggio used as the background loop.
type melody struct {
	rate  beep.SampleRate
	notes []float64
	step  int // Samples per note
	pos   int
	phase float64
}

// Notes of the background loop, a slow D minor arpeggio.
var loopNotes = []float64{146.83, 174.61, 220.00, 293.66, 220.00, 174.61, 130.81, 164.81}

// NewMelody creates the endless background loop.
func NewMelody(rate beep.SampleRate) beep.Streamer {
	return &melody{rate: rate, notes: loopNotes, step: rate.N(400 * time.Millisecond)}
}

func (m *melody) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		idx := (m.pos / m.step) % len(m.notes)
		inNote := float64(m.pos%m.step) / float64(m.step)

		// Soft pluck: quick rise, long tail
		env := math.Min(inNote*20, 1) * math.Exp(-inNote*3)
		v := 0.12 * env * (4*math.Abs(m.phase-0.5) - 1)

		samples[i][0] = v
		samples[i][1] = v

		m.phase += m.notes[idx] / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.pos++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

// gain wraps a streamer in a linear volume control. Zero is silent since the
// logarithmic scale has no representation for it.
func gain(s beep.Streamer, v float64) *effects.Volume {
	vol := &effects.Volume{Streamer: s, Base: 2}
	setGain(vol, v)
	return vol
}

func setGain(vol *effects.Volume, v float64) {
	if v <= 0 {
		vol.Volume = 0
		vol.Silent = true
		return
	}
	vol.Volume = math.Log2(v)
	vol.Silent = false
}

// effectStreamer builds the sound for an effect.
func effectStreamer(rate beep.SampleRate, e audio.Effect) beep.Streamer {
	switch e {
	case audio.EffectThrow:
		return NewTone(rate, WaveNoise, 0, 120*time.Millisecond, 0.25)
	case audio.EffectStick:
		// Thunk: low sine with a burst of noise
		return beep.Mix(
			withDecay(NewTone(rate, WaveSine, 90, 180*time.Millisecond, 0.6), 18),
			withDecay(NewTone(rate, WaveNoise, 0, 60*time.Millisecond, 0.3), 40),
		)
	case audio.EffectRecall:
		return withSlide(NewTone(rate, WaveTriangle, 300, 200*time.Millisecond, 0.3), 1500)
	case audio.EffectKill:
		return beep.Seq(
			NewTone(rate, WaveSquare, 220, 80*time.Millisecond, 0.2),
			NewTone(rate, WaveSquare, 110, 120*time.Millisecond, 0.2),
		)
	case audio.EffectDeath:
		return withDecay(withSlide(NewTone(rate, WaveTriangle, 330, 900*time.Millisecond, 0.35), -300), 2)
	case audio.EffectPortal:
		return beep.Seq(
			NewTone(rate, WaveSine, 523.25, 150*time.Millisecond, 0.3),
			NewTone(rate, WaveSine, 659.25, 150*time.Millisecond, 0.3),
			NewTone(rate, WaveSine, 783.99, 400*time.Millisecond, 0.3),
		)
	case audio.EffectSelect:
		return NewTone(rate, WaveSquare, 880, 40*time.Millisecond, 0.1)
	default:
		return nil
	}
}
