package beepout

import (
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"

	"github.com/vovakirdan/ontop/internal/audio"
	"github.com/vovakirdan/ontop/internal/config"
)

// drain streams s to completion and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer, limit int) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatalf("streamer did not end within %d samples", limit)
	return total, peak
}

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, w := range []Wave{WaveSine, WaveSquare, WaveTriangle, WaveNoise} {
		n, peak := drain(t, NewTone(rate, w, 440, 100*time.Millisecond, 0.5), rate.N(time.Second))
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: %d samples, expected %d", w, n, rate.N(100*time.Millisecond))
		}
		if peak > 0.5 || peak == 0 {
			t.Errorf("wave %d: peak %v outside (0, 0.5]", w, peak)
		}
	}
}

func TestEffectsAreFinite(t *testing.T) {
	rate := beep.SampleRate(8000)
	effects := []audio.Effect{
		audio.EffectThrow, audio.EffectStick, audio.EffectRecall, audio.EffectKill,
		audio.EffectDeath, audio.EffectPortal, audio.EffectSelect,
	}

	for _, e := range effects {
		t.Run(e.String(), func(t *testing.T) {
			s := effectStreamer(rate, e)
			if s == nil {
				t.Fatal("no streamer for effect")
			}
			n, peak := drain(t, s, rate.N(5*time.Second))
			if n == 0 || peak == 0 {
				t.Errorf("effect is silent: %d samples, peak %v", n, peak)
			}
			if peak > 1 {
				t.Errorf("effect clips: peak %v", peak)
			}
		})
	}

	if effectStreamer(rate, audio.Effect(99)) != nil {
		t.Error("unknown effect should have no streamer")
	}
}

func TestMelodyIsEndless(t *testing.T) {
	m := NewMelody(beep.SampleRate(8000))
	buf := make([][2]float64, 4096)
	for i := 0; i < 10; i++ {
		if n, ok := m.Stream(buf); !ok || n != len(buf) {
			t.Fatalf("melody ended after %d buffers", i)
		}
	}
}

func TestGainSilentAtZero(t *testing.T) {
	v := gain(NewMelody(beep.SampleRate(8000)), 0)
	if !v.Silent {
		t.Error("zero gain should be silent")
	}
	setGain(v, 0.5)
	if v.Silent || v.Volume != -1 {
		t.Errorf("gain 0.5 = %+v, expected Volume -1", v)
	}
}

func TestOpenDisabledIsSilent(t *testing.T) {
	sink := Open(config.AudioConfig{Enabled: false}, audio.NewSettings(0.5), log.New(io.Discard))
	if _, ok := sink.(audio.Nop); !ok {
		t.Errorf("Open() with audio disabled = %T, expected audio.Nop", sink)
	}
}
