// Package beepout plays the synthesized background loop and effects through
// the default output device. Sounds are generated, so there are no asset
// files to go missing; if the device cannot be opened the game runs silent.
package beepout

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/ontop/internal/audio"
	"github.com/vovakirdan/ontop/internal/config"
)

const sampleRate = beep.SampleRate(44100)

var _ audio.Sink = (*Speaker)(nil)

// Speaker plays through the default output device.
type Speaker struct {
	mu       sync.Mutex
	settings *audio.Settings
	music    *beep.Ctrl
	musicVol float64
	mixer    *beep.Mixer
	master   *effects.Volume
	log      *log.Logger
}

// Open returns a sink for the configured output. Disabled audio or a device
// that fails to open yields a silent sink and a logged warning.
func Open(cfg config.AudioConfig, settings *audio.Settings, logger *log.Logger) audio.Sink {
	if !cfg.Enabled {
		logger.Debug("audio disabled by config")
		return audio.Nop{}
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		logger.Warn("audio unavailable, running silent", "err", err)
		return audio.Nop{}
	}

	s := &Speaker{
		settings: settings,
		musicVol: cfg.MusicVolume,
		mixer:    &beep.Mixer{},
		log:      logger,
	}
	s.master = gain(s.mixer, settings.Volume)
	speaker.Play(s.master)
	logger.Debug("audio ready", "rate", int(sampleRate), "volume", settings.Volume)
	return s
}

// PlayMusic starts the background loop unless it is already playing.
func (s *Speaker) PlayMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()

	if s.music != nil {
		s.music.Paused = false
		return
	}
	s.music = &beep.Ctrl{Streamer: gain(NewMelody(sampleRate), s.musicVol)}
	s.mixer.Add(s.music)
}

// StopMusic pauses the background loop.
func (s *Speaker) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.music == nil {
		return
	}
	speaker.Lock()
	s.music.Paused = true
	speaker.Unlock()
}

// PlayEffect mixes a one-shot sound over whatever is playing.
func (s *Speaker) PlayEffect(e audio.Effect) {
	st := effectStreamer(sampleRate, e)
	if st == nil {
		s.log.Warn("unknown sound effect", "effect", int(e))
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// SetVolume changes the master volume and records it in the settings.
func (s *Speaker) SetVolume(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Set(v)
	speaker.Lock()
	setGain(s.master, s.settings.Volume)
	speaker.Unlock()
}

// Close stops all playback.
func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
}
