package mode

import (
	"github.com/vovakirdan/ontop/internal/config"
	"github.com/vovakirdan/ontop/internal/core"
)

// Typewriter reveals paragraphs character by character, pausing between
// paragraphs and holding after the last one.
type Typewriter struct {
	paragraphs []string
	cps        float64
	pause      float64
	hold       float64

	current int     // Paragraph being typed
	shown   float64 // Characters of the current paragraph revealed
	waiting float64 // Seconds left in the current pause
	done    bool
}

// NewTypewriter creates a typewriter for a story.
func NewTypewriter(cfg config.StoryConfig) *Typewriter {
	tw := &Typewriter{
		paragraphs: cfg.Paragraphs,
		cps:        cfg.CharsPerSecond,
		pause:      cfg.ParagraphPause,
		hold:       cfg.FinalHold,
	}
	if len(tw.paragraphs) == 0 || tw.cps <= 0 {
		tw.done = true
	}
	return tw
}

// Update advances the animation by dt seconds.
func (t *Typewriter) Update(dt float64) {
	for dt > 0 && !t.done {
		if t.waiting > 0 {
			if dt < t.waiting {
				t.waiting -= dt
				return
			}
			dt -= t.waiting
			t.waiting = 0
			t.next()
			continue
		}

		total := float64(len([]rune(t.paragraphs[t.current])))
		need := (total - t.shown) / t.cps
		if dt < need {
			t.shown += dt * t.cps
			return
		}
		dt -= need
		t.shown = total
		t.waiting = t.pause
		if t.current == len(t.paragraphs)-1 {
			t.waiting = t.hold
		}
		if t.waiting <= 0 {
			t.next()
		}
	}
}

// next moves past a finished pause.
func (t *Typewriter) next() {
	if t.current == len(t.paragraphs)-1 {
		t.done = true
		return
	}
	t.current++
	t.shown = 0
}

// Skip ends the animation.
func (t *Typewriter) Skip() {
	t.done = true
}

// Done reports whether the whole story has been shown and held.
func (t *Typewriter) Done() bool {
	return t.done
}

// Visible returns the fully typed paragraphs followed by the partially
// typed current one.
func (t *Typewriter) Visible() []string {
	if len(t.paragraphs) == 0 {
		return nil
	}
	out := append([]string(nil), t.paragraphs[:t.current]...)
	cur := []rune(t.paragraphs[t.current])
	n := int(t.shown)
	if t.done {
		n = len(cur)
	}
	return append(out, string(cur[:min(n, len(cur))]))
}

// Story is a typewriter narrative screen used for the intro and the outro.
type Story struct {
	name  string
	title string
	tw    *Typewriter
	then  func() Mode
	mgr   *Manager
}

// NewIntro creates the story shown before the game starts.
func NewIntro(cfg config.Config) *Story {
	return &Story{name: "intro", title: cfg.Intro.Title, tw: NewTypewriter(cfg.Intro), then: func() Mode { return NewPlaying() }}
}

// NewOutro creates the story shown after reaching the portal.
func NewOutro(cfg config.Config) *Story {
	return &Story{name: "outro", title: cfg.Outro.Title, tw: NewTypewriter(cfg.Outro), then: func() Mode { return NewMenu() }}
}

func (s *Story) Name() string { return s.name }

func (s *Story) Enter(m *Manager) error {
	s.mgr = m
	return nil
}

func (s *Story) Exit()    {}
func (s *Story) Suspend() {}
func (s *Story) Resume()  {}

// HandleEvent skips the story on confirm, escape or a click.
func (s *Story) HandleEvent(e core.Event) {
	skip := e.Kind == core.EventMouseDown ||
		(e.Kind == core.EventKeyDown && (e.Action == core.ActionConfirm || e.Action == core.ActionBack || e.Action == core.ActionJump))
	if skip {
		s.tw.Skip()
	}
}

func (s *Story) Update(_ core.InputFrame, dt float64) {
	s.tw.Update(dt)
	if s.tw.Done() {
		//nolint:errcheck // The manager logs and records transition failures
		s.mgr.Replace(s.then())
	}
}

func (s *Story) Draw(cv core.Canvas) {
	w, h := cv.Size()
	lh := cv.LineHeight()
	cv.Clear(core.ColorBlack)

	cv.DrawTextCentered(h*0.1, s.title, core.ColorBrightYellow)

	y := h*0.1 + lh*3
	for _, para := range s.tw.Visible() {
		for _, line := range wrap(para, w*0.8, cv.TextWidth) {
			cv.DrawText(w*0.1, y, line, core.ColorWhite)
			y += lh
		}
		y += lh
	}

	cv.DrawTextCentered(h-lh*2, "Enter: skip", core.ColorGray)
}
