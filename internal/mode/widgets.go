package mode

import (
	"strings"

	"github.com/vovakirdan/ontop/internal/core"
)

// choiceList is a vertical menu of selectable lines.
type choiceList struct {
	items []string
	sel   int

	// Filled by draw for mouse hit testing
	rows []float64
	lh   float64
}

func newChoiceList(items ...string) *choiceList {
	return &choiceList{items: items}
}

func (l *choiceList) move(delta int) {
	n := len(l.items)
	l.sel = ((l.sel+delta)%n + n) % n
}

func (l *choiceList) selected() string {
	return l.items[l.sel]
}

// hit returns the item under a screen point from the last draw.
func (l *choiceList) hit(p core.Vec) (int, bool) {
	for i, y := range l.rows {
		if p.Y >= y && p.Y < y+l.lh {
			return i, true
		}
	}
	return 0, false
}

// handle applies navigation events. It returns true when the current item
// was activated by Confirm or a click.
func (l *choiceList) handle(e core.Event) bool {
	switch e.Kind {
	case core.EventKeyDown:
		switch e.Action {
		case core.ActionUp:
			l.move(-1)
		case core.ActionDown:
			l.move(1)
		case core.ActionConfirm, core.ActionJump:
			return true
		}
	case core.EventMouseDown:
		if e.Button != core.MouseLeft {
			return false
		}
		if i, ok := l.hit(e.Pos); ok {
			l.sel = i
			return true
		}
	}
	return false
}

func (l *choiceList) draw(cv core.Canvas, top float64) {
	l.lh = cv.LineHeight()
	l.rows = l.rows[:0]
	for i, item := range l.items {
		y := top + float64(i)*l.lh*2
		l.rows = append(l.rows, y)
		if i == l.sel {
			cv.DrawTextCentered(y, "> "+item+" <", core.ColorBrightYellow)
		} else {
			cv.DrawTextCentered(y, item, core.ColorWhite)
		}
	}
}

// wrap splits text into lines no wider than width.
// A single word wider than width gets a line of its own.
func wrap(text string, width float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if measure(candidate) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
