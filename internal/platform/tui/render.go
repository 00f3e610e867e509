package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ontop/internal/core"
)

// ansiColors maps core.Color to ANSI 256-color codes.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
	core.ColorBlack:         lipgloss.Color("16"),
	core.ColorSky:           lipgloss.Color("24"),
}

type colorPair struct {
	fg, bg core.Color
}

// styles caches one lipgloss style per foreground/background pair.
// SSH sessions render concurrently.
var (
	stylesMu sync.Mutex
	styles   = map[colorPair]lipgloss.Style{}
)

func styleFor(fg, bg core.Color) lipgloss.Style {
	stylesMu.Lock()
	defer stylesMu.Unlock()

	key := colorPair{fg, bg}
	if st, ok := styles[key]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if c, ok := ansiColors[fg]; ok {
		st = st.Foreground(c)
	}
	if c, ok := ansiColors[bg]; ok {
		st = st.Background(c)
	}
	styles[key] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.Get(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
