package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// paletteSize is the number of colors in core's palette.
const paletteSize = int(core.ColorDimGrey) + 1

// ScreenRenderer converts a Screen buffer to a styled string. Styles are
// built once per lipgloss renderer, so SSH sessions get their own color
// profile.
type ScreenRenderer struct {
	styles [paletteSize][paletteSize]lipgloss.Style
}

// NewScreenRenderer builds styles for every foreground/background pair. A
// nil r uses the default renderer.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sr := &ScreenRenderer{}
	for fg := range paletteSize {
		for bg := range paletteSize {
			sr.styles[fg][bg] = r.NewStyle().
				Foreground(ansiColor(core.Color(fg))).
				Background(ansiColor(core.Color(bg)))
		}
	}
	return sr
}

func ansiColor(c core.Color) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(int(c.ANSI())))
}

func (sr *ScreenRenderer) style(fg, bg core.Color) lipgloss.Style {
	if int(fg) >= paletteSize {
		fg = core.ColorWhite
	}
	if int(bg) >= paletteSize {
		bg = core.ColorBlack
	}
	return sr.styles[fg][bg]
}

// Render converts s to a string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(sr.style(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
