package tui

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/conscade/internal/core"
	"github.com/vovakirdan/conscade/internal/platform/term"
)

// ScreenRenderer turns decoded console screens into ANSI text, using the
// same palette as the terminal presenter.
type ScreenRenderer struct {
	r      *lipgloss.Renderer
	styles map[core.Color]lipgloss.Style
}

// NewScreenRenderer creates a renderer whose color profile follows w.
func NewScreenRenderer(w io.Writer) *ScreenRenderer {
	return WithRenderer(lipgloss.NewRenderer(w))
}

// WithRenderer creates a screen renderer on an existing lipgloss renderer.
func WithRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	return &ScreenRenderer{r: r, styles: make(map[core.Color]lipgloss.Style)}
}

// Renderer exposes the underlying lipgloss renderer.
func (sr *ScreenRenderer) Renderer() *lipgloss.Renderer {
	return sr.r
}

func (sr *ScreenRenderer) style(c core.Color) lipgloss.Style {
	c &= core.ColorMask
	if st, ok := sr.styles[c]; ok {
		return st
	}
	col := lipgloss.Color(strconv.Itoa(term.ANSIIndex(c)))
	st := sr.r.NewStyle()
	if c.IsReverse() {
		st = st.Foreground(lipgloss.Color("0")).Background(col)
	} else {
		st = st.Foreground(col)
	}
	sr.styles[c] = st
	return st
}

// Render converts a Screen to a styled string, one line per row.
// Adjacent cells with the same color share one escape sequence.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				if !cell.Cont {
					run.WriteRune(cell.Rune)
				}
			}
			sb.WriteString(sr.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with a renderer bound to w.
func RenderScreen(w io.Writer, s *core.Screen) string {
	return NewScreenRenderer(w).Render(s)
}
