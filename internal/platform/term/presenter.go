package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/conscade/internal/core"
)

// Surface is the drawing part of tcell.Screen.
type Surface interface {
	Size() (int, int)
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Presenter draws decoded video memory on a terminal surface. It
// implements cons.Display.
type Presenter struct {
	surface Surface
	palette Palette
	dirty   bool
}

// NewPresenter returns a presenter drawing on surface.
func NewPresenter(surface Surface) *Presenter {
	return &Presenter{surface: surface, palette: NewPalette(), dirty: true}
}

// Invalidate forces the next Present to clear the surface first, e.g.
// after a resize.
func (p *Presenter) Invalidate() {
	p.dirty = true
}

// Present copies s to the top-left corner of the surface and shows it.
//
// A double-width glyph occupies its cell and the continuation cell after
// it. Glyphs the terminal renders narrow get a blank in the continuation
// cell, except box drawing lines which are repeated so frames stay joined.
func (p *Presenter) Present(s *core.Screen) {
	if p.dirty {
		p.surface.Clear()
		p.dirty = false
	}
	sw, sh := p.surface.Size()
	w := core.Min(s.Width(), sw)
	h := core.Min(s.Height(), sh)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := s.GetCell(x, y)
			st := p.palette.Style(c.Color)
			if !c.Cont {
				p.surface.SetContent(x, y, c.Rune, nil, st)
				continue
			}
			lead := s.GetCell(x-1, y)
			if runewidth.RuneWidth(lead.Rune) == 2 {
				continue
			}
			r := ' '
			if isBoxLine(lead.Rune) {
				r = lead.Rune
			}
			p.surface.SetContent(x, y, r, nil, st)
		}
	}
	p.surface.Show()
}

func isBoxLine(r rune) bool {
	return r >= 0x2500 && r <= 0x257F
}
