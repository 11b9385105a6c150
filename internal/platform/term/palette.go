// Package term connects consoles to a real terminal through tcell: the
// color palette, key translation, and the presenter and keyboard that let
// the emulated DOS machines run inside a terminal window.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/conscade/internal/core"
)

// ansi maps a base color (black, blue, red, magenta, green, cyan, yellow,
// white) to its ANSI palette index.
var ansi = [8]int{0, 4, 1, 5, 2, 6, 3, 7}

// Palette holds one style per console color byte 0..0x1F.
type Palette [int(core.ColorMask) + 1]tcell.Style

// NewPalette builds the color pair table: plain and light foregrounds on
// the default background, and black on plain or light backgrounds for the
// reverse colors.
func NewPalette() Palette {
	var p Palette
	for i := 0; i < 8; i++ {
		base := tcell.PaletteColor(ansi[i])
		light := tcell.PaletteColor(ansi[i] | 8)
		p[i] = tcell.StyleDefault.Foreground(base).Background(tcell.ColorDefault)
		p[8|i] = tcell.StyleDefault.Foreground(light).Background(tcell.ColorDefault)
		p[0x10|i] = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(base)
		p[0x18|i] = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(light)
	}
	return p
}

// Style returns the style for c. Bits above the color mask are ignored.
func (p *Palette) Style(c core.Color) tcell.Style {
	return p[c&core.ColorMask]
}

// Color maps a style back to its color byte. Styles outside the palette,
// such as the terminal default, report false.
func (p *Palette) Color(st tcell.Style) (core.Color, bool) {
	fg, bg, _ := st.Decompose()
	for i := range p {
		pfg, pbg, _ := p[i].Decompose()
		if pfg == fg && pbg == bg {
			return core.Color(i), true
		}
	}
	return core.DefaultColor, false
}

// ANSIIndex returns the 16 color palette index of c's base color and
// light bit.
func ANSIIndex(c core.Color) int {
	i := ansi[c.Base()]
	if c.IsLight() {
		i |= 8
	}
	return i
}
