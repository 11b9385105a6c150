package pc98

import (
	"golang.org/x/text/encoding/japanese"

	"github.com/vovakirdan/conscade/internal/cons"
	"github.com/vovakirdan/conscade/internal/core"
)

// Decode converts text and attribute VRAM to a screen. Double-width
// glyphs become a lead cell followed by a continuation cell.
func Decode(text, attr *cons.Plane) *core.Screen {
	s := core.NewScreen(text.Width, text.Height)
	dec := japanese.ShiftJIS.NewDecoder()
	for y := 0; y < text.Height; y++ {
		for x := 0; x < text.Width; x++ {
			code := text.At(x, y)
			cell := core.Cell{Rune: ' ', Color: AttrToColor(attr.At(x, y))}
			switch {
			case IsCont(code):
				cell.Cont = true
			case IsDoubleCell(code):
				sj := JISToSJIS(GlyphJIS(code))
				if b, err := dec.Bytes([]byte{byte(sj >> 8), byte(sj)}); err == nil {
					if r := []rune(string(b)); len(r) == 1 {
						cell.Rune = r[0]
					}
				}
			case code > ' ' && code < 0x7f:
				cell.Rune = rune(code)
			case code >= 0xa1 && code <= 0xdf:
				if b, err := dec.Bytes([]byte{byte(code)}); err == nil {
					if r := []rune(string(b)); len(r) == 1 {
						cell.Rune = r[0]
					}
				}
			}
			s.SetCell(x, y, cell)
		}
	}
	return s
}
