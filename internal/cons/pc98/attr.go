package pc98

import "github.com/vovakirdan/conscade/internal/core"

// PC-98 text attribute bits.
const (
	AttrSecret  uint16 = 0x01 // set means visible
	AttrReverse uint16 = 0x04
)

// ColorToAttr converts a console color to a text attribute: GRB in bits
// 5-7, reverse in bit 2, and the visible bit. The hardware has no light
// colors, so the light bit is dropped.
func ColorToAttr(c core.Color) uint16 {
	return uint16(c&7)<<5 | uint16(c&core.Reverse)>>2 | AttrSecret
}

// AttrToColor decodes an attribute produced by ColorToAttr.
func AttrToColor(a uint16) core.Color {
	c := core.Color(a>>5) & 7
	if a&AttrReverse != 0 {
		c |= core.Reverse
	}
	return c
}
