package pcat

import "github.com/vovakirdan/conscade/internal/core"

// irgb maps the console color order (blue=1, red=2, green=4) to the CGA
// order (blue=1, green=2, red=4). The table is its own inverse.
var irgb = [16]uint8{0, 1, 4, 5, 2, 3, 6, 7, 8, 9, 12, 13, 10, 11, 14, 15}

// ColorToAttr converts a console color to a text attribute byte. Reverse
// moves the color to the background nibble over black, so reverse black
// is indistinguishable from black.
func ColorToAttr(c core.Color) uint8 {
	a := irgb[c&0x0f]
	if c&core.Reverse != 0 {
		a <<= 4
	}
	return a
}

// AttrToColor decodes an attribute produced by ColorToAttr.
func AttrToColor(a uint8) core.Color {
	if a&0x0f == 0 && a>>4 != 0 {
		return core.Color(irgb[a>>4]) | core.Reverse
	}
	return core.Color(irgb[a&0x0f])
}
