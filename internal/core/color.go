package core

import "fmt"

// Color is the one-byte color attribute shared by every console backend.
//
// Bits 0-2 select the base color, bit 3 selects the light variant and
// bit 4 swaps foreground and background.
type Color uint8

// Base colors. The bit order is blue=1, red=2, green=4.
const (
	Black Color = iota
	Blue
	Red
	Magenta
	Green
	Cyan
	Yellow
	White
)

// Attribute flags.
const (
	Light   Color = 0x08
	Reverse Color = 0x10

	// ColorMask covers every meaningful attribute bit.
	ColorMask Color = 0x1F
)

// DefaultColor is the attribute a frame starts with.
const DefaultColor = White

// NewColor packs a base color with the light and reverse flags.
func NewColor(base Color, light, reverse bool) Color {
	c := base & 7
	if light {
		c |= Light
	}
	if reverse {
		c |= Reverse
	}
	return c
}

// Base returns the base color index (0..7).
func (c Color) Base() Color {
	return c & 7
}

// IsLight reports whether the light bit is set.
func (c Color) IsLight() bool {
	return c&Light != 0
}

// IsReverse reports whether the reverse bit is set.
func (c Color) IsReverse() bool {
	return c&Reverse != 0
}

var colorNames = [8]string{"black", "blue", "red", "magenta", "green", "cyan", "yellow", "white"}

// String returns a human-readable name such as "light red/reverse".
func (c Color) String() string {
	name := colorNames[c.Base()]
	if c.IsLight() {
		name = "light " + name
	}
	if c.IsReverse() {
		name += "/reverse"
	}
	if c&^ColorMask != 0 {
		return fmt.Sprintf("%s(0x%02x)", name, uint8(c))
	}
	return name
}
