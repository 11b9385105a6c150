package otitame

import "github.com/vovakirdan/conscade/internal/core"

// pieceStyle is one way of drawing field cells. Colors are offsets added
// to the shape color.
type pieceStyle struct {
	shift uint // field x to screen x

	fixed, falling, reached core.Color

	space, fix, fall, reach, wall string
}

func (s *pieceStyle) scale(x int) int {
	return x << s.shift
}

var baseStyles = []pieceStyle{
	{shift: 1, fixed: core.Reverse, falling: core.Reverse | core.Light, reached: core.Reverse | core.Light,
		space: "  ", fix: "  ", fall: "  ", reach: "  ", wall: "||"},
	{shift: 0, fixed: core.Reverse, falling: core.Reverse | core.Light, reached: core.Reverse | core.Light,
		space: " ", fix: " ", fall: " ", reach: " ", wall: "|"},
	{shift: 0, fixed: 0, falling: core.Light, reached: core.Light,
		space: " ", fix: "O", fall: "O", reach: "#", wall: "|"},
	{shift: 1, fixed: 0, falling: core.Light, reached: core.Light,
		space: "  ", fix: "[]", fall: "[]", reach: "[]", wall: "||"},
}

// sjisStyle needs double-width kanji graphics, so only the Shift-JIS
// charset offers it.
var sjisStyle = pieceStyle{
	shift: 1, fixed: 0, falling: core.Reverse, reached: core.Reverse,
	space: "  ", fix: "■", fall: "  ", reach: "  ", wall: "┃",
}

// stylesFor lists the styles a charset can show.
func stylesFor(cs core.Charset) []pieceStyle {
	styles := append([]pieceStyle(nil), baseStyles...)
	if cs == core.CharsetSJIS {
		styles = append(styles, sjisStyle)
	}
	return styles
}

// defaultStyle picks the native look of a screen.
func defaultStyle(cs core.Charset, width int) int {
	switch {
	case cs == core.CharsetSJIS:
		return len(baseStyles)
	case width <= 40:
		return 1
	}
	return 0
}
