package mines

import (
	"strings"

	"github.com/vovakirdan/conscade/internal/core"
)

// glyphs is the drawing material for one charset. Map cells are
// 1<<shift columns wide.
type glyphs struct {
	shift        int
	empty        string
	cursor       string
	cell         string
	flag         string
	bomb         string
	wall         [8]string // top-left, top, top-right, left, right, bottom-left, bottom, bottom-right
	titleCursor  string
	titleCursorW int
	congFrame    string
	digits       [8]string
}

var sjisGlyphs = glyphs{
	shift:        1,
	empty:        "  ",
	cursor:       "◆",
	cell:         "■",
	flag:         "▲",
	bomb:         "●",
	wall:         [8]string{"┏", "━", "┓", "┃", "┃", "┗", "━", "┛"},
	titleCursor:  ">",
	titleCursorW: 1,
	congFrame:    strings.Repeat("━", 18),
	digits:       [8]string{"１", "２", "３", "４", "５", "６", "７", "８"},
}

var cp437Glyphs = glyphs{
	shift:        0,
	empty:        " ",
	cursor:       "♦",
	cell:         "■",
	flag:         "▲",
	bomb:         "☼",
	wall:         [8]string{"┌", "─", "┐", "│", "│", "└", "─", "┘"},
	titleCursor:  "»",
	titleCursorW: 1,
	congFrame:    strings.Repeat("─", 36),
	digits:       [8]string{"1", "2", "3", "4", "5", "6", "7", "8"},
}

var asciiGlyphs = glyphs{
	shift:        1,
	empty:        "  ",
	cursor:       "<>",
	cell:         "[]",
	flag:         " F",
	bomb:         " *",
	wall:         [8]string{" +", "--", "+ ", " |", "| ", " +", "--", "+ "},
	titleCursor:  ">",
	titleCursorW: 1,
	congFrame:    strings.Repeat("-", 36),
	digits:       [8]string{" 1", " 2", " 3", " 4", " 5", " 6", " 7", " 8"},
}

func glyphsFor(cs core.Charset) *glyphs {
	switch cs {
	case core.CharsetSJIS:
		return &sjisGlyphs
	case core.CharsetCP437:
		return &cp437Glyphs
	default:
		return &asciiGlyphs
	}
}

// scale converts map columns to screen columns.
func (g *glyphs) scale(x int) int {
	return x << g.shift
}
