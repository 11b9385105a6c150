package pcat

import "golang.org/x/text/encoding/charmap"

// lowGlyphs are the pictures the adapter's character ROM shows for the
// control range, which charmap maps to control codes.
var lowGlyphs = [32]rune{
	' ', '☺', '☻', '♥', '♦', '♣', '♠', '•', '◘', '○', '◙', '♂', '♀', '♪', '♫', '☼',
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨', '↑', '↓', '→', '←', '∟', '↔', '▲', '▼',
}

const houseGlyph = '⌂'

var glyphBytes = func() map[rune]byte {
	m := make(map[rune]byte, len(lowGlyphs))
	for i, r := range lowGlyphs[1:] {
		m[r] = byte(i + 1)
	}
	m[houseGlyph] = 0x7f
	return m
}()

// EncodeCP437 converts s to code page 437. The ROM pictures of the control
// range are accepted as well as their control codes. Runes the code page
// lacks become '?'.
func EncodeCP437(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if b, ok := glyphBytes[r]; ok {
			out = append(out, b)
			continue
		}
		if b, ok := charmap.CodePage437.EncodeRune(r); ok {
			out = append(out, b)
			continue
		}
		out = append(out, '?')
	}
	return out
}

// DecodeCP437 returns the glyph the adapter shows for b.
func DecodeCP437(b byte) rune {
	switch {
	case b < 0x20:
		return lowGlyphs[b]
	case b == 0x7f:
		return houseGlyph
	}
	return charmap.CodePage437.DecodeByte(b)
}
