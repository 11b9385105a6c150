package pc98

// IsLeadByte reports whether b starts a Shift-JIS double-byte character.
func IsLeadByte(b byte) bool {
	return (b >= 0x81 && b <= 0x9f) || (b >= 0xe0 && b <= 0xfc)
}

// SJISToJIS converts a Shift-JIS code (lead<<8|trail) to JIS X 0208.
func SJISToJIS(sjis uint16) uint16 {
	ah := uint8(sjis >> 8)
	al := uint8(sjis)
	if ah >= 0xa0 {
		ah -= 0x40
	}
	ah -= 0x70
	if al >= 0x80 {
		al--
	}
	ah <<= 1
	if al < 0x9e {
		ah--
	} else {
		al -= 0x5e
	}
	al -= 0x1f
	return uint16(ah)<<8 | uint16(al)
}

// JISToSJIS is the inverse of SJISToJIS.
func JISToSJIS(jis uint16) uint16 {
	hi := uint8(jis >> 8)
	lo := uint8(jis)
	if hi&1 != 0 {
		lo += 0x1f
		if lo >= 0x7f {
			lo++
		}
	} else {
		lo += 0x7e
	}
	hi = (hi-0x21)>>1 + 0x81
	if hi > 0x9f {
		hi += 0x40
	}
	return uint16(hi)<<8 | uint16(lo)
}

// ContMark flags the right half of a double-width glyph in text VRAM.
const ContMark uint16 = 0x8080

// GlyphCode returns the text VRAM code of a JIS character: the column
// byte high and the row byte, offset by 0x20, low.
func GlyphCode(jis uint16) uint16 {
	return uint16(uint8(jis))<<8 | uint16(uint8(jis>>8)-0x20)
}

// GlyphJIS is the inverse of GlyphCode. The continuation mark is ignored.
func GlyphJIS(code uint16) uint16 {
	code &^= ContMark
	return (code&0xff+0x20)<<8 | code>>8
}

// IsDoubleCell reports whether a text VRAM code holds a double-width
// glyph half rather than a single byte character.
func IsDoubleCell(code uint16) bool {
	return code&0xff00 != 0
}

// IsCont reports whether code is the right half of a double-width glyph.
func IsCont(code uint16) bool {
	return code&ContMark == ContMark
}
