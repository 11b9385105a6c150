package pc98

import "testing"

func TestShiftJISConversion(t *testing.T) {
	tests := []struct {
		name string
		sjis uint16
		jis  uint16
	}{
		{"black square", 0x81a1, 0x2223},
		{"hiragana a", 0x82a0, 0x2422},
		{"kanji a", 0x889f, 0x3021},
		{"fullwidth one", 0x8250, 0x2331},
		{"division sign", 0x8180, 0x2160},
		{"second plane", 0xe040, 0x5f21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SJISToJIS(tt.sjis); got != tt.jis {
				t.Errorf("SJISToJIS(%#x) = %#x, expected %#x", tt.sjis, got, tt.jis)
			}
			if got := JISToSJIS(tt.jis); got != tt.sjis {
				t.Errorf("JISToSJIS(%#x) = %#x, expected %#x", tt.jis, got, tt.sjis)
			}
		})
	}
}

func TestGlyphCode(t *testing.T) {
	code := GlyphCode(0x2223)
	if code != 0x2302 {
		t.Fatalf("GlyphCode(0x2223) = %#x, expected 0x2302", code)
	}
	if !IsDoubleCell(code) {
		t.Error("IsDoubleCell() = false, expected true")
	}
	if IsCont(code) {
		t.Error("IsCont() = true for a lead cell")
	}
	if !IsCont(code | ContMark) {
		t.Error("IsCont() = false for a continuation cell")
	}
	if got := GlyphJIS(code | ContMark); got != 0x2223 {
		t.Errorf("GlyphJIS() = %#x, expected 0x2223", got)
	}
	if IsDoubleCell('A') {
		t.Error("IsDoubleCell('A') = true, expected false")
	}
}

func TestIsLeadByte(t *testing.T) {
	tests := []struct {
		b    byte
		want bool
	}{
		{0x41, false},
		{0x80, false},
		{0x81, true},
		{0x9f, true},
		{0xa0, false},
		{0xb1, false},
		{0xe0, true},
		{0xfc, true},
		{0xfd, false},
	}
	for _, tt := range tests {
		if got := IsLeadByte(tt.b); got != tt.want {
			t.Errorf("IsLeadByte(%#x) = %v, expected %v", tt.b, got, tt.want)
		}
	}
}
