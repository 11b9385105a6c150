package core

import "testing"

func TestNewColorRoundTrip(t *testing.T) {
	for v := Color(0); v <= ColorMask; v++ {
		c := NewColor(v.Base(), v.IsLight(), v.IsReverse())
		if c != v {
			t.Errorf("NewColor(%v) = 0x%02x, expected 0x%02x", v, uint8(c), uint8(v))
		}
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		c        Color
		expected string
	}{
		{Black, "black"},
		{Red | Light, "light red"},
		{Cyan | Reverse, "cyan/reverse"},
		{Yellow | Light | Reverse, "light yellow/reverse"},
	}
	for _, tc := range tests {
		if got := tc.c.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}

func TestKeypadMapKey(t *testing.T) {
	pad := Keypad{Up: 0x103, Down: 0x102, Left: 0x104, Right: 0x105, Return: 0x0a, Escape: 0x1b, Space: 0x20}

	tests := []struct {
		key      Key
		expected Action
	}{
		{0x103, ActionUp},
		{'w', ActionUp},
		{'S', ActionDown},
		{0x104, ActionLeft},
		{'d', ActionRight},
		{0x20, ActionKey1},
		{'Z', ActionKey1},
		{0x0a, ActionKey2},
		{'x', ActionKey2},
		{0x1b, ActionCancel},
		{'C', ActionCancel},
		{'q', ActionNone},
		{KeyNone, ActionNone},
	}
	for _, tc := range tests {
		if got := pad.MapKey(tc.key); got != tc.expected {
			t.Errorf("MapKey(0x%x) = %v, expected %v", uint16(tc.key), got, tc.expected)
		}
	}
}
