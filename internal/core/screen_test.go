package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 25)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 25 {
		t.Errorf("Height() = %d, expected 25", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.GetCell(x, y) != BlankCell {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", s.GetCell(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'X', Color: Red | Light})
	if got := s.GetCell(5, 5); got.Rune != 'X' || got.Color != Red|Light {
		t.Errorf("GetCell(5, 5) = %+v, expected X in light red", got)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "XXXXXXXXXX", Green)
	s.Clear()

	if got := s.Row(0); got != strings.Repeat(" ", 10) {
		t.Errorf("Row(0) after Clear = %q, expected blanks", got)
	}
}

func TestScreenDrawTextClipped(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(18, 0, "Hello", White)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenStringSkipsContinuation(t *testing.T) {
	s := NewScreen(4, 1)
	s.SetCell(0, 0, Cell{Rune: '■', Color: White})
	s.SetCell(1, 0, Cell{Rune: '■', Color: White, Cont: true})
	s.Set(2, 0, 'a')

	if got := s.String(); got != "■a " {
		t.Errorf("String() = %q, expected %q", got, "■a ")
	}
}
