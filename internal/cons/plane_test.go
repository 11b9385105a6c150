package cons

import (
	"testing"

	"github.com/vovakirdan/conscade/internal/core"
)

func filledPlane(w, h int, v uint16) *Plane {
	p := NewPlane(w, h)
	p.Fill(v)
	return p
}

func TestFlush(t *testing.T) {
	tests := []struct {
		name   string
		dstW   int
		dstH   int
		slots  []core.Rect
		writes int
	}{
		{"full fast path", 10, 5, []core.Rect{core.NewRect(0, 0, 10, 5)}, 50},
		{"nothing dirty", 10, 5, []core.Rect{{}}, 0},
		{"fully outside", 10, 5, []core.Rect{{}, core.NewRect(20, 20, 3, 3)}, 0},
		{"negative origin", 10, 5, []core.Rect{{}, core.NewRect(-2, -1, 4, 3)}, 4},
		{"past the corner", 10, 5, []core.Rect{{}, core.NewRect(8, 3, 5, 5)}, 4},
		{"several slots", 10, 5, []core.Rect{{}, core.NewRect(0, 0, 2, 1), core.NewRect(5, 2, 1, 3), core.NewRect(9, 4, 1, 1)}, 6},
		{"wider destination", 16, 8, []core.Rect{core.NewRect(0, 0, 10, 5)}, 50},
		{"narrower destination", 6, 5, []core.Rect{core.NewRect(0, 0, 10, 5)}, 30},
		{"shorter destination", 12, 3, []core.Rect{{}, core.NewRect(-1, 1, 4, 9)}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := filledPlane(10, 5, 'x')
			dst := NewPlane(tt.dstW, tt.dstH)
			var rects DirtyRects
			rects.Reset(src.Bounds())
			for i, r := range tt.slots {
				rects.Set(i, r)
			}

			n := Flush(dst, src, &rects)
			if n != tt.writes {
				t.Errorf("Flush() = %d, expected %d", n, tt.writes)
			}
			if dst.Writes != tt.writes {
				t.Errorf("Writes = %d, expected %d", dst.Writes, tt.writes)
			}
			copied := 0
			for _, c := range dst.Cells {
				if c == 'x' {
					copied++
				}
			}
			if copied != tt.writes {
				t.Errorf("copied cells = %d, expected %d", copied, tt.writes)
			}
		})
	}
}

func TestFlushUsesEachStride(t *testing.T) {
	src := NewPlane(4, 3)
	for i := range src.Cells {
		src.Cells[i] = uint16(i + 1)
	}
	dst := NewPlane(7, 3)
	var rects DirtyRects
	rects.Reset(src.Bounds())
	Flush(dst, src, &rects)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got, want := dst.At(x, y), src.At(x, y); got != want {
				t.Errorf("dst(%d,%d) = %d, expected %d", x, y, got, want)
			}
		}
		for x := 4; x < 7; x++ {
			if got := dst.At(x, y); got != 0 {
				t.Errorf("dst(%d,%d) = %d, expected untouched", x, y, got)
			}
		}
	}
}

func TestDirtyRects(t *testing.T) {
	var d DirtyRects
	full := core.NewRect(0, 0, 80, 25)
	d.Set(2, core.NewRect(1, 1, 1, 1))
	d.Reset(full)
	if d.Slot(0) != full {
		t.Errorf("Slot(0) = %v, expected %v", d.Slot(0), full)
	}
	for i := 1; i < DirtySlots; i++ {
		if !d.Slot(i).Empty() {
			t.Errorf("Slot(%d) = %v, expected empty", i, d.Slot(i))
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Set(-1) should panic")
		}
	}()
	d.Set(-1, full)
}

func TestPlaneAccess(t *testing.T) {
	p := NewPlane(3, 2)
	p.Set(2, 1, 7)
	p.Set(3, 0, 9)
	p.Set(-1, 0, 9)
	if got := p.At(2, 1); got != 7 {
		t.Errorf("At(2, 1) = %d, expected 7", got)
	}
	if got := p.At(3, 0); got != 0 {
		t.Errorf("At(3, 0) = %d, expected 0", got)
	}
	for i, c := range p.Cells {
		if i != 5 && c != 0 {
			t.Errorf("cell %d = %d, expected 0", i, c)
		}
	}
}
