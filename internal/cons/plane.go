package cons

import "github.com/vovakirdan/conscade/internal/core"

// Plane is a flat buffer of 16-bit video cells with a row stride equal to
// its width. It stands in for both off-screen buffers and video memory.
type Plane struct {
	Cells  []uint16
	Width  int
	Height int

	// Writes counts cells stored by Flush into this plane.
	Writes int
}

// NewPlane allocates a zeroed w x h plane.
func NewPlane(w, h int) *Plane {
	return &Plane{Cells: make([]uint16, w*h), Width: w, Height: h}
}

// Resize reallocates the plane. Contents are lost.
func (p *Plane) Resize(w, h int) {
	p.Cells = make([]uint16, w*h)
	p.Width = w
	p.Height = h
}

// Bounds returns the plane rectangle anchored at the origin.
func (p *Plane) Bounds() core.Rect {
	return core.Rect{W: p.Width, H: p.Height}
}

// Fill stores v in every cell.
func (p *Plane) Fill(v uint16) {
	for i := range p.Cells {
		p.Cells[i] = v
	}
}

// At returns the cell at (x, y). Out of range reads return 0.
func (p *Plane) At(x, y int) uint16 {
	if !p.Bounds().Contains(x, y) {
		return 0
	}
	return p.Cells[y*p.Width+x]
}

// Set stores v at (x, y). Out of range writes are dropped.
func (p *Plane) Set(x, y int, v uint16) {
	if !p.Bounds().Contains(x, y) {
		return
	}
	p.Cells[y*p.Width+x] = v
}

// Flush copies the dirty regions of src into dst and returns the number
// of cells written.
//
// When slot 0 covers exactly src and both planes share a geometry the
// whole buffer is copied in one go. Otherwise every slot is clipped to
// the part both planes have in common and copied row by row, each plane
// using its own stride. Slots that clip to nothing are skipped.
func Flush(dst, src *Plane, rects *DirtyRects) int {
	n := 0
	if rects.Slot(0) == src.Bounds() && dst.Width == src.Width && dst.Height == src.Height {
		n = copy(dst.Cells, src.Cells)
	} else {
		w, h := core.Min(src.Width, dst.Width), core.Min(src.Height, dst.Height)
		for _, r := range rects.All() {
			c := r.Clip(w, h)
			if c.Empty() {
				continue
			}
			sofs := c.Y*src.Width + c.X
			dofs := c.Y*dst.Width + c.X
			for y := 0; y < c.H; y++ {
				copy(dst.Cells[dofs:dofs+c.W], src.Cells[sofs:sofs+c.W])
				sofs += src.Width
				dofs += dst.Width
			}
			n += c.Area()
		}
	}
	dst.Writes += n
	return n
}
