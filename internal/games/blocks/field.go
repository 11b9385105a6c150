package blocks

// Cell is one well position. 0 is empty, otherwise the low three bits
// hold shape+1 and Reached marks a full row waiting to be cleared.
type Cell uint8

// Reached marks a completed row that has not been cleared yet.
const Reached Cell = 0x08

// Shape returns the shape index stored in a filled cell.
func (c Cell) Shape() int {
	return int(c&7) - 1
}

// IsReached reports whether the cell belongs to a marked row.
func (c Cell) IsReached() bool {
	return c&Reached != 0
}

// Field is the well pieces fall into.
type Field struct {
	W, H  int
	cells []Cell
}

// NewField returns an empty w x h well.
func NewField(w, h int) *Field {
	return &Field{W: w, H: h, cells: make([]Cell, w*h)}
}

// Clear empties the well.
func (f *Field) Clear() {
	for i := range f.cells {
		f.cells[i] = 0
	}
}

// At returns the cell at (x, y). Out of range positions read as empty.
func (f *Field) At(x, y int) Cell {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return 0
	}
	return f.cells[y*f.W+x]
}

// Set stores c at (x, y) if it is inside the well.
func (f *Field) Set(x, y int, c Cell) {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return
	}
	f.cells[y*f.W+x] = c
}

// CanPlace reports whether p fits. Rows above the well (y < 0) are open
// so pieces can spawn partly outside.
func (f *Field) CanPlace(p Piece) bool {
	ok := true
	EachCell(p.Mask(), func(dx, dy int) {
		x, y := p.X+dx, p.Y+dy
		if y < 0 {
			return
		}
		if x < 0 || x >= f.W || y >= f.H || f.cells[y*f.W+x] != 0 {
			ok = false
		}
	})
	return ok
}

// Lock writes p into the well. Cells outside the well are dropped.
func (f *Field) Lock(p Piece) {
	EachCell(p.Mask(), func(dx, dy int) {
		f.Set(p.X+dx, p.Y+dy, Cell(p.Shape+1))
	})
}

func (f *Field) row(y int) []Cell {
	return f.cells[y*f.W : (y+1)*f.W]
}

func (f *Field) full(y int) bool {
	for _, c := range f.row(y) {
		if c == 0 {
			return false
		}
	}
	return true
}

// removeRow drops row y and shifts everything above it down by one.
func (f *Field) removeRow(y int) {
	copy(f.cells[f.W:(y+1)*f.W], f.cells[:y*f.W])
	for i := range f.row(0) {
		f.cells[i] = 0
	}
}

// ClearFull removes every full row and returns how many were removed.
func (f *Field) ClearFull() int {
	n := 0
	for y := f.H - 1; y >= 0; {
		if f.full(y) {
			f.removeRow(y)
			n++
			continue
		}
		y--
	}
	return n
}

// MarkFull tags full rows that are not tagged yet with Reached and
// returns how many rows were newly tagged.
func (f *Field) MarkFull() int {
	n := 0
	for y := 0; y < f.H; y++ {
		row := f.row(y)
		fresh := true
		for _, c := range row {
			if c == 0 || c.IsReached() {
				fresh = false
				break
			}
		}
		if !fresh {
			continue
		}
		for x := range row {
			row[x] |= Reached
		}
		n++
	}
	return n
}

func (f *Field) marked(y int) bool {
	for _, c := range f.row(y) {
		if !c.IsReached() {
			return false
		}
	}
	return true
}

// ClearMarked removes the lowest contiguous block of marked rows and
// returns its height. Marked rows higher up stay for a later clear.
func (f *Field) ClearMarked() int {
	n := 0
	y := f.H - 1
	for y >= 0 && !f.marked(y) {
		y--
	}
	// Rows above slide into y after each removal.
	for y >= 0 && f.marked(y) {
		f.removeRow(y)
		n++
	}
	return n
}

// MarkedRows counts the rows currently tagged as Reached.
func (f *Field) MarkedRows() int {
	n := 0
	for y := 0; y < f.H; y++ {
		if f.marked(y) {
			n++
		}
	}
	return n
}
