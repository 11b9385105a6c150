package mines

import (
	"fmt"
	"math/rand"
)

// Cell is one minefield square: the low nibble holds the number of
// adjacent bombs (9 for a bomb) and the flags below its visibility.
type Cell uint8

const (
	CountMask Cell = 0x0F
	Closed    Cell = 0x10
	Flagged   Cell = 0x20

	// BombValue is the count nibble of a bomb.
	BombValue = 9
)

// Value returns the adjacent bomb count, or BombValue.
func (c Cell) Value() int { return int(c & CountMask) }

// IsBomb reports whether the cell holds a bomb.
func (c Cell) IsBomb() bool { return c.Value() == BombValue }

// IsClosed reports whether the cell is still covered.
func (c Cell) IsClosed() bool { return c&Closed != 0 }

// IsFlagged reports whether the player marked the cell.
func (c Cell) IsFlagged() bool { return c&Flagged != 0 }

// Outcome is the result of opening a cell.
type Outcome int

const (
	Ignored  Outcome = iota // flagged or already open
	Opened                  // cells opened, game goes on
	Won                     // every safe cell is open
	Exploded                // a bomb was hit
)

var neighbors = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Board is a minefield.
type Board struct {
	W, H  int
	Bombs int
	Flags int
	cells []Cell
}

// NewBoard returns a fully covered board without bombs.
func NewBoard(w, h, bombs int) *Board {
	b := &Board{W: w, H: h, Bombs: bombs, cells: make([]Cell, w*h)}
	for i := range b.cells {
		b.cells[i] = Closed
	}
	return b
}

func (b *Board) inside(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// At returns the cell at (x, y).
func (b *Board) At(x, y int) Cell {
	return b.cells[y*b.W+x]
}

// PlaceBombs scatters Bombs bombs uniformly and fills in the counts.
func (b *Board) PlaceBombs(rng *rand.Rand) {
	for n := 0; n < b.Bombs; {
		x, y := rng.Intn(b.W), rng.Intn(b.H)
		if b.At(x, y).IsBomb() {
			continue
		}
		b.cells[y*b.W+x] = BombValue | Closed
		n++
	}
	b.count()
}

// PlaceBombsAt puts bombs on the given positions and fills in the counts.
// Bombs is set to the number of distinct positions.
func (b *Board) PlaceBombsAt(pos ...[2]int) {
	b.Bombs = 0
	for _, p := range pos {
		if !b.At(p[0], p[1]).IsBomb() {
			b.cells[p[1]*b.W+p[0]] = BombValue | Closed
			b.Bombs++
		}
	}
	b.count()
}

func (b *Board) count() {
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if b.At(x, y).IsBomb() {
				continue
			}
			n := 0
			for _, d := range neighbors {
				nx, ny := x+d[0], y+d[1]
				if b.inside(nx, ny) && b.At(nx, ny).IsBomb() {
					n++
				}
			}
			b.cells[y*b.W+x] = Cell(n) | Closed
		}
	}
}

// Open uncovers (x, y). A zero cell opens its neighborhood breadth
// first; flagged cells are never opened by the cascade.
func (b *Board) Open(x, y int) Outcome {
	c := b.At(x, y)
	switch {
	case c.IsFlagged():
		return Ignored
	case c.IsBomb():
		return Exploded
	case !c.IsClosed():
		return Ignored
	}

	b.cells[y*b.W+x] &^= Closed | Flagged
	if c.Value() == 0 {
		queue := [][2]int{{x, y}}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			for _, d := range neighbors {
				nx, ny := p[0]+d[0], p[1]+d[1]
				if !b.inside(nx, ny) {
					continue
				}
				n := b.At(nx, ny)
				if !n.IsClosed() || n.IsFlagged() {
					continue
				}
				b.cells[ny*b.W+nx] &^= Closed | Flagged
				if n.Value() == 0 {
					queue = append(queue, [2]int{nx, ny})
				}
			}
		}
	}
	if b.Cleared() {
		return Won
	}
	return Opened
}

// ToggleFlag marks or unmarks a covered cell. No more flags than bombs
// can be placed.
func (b *Board) ToggleFlag(x, y int) {
	i := y*b.W + x
	c := b.cells[i]
	if !c.IsClosed() {
		return
	}
	if c.IsFlagged() {
		b.cells[i] &^= Flagged
		b.Flags--
	} else if b.Flags < b.Bombs {
		b.cells[i] |= Flagged
		b.Flags++
	}
}

// Cleared reports whether every safe cell is open.
func (b *Board) Cleared() bool {
	for _, c := range b.cells {
		if !c.IsBomb() && c.IsClosed() {
			return false
		}
	}
	return true
}

// RevealBombs uncovers every bomb and drops the flags on them.
func (b *Board) RevealBombs() {
	for i, c := range b.cells {
		if c.IsBomb() {
			b.cells[i] &^= Closed | Flagged
		}
	}
}

// String describes the board for logs.
func (b *Board) String() string {
	return fmt.Sprintf("%dx%d/%d", b.W, b.H, b.Bombs)
}
