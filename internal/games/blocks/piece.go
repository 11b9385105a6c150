// Package blocks holds the falling-block rules shared by otige and
// otitame: the 7 tetromino shapes, the well, line handling and the speed
// curve bookkeeping.
package blocks

import "math/rand"

// NumShapes is the number of tetromino shapes.
const NumShapes = 7

// Shape indices into the pattern table.
const (
	ShapeO = iota
	ShapeZ
	ShapeS
	ShapeJ
	ShapeL
	ShapeT
	ShapeI
)

// patterns are 4x4 masks per shape and rotation (0, 90, 180, 270).
// Bit 0x8000>>i covers cell (i&3, i>>2).
var patterns = [NumShapes][4]uint16{
	{0x0660, 0x0660, 0x0660, 0x0660}, // O
	{0x0c60, 0x2640, 0x0c60, 0x2640}, // Z
	{0x06c0, 0x4620, 0x06c0, 0x4620}, // S
	{0x8e00, 0x6440, 0x0e20, 0x44c0}, // J
	{0x2e00, 0x4460, 0x0e80, 0xc440}, // L
	{0x04e0, 0x4640, 0x0e40, 0x4c40}, // T
	{0x0f00, 0x2222, 0x0f00, 0x4444}, // I
}

// Pattern returns the mask of shape at rotation rot (taken mod 4).
func Pattern(shape, rot int) uint16 {
	return patterns[shape][rot&3]
}

// EachCell calls fn with the offset of every filled cell of mask.
func EachCell(mask uint16, fn func(dx, dy int)) {
	for i := 0; i < 16; i++ {
		if mask&(0x8000>>i) != 0 {
			fn(i&3, i>>2)
		}
	}
}

// Piece is a tetromino placed in field coordinates.
type Piece struct {
	X, Y  int
	Shape int
	Rot   int
}

// Spawn returns a new piece of shape at the top of a field of width w.
// Every shape's first rotation has an empty top row, so it starts at
// y = -1.
func Spawn(w, shape int) Piece {
	return Piece{X: w/2 - 2, Y: -1, Shape: shape}
}

// RandomShape draws a uniformly distributed shape.
func RandomShape(r *rand.Rand) int {
	return r.Intn(NumShapes)
}

// Mask returns the piece's current pattern.
func (p Piece) Mask() uint16 {
	return Pattern(p.Shape, p.Rot)
}

// Moved returns p shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns p turned one step clockwise.
func (p Piece) Rotated() Piece {
	p.Rot = (p.Rot + 1) & 3
	return p
}
