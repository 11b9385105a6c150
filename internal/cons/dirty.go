package cons

import (
	"fmt"

	"github.com/vovakirdan/conscade/internal/core"
)

// DirtySlots is the number of dirty rectangles a frame can register.
const DirtySlots = 4

// DirtyRects is the per-frame set of changed regions.
//
// Slot 0 starts every frame as the full screen; a frame that only touches
// part of the screen overwrites it (often with an empty rect) and names the
// changed parts in the other slots.
type DirtyRects struct {
	slots [DirtySlots]core.Rect
}

// Reset sets slot 0 to full and empties the other slots.
func (d *DirtyRects) Reset(full core.Rect) {
	d.slots = [DirtySlots]core.Rect{}
	d.slots[0] = full
}

// Set overwrites one slot. Slots outside 0..DirtySlots-1 panic.
func (d *DirtyRects) Set(slot int, r core.Rect) {
	CheckSlot(slot)
	d.slots[slot] = r
}

// Slot returns the rectangle registered in slot.
func (d *DirtyRects) Slot(slot int) core.Rect {
	CheckSlot(slot)
	return d.slots[slot]
}

// All returns every slot in order.
func (d *DirtyRects) All() []core.Rect {
	return d.slots[:]
}

// CheckSlot panics when slot is not a valid dirty rectangle index.
func CheckSlot(slot int) {
	if slot < 0 || slot >= DirtySlots {
		panic(fmt.Sprintf("cons: dirty rect slot %d out of range 0..%d", slot, DirtySlots-1))
	}
}
