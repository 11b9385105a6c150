package cons

import "fmt"

// VectorTable models an interrupt vector table. Consoles hook the timer
// vectors they count on for the duration of Init..Term and put the
// previous handler back on Term.
type VectorTable struct {
	entries map[uint8]vectorEntry
}

type vectorEntry struct {
	owner  string
	hooked bool
}

// NewVectorTable returns a table where every vector belongs to firmware.
func NewVectorTable() *VectorTable {
	return &VectorTable{entries: make(map[uint8]vectorEntry)}
}

// Install sets a resident (non-exclusive) handler such as a TSR.
func (t *VectorTable) Install(vec uint8, owner string) {
	t.entries[vec] = vectorEntry{owner: owner}
}

// Owner returns the current handler of vec, or "" for the firmware default.
func (t *VectorTable) Owner(vec uint8) string {
	return t.entries[vec].owner
}

// Hook installs owner as the handler of vec and returns the function that
// restores the previous handler. Hooking a vector another console holds
// fails with ErrVectorBusy.
func (t *VectorTable) Hook(vec uint8, owner string) (restore func(), err error) {
	prev := t.entries[vec]
	if prev.hooked {
		return nil, fmt.Errorf("vector 0x%02x held by %s: %w", vec, prev.owner, ErrVectorBusy)
	}
	t.entries[vec] = vectorEntry{owner: owner, hooked: true}

	done := false
	return func() {
		if done {
			return
		}
		done = true
		if prev.owner == "" {
			delete(t.entries, vec)
			return
		}
		t.entries[vec] = prev
	}, nil
}
