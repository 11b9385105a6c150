package engine

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/conscade/internal/cons"
)

// Machine is a frame driven state machine. The state chosen with Go takes
// effect at the next Begin, and the step counter restarts whenever a new
// state is entered.
type Machine[S comparable] struct {
	// Step counts frames (or sub-phases) within the current state.
	Step int

	name      string
	cur, next S
	started   bool
	entered   bool
	log       *log.Logger
}

// NewMachine returns a machine that enters initial on the first Begin.
func NewMachine[S comparable](name string, initial S, logger *log.Logger) *Machine[S] {
	if logger == nil {
		logger = cons.NopLogger()
	}
	return &Machine[S]{name: name, cur: initial, next: initial, log: logger}
}

// Begin applies the pending transition and returns the state for this
// frame.
func (m *Machine[S]) Begin() S {
	m.entered = !m.started || m.next != m.cur
	if m.entered {
		if m.started {
			m.log.Debug("state", "game", m.name, "from", m.cur, "to", m.next)
		}
		m.Step = 0
	}
	m.started = true
	m.cur = m.next
	return m.cur
}

// Entered reports whether the last Begin entered a new state.
func (m *Machine[S]) Entered() bool { return m.entered }

// State returns the current state.
func (m *Machine[S]) State() S { return m.cur }

// Next returns the state the next Begin will enter.
func (m *Machine[S]) Next() S { return m.next }

// Go schedules a transition.
func (m *Machine[S]) Go(s S) { m.next = s }
