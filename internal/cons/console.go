// Package cons is the console abstraction layer the games are written
// against. A Console hides one of three very different backends (a curses
// style terminal, PC-98 text VRAM, PC/AT text VRAM) behind a small frame
// oriented API:
//
//	c.Init(flags)
//	defer c.Term()
//	for running {
//		c.UpdateBegin()   // sample clock, tick and one key
//		... draw with SetPosition/SetColor/PutString, RegisterDirtyRect ...
//		c.UpdateEnd()     // flush dirty rectangles, pace the frame
//	}
//
// The package also holds the pieces the backends share: the dirty
// rectangle refresh engine, the frame clock and the emulated interrupt and
// status port hardware the DOS backends run on.
package cons

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/conscade/internal/core"
)

// Time units. Clock() counts ClockPerSec units per second and Tick()
// counts TickPerSec ticks per second.
const (
	ClockPerSec = 1000
	TickPerSec  = 60
)

// Flags select optional Init behavior.
type Flags uint

const (
	// FlagCols40 selects a 40 column text mode where the backend has one.
	FlagCols40 Flags = 1 << iota
)

// Init errors. These are the only recoverable console failures.
var (
	ErrNoColor    = errors.New("cons: terminal lacks color support")
	ErrVectorBusy = errors.New("cons: interrupt vector already hooked")
)

// Console is the frame oriented facade every backend implements.
//
// All methods except Init assume a successful Init and no Term yet.
// Violations are programming errors and panic.
type Console interface {
	// Init acquires the backend resources. It is the only call that
	// reports failure.
	Init(flags Flags) error
	// Term releases everything Init acquired and restores the previous
	// terminal or video state.
	Term()

	// UpdateBegin samples time and one key for the frame.
	UpdateBegin()
	// UpdateEnd flushes the frame to the display and paces the loop.
	UpdateEnd()

	Clear()
	SetPosition(x, y int)
	SetColor(c core.Color)
	// PutString writes UTF-8 text at the cursor and advances it.
	PutString(s string)
	// RegisterDirtyRect declares that rectangle slot (0..3) changed.
	RegisterDirtyRect(slot int, r core.Rect)

	ScreenWidth() int
	ScreenHeight() int
	// Clock returns elapsed ClockPerSec units since Init.
	Clock() int64
	// Tick returns elapsed TickPerSec ticks since Init.
	Tick() int64
	// Key returns the key sampled by UpdateBegin or core.KeyNone.
	Key() core.Key

	Keypad() core.Keypad
	Charset() core.Charset
}

// Snapshotter is implemented by consoles that can decode what is currently
// on the display.
type Snapshotter interface {
	Snapshot() *core.Screen
}

// Display receives the decoded contents of emulated video memory after
// every flush.
type Display interface {
	Present(s *core.Screen)
}

// TickFromClock converts clock units to ticks.
func TickFromClock(clock int64) int64 {
	return clock * TickPerSec / ClockPerSec
}

// MillisToTicks converts milliseconds to ticks.
func MillisToTicks(ms int64) int64 {
	return ms * TickPerSec / 1000
}

// NopLogger returns a logger that discards everything.
func NopLogger() *log.Logger {
	return log.New(io.Discard)
}

// Lifecycle tracks whether a driver sits between Init and Term.
type Lifecycle struct {
	driver string
	active bool
}

// NewLifecycle returns an inactive lifecycle for the named driver.
func NewLifecycle(driver string) Lifecycle {
	return Lifecycle{driver: driver}
}

// BeforeInit panics if the driver is already initialized.
func (l *Lifecycle) BeforeInit() {
	if l.active {
		panic(fmt.Sprintf("%s: Init called twice without Term", l.driver))
	}
}

// Activate marks a successful Init.
func (l *Lifecycle) Activate() {
	l.active = true
}

// Deactivate marks Term. It panics if the driver was not initialized.
func (l *Lifecycle) Deactivate() {
	l.Require("Term")
	l.active = false
}

// Require panics unless the driver is initialized.
func (l *Lifecycle) Require(op string) {
	if !l.active {
		panic(fmt.Sprintf("%s: %s called before Init or after Term", l.driver, op))
	}
}

// Active reports whether the driver is initialized.
func (l *Lifecycle) Active() bool {
	return l.active
}
