package pcat

import (
	"time"

	"github.com/vovakirdan/conscade/internal/cons"
)

// Text video modes.
const (
	Mode40x25 uint8 = 0x01
	Mode80x25 uint8 = 0x03
)

// TextHeight is the row count of both text modes.
const TextHeight = 25

// Cursor shapes. The high byte is the start scan line; 0x20 there hides
// the cursor.
const (
	CursorHidden  uint16 = 0x2000
	CursorDefault uint16 = 0x0607
)

// VecTimerTick is the user timer tick vector, chained from IRQ0.
const VecTimerTick uint8 = 0x1c

// BIOSTickPeriod is the interval of the 18.2Hz BIOS tick.
const BIOSTickPeriod = 54925 * time.Microsecond

// VGA input status register and its vertical retrace bit.
const (
	PortInputStatus    uint16 = 0x3da
	InputStatusRetrace uint8  = 0x08
)

// ModeWidth returns the column count of a text mode.
func ModeWidth(mode uint8) int {
	if mode <= Mode40x25 {
		return 40
	}
	return 80
}

// Adapter is the video adapter as the video BIOS and VGA ports expose it.
type Adapter interface {
	Mode() uint8
	SetMode(mode uint8)
	// Geometry returns the live text screen size.
	Geometry() (w, h int)
	// Memory is the text memory at B800:0000, one attr<<8|char word per
	// cell with a stride of the live width.
	Memory() *cons.Plane
	Cursor() uint16
	SetCursor(shape uint16)
	SetBlink(on bool)
	// In reads an I/O port.
	In(port uint16) uint8
}

// Machine is the hardware the driver runs on.
type Machine interface {
	Adapter
	Vectors() *cons.VectorTable
	Keyboard() cons.Keyboard
	Timebase() cons.Timebase
}

// EmulatedAdapter is an Adapter backed by memory.
type EmulatedAdapter struct {
	mode   uint8
	mem    *cons.Plane
	cursor uint16
	status *cons.RetracePort

	// Blink reports whether attribute bit 7 blinks instead of selecting
	// a bright background.
	Blink bool
}

// NewEmulatedAdapter returns an adapter in 80x25 text mode.
func NewEmulatedAdapter(tb cons.Timebase) *EmulatedAdapter {
	a := &EmulatedAdapter{
		status: cons.NewRetracePort(tb, InputStatusRetrace),
		Blink:  true,
	}
	a.SetMode(Mode80x25)
	return a
}

func (a *EmulatedAdapter) Mode() uint8 { return a.mode }

// SetMode switches mode, which clears text memory and resets the cursor
// shape.
func (a *EmulatedAdapter) SetMode(mode uint8) {
	a.mode = mode
	a.mem = cons.NewPlane(ModeWidth(mode), TextHeight)
	a.cursor = CursorDefault
}

func (a *EmulatedAdapter) Geometry() (int, int) { return a.mem.Width, a.mem.Height }
func (a *EmulatedAdapter) Memory() *cons.Plane  { return a.mem }
func (a *EmulatedAdapter) Cursor() uint16       { return a.cursor }
func (a *EmulatedAdapter) SetCursor(s uint16)   { a.cursor = s }
func (a *EmulatedAdapter) SetBlink(on bool)     { a.Blink = on }

// SetGeometry changes the live geometry without a mode switch, the way a
// TSR or a mode utility can behind the program's back. Text memory is
// cleared.
func (a *EmulatedAdapter) SetGeometry(w, h int) {
	a.mem = cons.NewPlane(w, h)
}

// In reads the input status register. Other ports read as 0xff.
func (a *EmulatedAdapter) In(port uint16) uint8 {
	if port == PortInputStatus {
		return a.status.Read()
	}
	return 0xff
}

// Emulated is a Machine built around an EmulatedAdapter.
type Emulated struct {
	*EmulatedAdapter
	vectors *cons.VectorTable
	kb      cons.Keyboard
	tb      cons.Timebase
}

// NewEmulated returns a machine in 80x25 text mode.
func NewEmulated(tb cons.Timebase, kb cons.Keyboard) *Emulated {
	return &Emulated{
		EmulatedAdapter: NewEmulatedAdapter(tb),
		vectors:         cons.NewVectorTable(),
		kb:              kb,
		tb:              tb,
	}
}

func (m *Emulated) Vectors() *cons.VectorTable { return m.vectors }
func (m *Emulated) Keyboard() cons.Keyboard    { return m.kb }
func (m *Emulated) Timebase() cons.Timebase    { return m.tb }
