package pc98

import "github.com/vovakirdan/conscade/internal/cons"

// Text screen geometry.
const (
	TextWidth  = 80
	TextHeight = 25
)

// Interrupt vectors hooked by the driver.
const (
	VecVSync uint8 = 0x0a // CRTV, once per vertical blank
	VecTimer uint8 = 0x08 // interval timer, programmed for 10ms
)

// GDC status port and its vertical blank bit.
const (
	PortGDCStatus uint16 = 0xa0
	GDCVSyncBit   uint8  = 0x20
)

// Machine is the hardware the driver runs on.
type Machine interface {
	TextVRAM() *cons.Plane
	AttrVRAM() *cons.Plane
	// In reads an I/O port.
	In(port uint16) uint8
	// ShowText and ShowCursor are the CRT BIOS display switches.
	ShowText(on bool)
	ShowCursor(on bool)

	Vectors() *cons.VectorTable
	Keyboard() cons.Keyboard
	Timebase() cons.Timebase
}

// Emulated is a Machine backed by memory.
type Emulated struct {
	text, attr *cons.Plane
	vectors    *cons.VectorTable
	kb         cons.Keyboard
	tb         cons.Timebase
	gdc        *cons.RetracePort

	TextShown   bool
	CursorShown bool
}

// NewEmulated returns a machine with blank VRAM and the cursor visible.
func NewEmulated(tb cons.Timebase, kb cons.Keyboard) *Emulated {
	return &Emulated{
		text:        cons.NewPlane(TextWidth, TextHeight),
		attr:        cons.NewPlane(TextWidth, TextHeight),
		vectors:     cons.NewVectorTable(),
		kb:          kb,
		tb:          tb,
		gdc:         cons.NewRetracePort(tb, GDCVSyncBit),
		CursorShown: true,
	}
}

func (m *Emulated) TextVRAM() *cons.Plane { return m.text }
func (m *Emulated) AttrVRAM() *cons.Plane { return m.attr }

// In reads the GDC status port. Other ports read as 0xff.
func (m *Emulated) In(port uint16) uint8 {
	if port == PortGDCStatus {
		return m.gdc.Read()
	}
	return 0xff
}

func (m *Emulated) ShowText(on bool)   { m.TextShown = on }
func (m *Emulated) ShowCursor(on bool) { m.CursorShown = on }

func (m *Emulated) Vectors() *cons.VectorTable { return m.vectors }
func (m *Emulated) Keyboard() cons.Keyboard    { return m.kb }
func (m *Emulated) Timebase() cons.Timebase    { return m.tb }

var _ Machine = (*Emulated)(nil)
