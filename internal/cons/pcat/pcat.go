// Package pcat is the console backend for IBM PC/AT compatible text mode.
//
// The driver keeps one off-screen plane of attr<<8|char words in the
// layout of adapter memory and copies the dirty rectangles over after the
// vertical retrace starts. Text is converted to code page 437. The adapter
// geometry is re-read on every clear and flush, and rows are copied with
// each side's own stride when it no longer matches the buffer.
package pcat

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/conscade/internal/cons"
	"github.com/vovakirdan/conscade/internal/core"
)

// Key codes reported by this backend. Extended keys are 0xe000|scan.
const (
	KeyUp     core.Key = 0xe048
	KeyDown   core.Key = 0xe050
	KeyLeft   core.Key = 0xe04b
	KeyRight  core.Key = 0xe04d
	KeyReturn core.Key = 0x0d
	KeyEscape core.Key = 0x1b
	KeySpace  core.Key = 0x20
)

// Keypad is the key code set games see.
var Keypad = core.Keypad{
	Up: KeyUp, Down: KeyDown, Left: KeyLeft, Right: KeyRight,
	Return: KeyReturn, Escape: KeyEscape, Space: KeySpace,
}

// BIOSKeypad holds the scan<<8|ascii words the keyboard BIOS returns for
// the same keys. The machine keyboard produces these.
var BIOSKeypad = core.Keypad{
	Up: 0x4800, Down: 0x5000, Left: 0x4b00, Right: 0x4d00,
	Return: 0x1c0d, Escape: 0x011b, Space: 0x3920,
}

// KeyFromBIOS converts a keyboard BIOS word to a key code.
func KeyFromBIOS(w core.Key) core.Key {
	scan, ascii := w>>8, w&0xff
	if ascii == 0 || ascii == 0xe0 {
		return 0xe000 | scan
	}
	return ascii
}

// Attribute of blank cells.
const clearAttr uint16 = 0x07

// Driver implements cons.Console on a Machine.
type Driver struct {
	m       Machine
	log     *log.Logger
	display cons.Display

	life  cons.Lifecycle
	buf   *cons.Plane
	rects cons.DirtyRects
	attr  uint16

	savedMode   uint8
	savedCursor uint16

	width, height int
	curX, curY    int

	ticks       *cons.IntervalCounter
	unhookTimer func()
	clock, tick int64
	key         core.Key
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.log = l }
}

// WithDisplay presents adapter memory on d after every flush.
func WithDisplay(disp cons.Display) Option {
	return func(d *Driver) { d.display = disp }
}

// New returns an uninitialized driver for m.
func New(m Machine, opts ...Option) *Driver {
	d := &Driver{m: m, life: cons.NewLifecycle("pcat"), key: core.KeyNone}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = cons.NopLogger()
	}
	return d
}

// Init switches to 80x25 text mode, or 40x25 with cons.FlagCols40, hides
// the cursor and blanks the screen. It fails with cons.ErrVectorBusy when
// the timer tick vector is already hooked.
func (d *Driver) Init(flags cons.Flags) error {
	d.life.BeforeInit()
	unhook, err := d.m.Vectors().Hook(VecTimerTick, "pcat")
	if err != nil {
		return fmt.Errorf("pcat: %w", err)
	}
	d.unhookTimer = unhook

	mode := Mode80x25
	if flags&cons.FlagCols40 != 0 {
		mode = Mode40x25
	}
	d.savedMode = d.m.Mode()
	d.m.SetMode(mode)
	d.savedCursor = d.m.Cursor()
	d.buf = cons.NewPlane(ModeWidth(mode), TextHeight)
	d.updateGeometry()
	d.log.Info("video mode", "saved", fmt.Sprintf("%#02x", d.savedMode), "mode", fmt.Sprintf("%#02x", mode))

	d.m.SetBlink(false)
	d.m.SetCursor(CursorHidden)
	d.life.Activate()
	d.clock, d.tick = 0, 0
	d.key = core.KeyNone
	d.SetColor(core.DefaultColor)
	d.rects.Reset(d.buf.Bounds())
	d.Clear()
	d.refresh()
	d.ticks = cons.NewIntervalCounter(d.m.Timebase(), BIOSTickPeriod)
	d.log.Info("console up", "backend", "pcat", "width", d.width, "height", d.height)
	return nil
}

// Term blanks the screen and restores the cursor, the video mode and the
// timer vector.
func (d *Driver) Term() {
	d.life.Require("Term")
	d.rects.Reset(d.buf.Bounds())
	d.Clear()
	d.refresh()
	if d.savedCursor&0xff00 != CursorHidden {
		d.m.SetCursor(d.savedCursor)
	}
	d.m.SetMode(d.savedMode)
	d.unhookTimer()
	d.buf = nil
	d.life.Deactivate()
	d.log.Info("console down", "backend", "pcat")
}

// UpdateBegin samples the BIOS tick counter and drains the keyboard,
// keeping the last key. All dirty slots are reset.
func (d *Driver) UpdateBegin() {
	d.life.Require("UpdateBegin")
	d.clock = int64(time.Duration(d.ticks.Count()) * BIOSTickPeriod / time.Millisecond)
	d.tick = cons.TickFromClock(d.clock)
	d.key = core.KeyNone
	kb := d.m.Keyboard()
	for kb.KeyHit() {
		d.key = KeyFromBIOS(kb.ReadKey())
	}
	d.rects.Reset(d.buf.Bounds())
}

// UpdateEnd waits for the vertical retrace and flushes.
func (d *Driver) UpdateEnd() {
	d.life.Require("UpdateEnd")
	cons.WaitRetrace(func() uint8 { return d.m.In(PortInputStatus) }, InputStatusRetrace)
	d.refresh()
}

func (d *Driver) refresh() {
	d.updateGeometry()
	n := cons.Flush(d.m.Memory(), d.buf, &d.rects)
	d.log.Debug("flush", "cells", n)
	if d.display != nil {
		d.display.Present(d.Snapshot())
	}
}

func (d *Driver) updateGeometry() {
	w, h := d.m.Geometry()
	if w != d.width || h != d.height {
		if d.width != 0 {
			d.log.Info("geometry changed", "width", w, "height", h)
		}
		d.width, d.height = w, h
	}
}

// Clear fills the buffer with spaces at attribute 7 regardless of the
// current color and homes the cursor.
func (d *Driver) Clear() {
	d.life.Require("Clear")
	d.updateGeometry()
	d.buf.Fill(clearAttr<<8 | ' ')
	d.curX, d.curY = 0, 0
}

// SetPosition moves the write cursor.
func (d *Driver) SetPosition(x, y int) {
	d.life.Require("SetPosition")
	d.curX, d.curY = x, y
}

// SetColor selects the attribute for following writes.
func (d *Driver) SetColor(c core.Color) {
	d.life.Require("SetColor")
	d.attr = uint16(ColorToAttr(c))
}

// PutString writes s, converted to code page 437, at the cursor. There is
// no newline handling; the cursor wraps at the right edge and from the
// last row back to row 0.
func (d *Driver) PutString(s string) {
	d.life.Require("PutString")
	w, h := d.buf.Width, d.buf.Height
	ofs := d.curY*w + d.curX
	for _, b := range EncodeCP437(s) {
		if ofs >= 0 && ofs < len(d.buf.Cells) {
			d.buf.Cells[ofs] = d.attr<<8 | uint16(b)
		}
		ofs++
		d.curX++
		if d.curX >= w {
			d.curX = 0
			d.curY++
			if d.curY >= h {
				d.curY = 0
			}
			ofs = d.curY * w
		}
	}
}

// RegisterDirtyRect records r in slot.
func (d *Driver) RegisterDirtyRect(slot int, r core.Rect) {
	d.life.Require("RegisterDirtyRect")
	d.rects.Set(slot, r)
}

func (d *Driver) ScreenWidth() int      { return d.width }
func (d *Driver) ScreenHeight() int     { return d.height }
func (d *Driver) Clock() int64          { return d.clock }
func (d *Driver) Tick() int64           { return d.tick }
func (d *Driver) Key() core.Key         { return d.key }
func (d *Driver) Keypad() core.Keypad   { return Keypad }
func (d *Driver) Charset() core.Charset { return core.CharsetCP437 }

// Snapshot decodes adapter memory.
func (d *Driver) Snapshot() *core.Screen {
	return Decode(d.m.Memory())
}

// Decode converts text memory to a screen.
func Decode(mem *cons.Plane) *core.Screen {
	s := core.NewScreen(mem.Width, mem.Height)
	for y := 0; y < mem.Height; y++ {
		for x := 0; x < mem.Width; x++ {
			v := mem.At(x, y)
			s.SetCell(x, y, core.Cell{Rune: DecodeCP437(byte(v)), Color: AttrToColor(uint8(v >> 8))})
		}
	}
	return s
}

// Interface guards.
var (
	_ cons.Console     = (*Driver)(nil)
	_ cons.Snapshotter = (*Driver)(nil)
	_ Machine          = (*Emulated)(nil)
)
