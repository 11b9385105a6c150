// Package pc98 is the console backend for NEC PC-98 text VRAM.
//
// The driver draws into off-screen text and attribute planes and copies
// the dirty rectangles to VRAM once per frame, right after the vertical
// blank starts. Text is converted to Shift-JIS; double-byte characters
// take two cells, the right one tagged with ContMark. Time comes from the
// vsync and 10ms timer interrupt counters the driver hooks for the
// duration of Init..Term.
package pc98

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding/japanese"

	"github.com/vovakirdan/conscade/internal/cons"
	"github.com/vovakirdan/conscade/internal/core"
)

// Key codes reported by this backend: the BIOS scan<<8|ascii word, or
// just the ASCII byte for printable keys.
const (
	KeyDown   core.Key = 0x3d00
	KeyUp     core.Key = 0x3a00
	KeyLeft   core.Key = 0x3b00
	KeyRight  core.Key = 0x3c00
	KeyReturn core.Key = 0x1c0d
	KeyEscape core.Key = 0x1b
	KeySpace  core.Key = 0x20
)

// Keypad is the key code set of this backend.
var Keypad = core.Keypad{
	Up: KeyUp, Down: KeyDown, Left: KeyLeft, Right: KeyRight,
	Return: KeyReturn, Escape: KeyEscape, Space: KeySpace,
}

// KeyFromBIOS converts a keyboard BIOS word to a key code: the ASCII byte
// for printable keys, otherwise the whole word.
func KeyFromBIOS(w core.Key) core.Key {
	if b := w & 0xff; b >= ' ' && b <= 0x7e {
		return b
	}
	return w
}

// TimerPeriod is the interval timer period.
const TimerPeriod = 10 * time.Millisecond

// Driver implements cons.Console on a Machine.
type Driver struct {
	m       Machine
	log     *log.Logger
	display cons.Display

	life  cons.Lifecycle
	text  *cons.Plane
	attr  *cons.Plane
	rects cons.DirtyRects
	color uint16

	curX, curY int

	vsync, timer *cons.IntervalCounter
	unhookVSync  func()
	unhookTimer  func()
	clock, tick  int64
	key          core.Key
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.log = l }
}

// WithDisplay presents VRAM on d after every flush.
func WithDisplay(disp cons.Display) Option {
	return func(d *Driver) { d.display = disp }
}

// New returns an uninitialized driver for m.
func New(m Machine, opts ...Option) *Driver {
	d := &Driver{m: m, life: cons.NewLifecycle("pc98"), key: core.KeyNone}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = cons.NopLogger()
	}
	return d
}

// Init hooks the vsync and timer vectors, shows the text layer, hides the
// cursor and blanks the screen. Flags are ignored: the text screen is
// always 80x25. It fails with cons.ErrVectorBusy if either vector is
// already hooked.
func (d *Driver) Init(flags cons.Flags) error {
	d.life.BeforeInit()
	vt := d.m.Vectors()
	unhookVSync, err := vt.Hook(VecVSync, "pc98")
	if err != nil {
		return fmt.Errorf("pc98: %w", err)
	}
	unhookTimer, err := vt.Hook(VecTimer, "pc98")
	if err != nil {
		unhookVSync()
		return fmt.Errorf("pc98: %w", err)
	}
	d.unhookVSync, d.unhookTimer = unhookVSync, unhookTimer

	tb := d.m.Timebase()
	d.vsync = cons.NewIntervalCounter(tb, cons.FramePeriod)
	d.timer = cons.NewIntervalCounter(tb, TimerPeriod)

	d.m.ShowText(true)
	d.m.ShowCursor(false)
	d.text = cons.NewPlane(TextWidth, TextHeight)
	d.attr = cons.NewPlane(TextWidth, TextHeight)
	d.m.TextVRAM().Fill(0)
	d.m.AttrVRAM().Fill(0)

	d.life.Activate()
	d.clock, d.tick = 0, 0
	d.key = core.KeyNone
	d.SetColor(core.DefaultColor)
	d.rects.Reset(d.text.Bounds())
	d.Clear()
	d.refresh()
	d.log.Info("console up", "backend", "pc98", "width", TextWidth, "height", TextHeight)
	return nil
}

// Term blanks VRAM, shows the cursor again and restores the vectors.
func (d *Driver) Term() {
	d.life.Require("Term")
	d.rects.Reset(d.text.Bounds())
	d.Clear()
	d.refresh()
	d.m.ShowCursor(true)
	d.unhookTimer()
	d.unhookVSync()
	d.text, d.attr = nil, nil
	d.life.Deactivate()
	d.log.Info("console down", "backend", "pc98")
}

// UpdateBegin resets the dirty rectangles, homes the cursor, selects the
// default color and samples the interrupt counters and one key. Any
// other buffered keys are discarded.
func (d *Driver) UpdateBegin() {
	d.life.Require("UpdateBegin")
	d.rects.Reset(d.text.Bounds())
	d.curX, d.curY = 0, 0
	d.SetColor(core.DefaultColor)
	d.tick = d.vsync.Count()
	d.clock = d.timer.Count() * int64(TimerPeriod/time.Millisecond)
	d.key = core.KeyNone
	kb := d.m.Keyboard()
	if kb.KeyHit() {
		d.key = KeyFromBIOS(kb.ReadKey())
		kb.Flush()
	}
}

// UpdateEnd waits for the start of the vertical blank and flushes.
func (d *Driver) UpdateEnd() {
	d.life.Require("UpdateEnd")
	cons.WaitRetrace(func() uint8 { return d.m.In(PortGDCStatus) }, GDCVSyncBit)
	d.refresh()
}

func (d *Driver) refresh() {
	n := cons.Flush(d.m.TextVRAM(), d.text, &d.rects)
	cons.Flush(d.m.AttrVRAM(), d.attr, &d.rects)
	d.log.Debug("flush", "cells", n)
	if d.display != nil {
		d.display.Present(d.Snapshot())
	}
}

// Clear fills the buffer with spaces in the current color and homes the
// cursor.
func (d *Driver) Clear() {
	d.life.Require("Clear")
	d.text.Fill(' ')
	d.attr.Fill(d.color)
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
	d.color = ColorToAttr(c)
}

// PutString writes s, converted to Shift-JIS, at the cursor. '\n' moves
// to the next row. The cursor wraps to the next row at the right edge and
// from the last row back to row 0. Runes without a Shift-JIS encoding are
// written as '?'.
func (d *Driver) PutString(s string) {
	d.life.Require("PutString")
	b := encodeSJIS(s)
	w, h := d.text.Width, d.text.Height
	ofs := d.curY*w + d.curX
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case !IsLeadByte(c):
			if c == '\n' {
				d.curX = w
				break
			}
			d.put(ofs, uint16(c))
			ofs++
			d.curX++
		case i+1 < len(b):
			i++
			code := GlyphCode(SJISToJIS(uint16(c)<<8 | uint16(b[i])))
			d.put(ofs, code)
			d.put(ofs+1, code|ContMark)
			ofs += 2
			d.curX += 2
		}
		if d.curX >= w {
			d.curX = 0
			d.curY++
			if d.curY >= h {
				d.curY = 0
			}
			ofs = d.curY*w + d.curX
		}
	}
}

// put stores one cell at a linear offset. Offsets outside the buffer are
// dropped.
func (d *Driver) put(ofs int, code uint16) {
	if ofs < 0 || ofs >= len(d.text.Cells) {
		return
	}
	d.text.Cells[ofs] = code
	d.attr.Cells[ofs] = d.color
}

func encodeSJIS(s string) []byte {
	enc := japanese.ShiftJIS.NewEncoder()
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, err := enc.Bytes([]byte(string(r)))
		if err != nil || len(b) == 0 {
			out = append(out, '?')
			continue
		}
		out = append(out, b...)
	}
	return out
}

// RegisterDirtyRect records r in slot.
func (d *Driver) RegisterDirtyRect(slot int, r core.Rect) {
	d.life.Require("RegisterDirtyRect")
	d.rects.Set(slot, r)
}

func (d *Driver) ScreenWidth() int      { return TextWidth }
func (d *Driver) ScreenHeight() int     { return TextHeight }
func (d *Driver) Clock() int64          { return d.clock }
func (d *Driver) Tick() int64           { return d.tick }
func (d *Driver) Key() core.Key         { return d.key }
func (d *Driver) Keypad() core.Keypad   { return Keypad }
func (d *Driver) Charset() core.Charset { return core.CharsetSJIS }

// Snapshot decodes VRAM.
func (d *Driver) Snapshot() *core.Screen {
	return Decode(d.m.TextVRAM(), d.m.AttrVRAM())
}

// Interface guards.
var (
	_ cons.Console     = (*Driver)(nil)
	_ cons.Snapshotter = (*Driver)(nil)
)
