// Package curses is the console backend for ordinary terminals. The
// terminal library keeps its own cell buffer and diffs it on Show, so
// dirty rectangles are accepted and ignored.
package curses

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/conscade/internal/cons"
	"github.com/vovakirdan/conscade/internal/core"
	"github.com/vovakirdan/conscade/internal/platform/term"
)

// Key codes reported by this backend.
const (
	KeyDown   core.Key = 0x102
	KeyUp     core.Key = 0x103
	KeyLeft   core.Key = 0x104
	KeyRight  core.Key = 0x105
	KeyReturn core.Key = 0x0a
	KeyEscape core.Key = 0x1b
	KeySpace  core.Key = 0x20
)

// Keypad is the key code set of this backend.
var Keypad = core.Keypad{
	Up: KeyUp, Down: KeyDown, Left: KeyLeft, Right: KeyRight,
	Return: KeyReturn, Escape: KeyEscape, Space: KeySpace,
}

// Input polling: one key per frame, waiting at most KeyTimeout.
const (
	KeyTimeout  = 50 * time.Millisecond
	pollQuantum = 5 * time.Millisecond
)

// Terminal is the subset of tcell.Screen the backend draws with.
type Terminal interface {
	Init() error
	Fini()
	Size() (int, int)
	Colors() int
	Clear()
	HideCursor()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	GetContent(x, y int) (primary rune, combining []rune, style tcell.Style, width int)
	Show()
	HasPendingEvent() bool
	PollEvent() tcell.Event
}

// Driver implements cons.Console on a Terminal.
type Driver struct {
	term Terminal
	tb   cons.Timebase
	log  *log.Logger

	life    cons.Lifecycle
	palette term.Palette
	style   tcell.Style

	width, height int
	curX, curY    int

	start time.Duration
	clock int64
	tick  int64
	key   core.Key
}

// Option configures a Driver.
type Option func(*Driver)

// WithTimebase replaces the wall clock, mainly for tests.
func WithTimebase(tb cons.Timebase) Option {
	return func(d *Driver) { d.tb = tb }
}

// WithLogger sets the logger for lifecycle and geometry events.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.log = l }
}

// New returns an uninitialized driver for t.
func New(t Terminal, opts ...Option) *Driver {
	d := &Driver{
		term: t,
		life: cons.NewLifecycle("curses"),
		key:  core.KeyNone,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.tb == nil {
		d.tb = cons.NewSystemClock()
	}
	if d.log == nil {
		d.log = cons.NopLogger()
	}
	return d
}

// Init starts the terminal. It fails with cons.ErrNoColor on terminals
// with fewer than 8 colors, after shutting the terminal down again.
// Flags are ignored.
func (d *Driver) Init(flags cons.Flags) error {
	d.life.BeforeInit()
	if err := d.term.Init(); err != nil {
		return err
	}
	if n := d.term.Colors(); n < 8 {
		d.term.Fini()
		d.log.Error("terminal lacks color", "colors", n)
		return cons.ErrNoColor
	}
	d.term.HideCursor()
	d.palette = term.NewPalette()
	d.style = tcell.StyleDefault
	d.updateSize()
	d.start = d.tb.Elapsed()
	d.clock, d.tick = 0, 0
	d.key = core.KeyNone
	d.curX, d.curY = 0, 0
	d.life.Activate()
	d.log.Info("console up", "backend", "curses", "width", d.width, "height", d.height)
	return nil
}

// Term shuts the terminal down.
func (d *Driver) Term() {
	d.life.Deactivate()
	d.term.Fini()
	d.log.Info("console down", "backend", "curses")
}

func (d *Driver) updateSize() {
	w, h := d.term.Size()
	if w != d.width || h != d.height {
		d.log.Debug("geometry", "width", w, "height", h)
	}
	d.width, d.height = w, h
}

// UpdateBegin samples the clock, waits up to KeyTimeout for a key and
// re-reads the terminal size.
func (d *Driver) UpdateBegin() {
	d.life.Require("UpdateBegin")
	d.clock = int64((d.tb.Elapsed() - d.start) / time.Millisecond)
	d.tick = cons.TickFromClock(d.clock)
	d.key = d.pollKey()
	d.updateSize()
}

func (d *Driver) pollKey() core.Key {
	deadline := d.tb.Elapsed() + KeyTimeout
	for {
		for d.term.HasPendingEvent() {
			switch ev := d.term.PollEvent().(type) {
			case *tcell.EventKey:
				if k := term.TranslateKey(ev, Keypad); k != core.KeyNone {
					return k
				}
			case *tcell.EventResize:
				d.updateSize()
			}
		}
		if d.tb.Elapsed() >= deadline {
			return core.KeyNone
		}
		d.tb.Sleep(pollQuantum)
	}
}

// UpdateEnd shows the frame.
func (d *Driver) UpdateEnd() {
	d.life.Require("UpdateEnd")
	d.term.Show()
}

// Clear blanks the screen in the terminal's default colors and homes the
// cursor.
func (d *Driver) Clear() {
	d.life.Require("Clear")
	d.term.Clear()
	d.curX, d.curY = 0, 0
}

// SetPosition moves the write cursor.
func (d *Driver) SetPosition(x, y int) {
	d.life.Require("SetPosition")
	d.curX, d.curY = x, y
}

// SetColor selects the color for following writes.
func (d *Driver) SetColor(c core.Color) {
	d.life.Require("SetColor")
	d.style = d.palette.Style(c)
}

// PutString writes s at the cursor. The cursor advances by each rune's
// display width and wraps to the next row at the right edge. Rows past
// the bottom are clipped.
func (d *Driver) PutString(s string) {
	d.life.Require("PutString")
	for _, r := range s {
		if r == '\n' {
			d.curX = 0
			d.curY++
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if d.curX+w > d.width && d.curX > 0 {
			d.curX = 0
			d.curY++
		}
		if d.curY >= 0 && d.curY < d.height && d.curX >= 0 {
			d.term.SetContent(d.curX, d.curY, r, nil, d.style)
		}
		d.curX += w
	}
}

// RegisterDirtyRect checks slot and otherwise does nothing.
func (d *Driver) RegisterDirtyRect(slot int, r core.Rect) {
	d.life.Require("RegisterDirtyRect")
	cons.CheckSlot(slot)
}

func (d *Driver) ScreenWidth() int      { return d.width }
func (d *Driver) ScreenHeight() int     { return d.height }
func (d *Driver) Clock() int64          { return d.clock }
func (d *Driver) Tick() int64           { return d.tick }
func (d *Driver) Key() core.Key         { return d.key }
func (d *Driver) Keypad() core.Keypad   { return Keypad }
func (d *Driver) Charset() core.Charset { return core.CharsetASCII }

// Snapshot decodes the terminal's cell buffer.
func (d *Driver) Snapshot() *core.Screen {
	s := core.NewScreen(d.width, d.height)
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			r, _, st, w := d.term.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			col, _ := d.palette.Color(st)
			s.SetCell(x, y, core.Cell{Rune: r, Color: col})
			if w == 2 {
				x++
				s.SetCell(x, y, core.Cell{Rune: ' ', Color: col, Cont: true})
			}
		}
	}
	return s
}

// Interface guards.
var (
	_ cons.Console     = (*Driver)(nil)
	_ cons.Snapshotter = (*Driver)(nil)
)
