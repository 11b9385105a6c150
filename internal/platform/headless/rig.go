// Package headless runs games on a console backend without a real
// terminal: time comes from a ManualClock and keys from a script. The
// snapshot command and the game tests are built on it.
package headless

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/conscade/internal/config"
	"github.com/vovakirdan/conscade/internal/cons"
	"github.com/vovakirdan/conscade/internal/cons/curses"
	"github.com/vovakirdan/conscade/internal/cons/pc98"
	"github.com/vovakirdan/conscade/internal/cons/pcat"
	"github.com/vovakirdan/conscade/internal/core"
	"github.com/vovakirdan/conscade/internal/games/engine"
)

// Console is a backend that can also decode its display.
type Console interface {
	cons.Console
	cons.Snapshotter
}

// Rig owns one initialized headless console.
type Rig struct {
	Console Console
	Clock   *cons.ManualClock

	press func(core.Key)
	sim   tcell.SimulationScreen
}

// Options configure New.
type Options struct {
	Flags  cons.Flags
	Logger *log.Logger
	// Width and Height size the simulated terminal of the curses
	// backend. The DOS backends have a fixed text mode.
	Width, Height int
}

// New builds and initializes a console of the named backend.
func New(backend string, opts Options) (*Rig, error) {
	if opts.Logger == nil {
		opts.Logger = cons.NopLogger()
	}
	r := &Rig{Clock: cons.NewManualClock()}

	switch backend {
	case config.BackendPC98:
		kb := cons.NewKeyQueue()
		m := pc98.NewEmulated(r.Clock, kb)
		r.Console = pc98.New(m, pc98.WithLogger(opts.Logger))
		r.press = func(k core.Key) { kb.Push(k) }
	case config.BackendPCAT:
		kb := cons.NewKeyQueue()
		m := pcat.NewEmulated(r.Clock, kb)
		r.Console = pcat.New(m, pcat.WithLogger(opts.Logger))
		r.press = func(k core.Key) { kb.Push(biosWord(k)) }
	case config.BackendCurses:
		r.sim = tcell.NewSimulationScreen("UTF-8")
		r.Console = curses.New(r.sim, curses.WithTimebase(r.Clock), curses.WithLogger(opts.Logger))
		r.press = r.inject
	default:
		return nil, fmt.Errorf("headless: unknown backend %q", backend)
	}

	if err := r.Console.Init(opts.Flags); err != nil {
		return nil, fmt.Errorf("headless: %s: %w", backend, err)
	}
	if r.sim != nil && opts.Width > 0 && opts.Height > 0 {
		r.sim.SetSize(opts.Width, opts.Height)
	}
	return r, nil
}

// Close terminates the console.
func (r *Rig) Close() {
	r.Console.Term()
}

// Press queues a key in the backend's own code set.
func (r *Rig) Press(k core.Key) {
	if k != core.KeyNone {
		r.press(k)
	}
}

// Frame runs one frame of g, with k pressed first unless it is KeyNone.
// It returns false once g has exited.
func (r *Rig) Frame(g engine.Framer, k core.Key) bool {
	r.Press(k)
	r.Console.UpdateBegin()
	more := g.Frame(r.Console)
	r.Console.UpdateEnd()
	return more
}

// Idle runs up to n frames without input. It returns the number of frames
// run and whether g is still running.
func (r *Rig) Idle(g engine.Framer, n int) (int, bool) {
	for i := 0; i < n; i++ {
		if !r.Frame(g, core.KeyNone) {
			return i + 1, false
		}
	}
	return n, true
}

// Play runs script against g and returns the number of frames run and
// whether g is still running.
func (r *Rig) Play(g engine.Framer, script Script) (int, bool) {
	pad := r.Console.Keypad()
	frames := 0
	for _, st := range script {
		if k := st.Key(pad); k != core.KeyNone {
			frames++
			if !r.Frame(g, k) {
				return frames, false
			}
		}
		for i := 0; i < st.Wait; i++ {
			frames++
			if !r.Frame(g, core.KeyNone) {
				return frames, false
			}
		}
	}
	return frames, true
}

// Screen decodes the current display.
func (r *Rig) Screen() *core.Screen {
	return r.Console.Snapshot()
}

// biosWord turns a PC/AT key code back into the BIOS word the keyboard
// buffer holds.
func biosWord(k core.Key) core.Key {
	switch k {
	case pcat.KeyUp:
		return pcat.BIOSKeypad.Up
	case pcat.KeyDown:
		return pcat.BIOSKeypad.Down
	case pcat.KeyLeft:
		return pcat.BIOSKeypad.Left
	case pcat.KeyRight:
		return pcat.BIOSKeypad.Right
	case pcat.KeyReturn:
		return pcat.BIOSKeypad.Return
	case pcat.KeyEscape:
		return pcat.BIOSKeypad.Escape
	case pcat.KeySpace:
		return pcat.BIOSKeypad.Space
	}
	return k
}

// inject posts a curses key code as a terminal event.
func (r *Rig) inject(k core.Key) {
	switch k {
	case curses.KeyUp:
		r.sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	case curses.KeyDown:
		r.sim.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	case curses.KeyLeft:
		r.sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	case curses.KeyRight:
		r.sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	case curses.KeyReturn:
		r.sim.InjectKey(tcell.KeyEnter, '\r', tcell.ModNone)
	case curses.KeyEscape:
		r.sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	default:
		r.sim.InjectKey(tcell.KeyRune, rune(k), tcell.ModNone)
	}
}
