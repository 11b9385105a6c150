package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/conscade/internal/core"
)

// TranslateKey converts a tcell key event to the key code a backend with
// keypad pad would report. Printable ASCII passes through as its byte
// value. Keys the backends have no code for return core.KeyNone.
func TranslateKey(ev *tcell.EventKey, pad core.Keypad) core.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return pad.Up
	case tcell.KeyDown:
		return pad.Down
	case tcell.KeyLeft:
		return pad.Left
	case tcell.KeyRight:
		return pad.Right
	case tcell.KeyEnter:
		return pad.Return
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return pad.Escape
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			return pad.Space
		}
		if r > ' ' && r < 0x7f {
			return core.Key(r)
		}
		return core.KeyNone
	}
	if k := ev.Key(); k < ' ' {
		return core.Key(k)
	}
	return core.KeyNone
}
