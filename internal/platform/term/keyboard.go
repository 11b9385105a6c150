package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/conscade/internal/cons"
	"github.com/vovakirdan/conscade/internal/core"
)

// EventSource is the non-blocking part of tcell.Screen's event API.
type EventSource interface {
	HasPendingEvent() bool
	PollEvent() tcell.Event
}

// Keyboard feeds terminal key presses into an emulated machine's BIOS key
// buffer. It implements cons.Keyboard.
type Keyboard struct {
	src      EventSource
	pad      core.Keypad
	queue    *cons.KeyQueue
	onResize func()
}

// NewKeyboard returns a keyboard that translates keys for pad. onResize,
// if not nil, runs for every terminal resize event.
func NewKeyboard(src EventSource, pad core.Keypad, onResize func()) *Keyboard {
	return &Keyboard{src: src, pad: pad, queue: cons.NewKeyQueue(), onResize: onResize}
}

// pump moves every pending terminal event into the key buffer.
func (k *Keyboard) pump() {
	for k.src.HasPendingEvent() {
		switch ev := k.src.PollEvent().(type) {
		case *tcell.EventKey:
			if key := TranslateKey(ev, k.pad); key != core.KeyNone {
				k.queue.Push(key)
			}
		case *tcell.EventResize:
			if k.onResize != nil {
				k.onResize()
			}
		case nil:
			return
		}
	}
}

// KeyHit reports whether a key is waiting.
func (k *Keyboard) KeyHit() bool {
	k.pump()
	return k.queue.KeyHit()
}

// ReadKey returns the oldest waiting key or core.KeyNone.
func (k *Keyboard) ReadKey() core.Key {
	k.pump()
	return k.queue.ReadKey()
}

// Flush drops every waiting key.
func (k *Keyboard) Flush() {
	k.pump()
	k.queue.Flush()
}
