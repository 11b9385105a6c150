package cons

import "github.com/vovakirdan/conscade/internal/core"

// Keyboard is the BIOS style key source of the DOS backends.
type Keyboard interface {
	// KeyHit reports whether a key is waiting.
	KeyHit() bool
	// ReadKey removes and returns the next key, or core.KeyNone.
	ReadKey() core.Key
	// Flush discards every waiting key.
	Flush()
}

// KeyQueue is an in-memory Keyboard fed by the caller.
type KeyQueue struct {
	keys []core.Key
}

// NewKeyQueue returns a queue holding keys.
func NewKeyQueue(keys ...core.Key) *KeyQueue {
	return &KeyQueue{keys: append([]core.Key(nil), keys...)}
}

// Push appends keys to the queue.
func (q *KeyQueue) Push(keys ...core.Key) {
	q.keys = append(q.keys, keys...)
}

// KeyHit reports whether a key is waiting.
func (q *KeyQueue) KeyHit() bool {
	return len(q.keys) > 0
}

// ReadKey pops the oldest key.
func (q *KeyQueue) ReadKey() core.Key {
	if len(q.keys) == 0 {
		return core.KeyNone
	}
	k := q.keys[0]
	q.keys = q.keys[1:]
	return k
}

// Flush empties the queue.
func (q *KeyQueue) Flush() {
	q.keys = q.keys[:0]
}

// Len returns the number of waiting keys.
func (q *KeyQueue) Len() int {
	return len(q.keys)
}
