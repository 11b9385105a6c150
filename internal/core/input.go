package core

// Key is a raw key code as reported by a console backend.
// Codes for non-character keys differ per backend; see Keypad.
type Key uint16

// KeyNone is reported when no key was pressed during a frame.
const KeyNone Key = 0xFFFF

// Keypad lists the backend codes of the keys games refer to by name.
type Keypad struct {
	Up, Down, Left, Right Key
	Return, Escape, Space Key
}

// Action represents a logical game key, abstracted from physical key codes.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // Up arrow, W
	ActionDown          // Down arrow, S
	ActionLeft          // Left arrow, A
	ActionRight         // Right arrow, D
	ActionKey1          // Space, Z - primary action (open, rotate)
	ActionKey2          // Return, X - secondary action (flag, clear)
	ActionCancel        // Escape, C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionKey1:
		return "Key1"
	case ActionKey2:
		return "Key2"
	case ActionCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// MapKey translates a raw key to a logical action using the backend keypad.
// Letter aliases are accepted in both cases.
func (p Keypad) MapKey(k Key) Action {
	if k == KeyNone {
		return ActionNone
	}
	switch k {
	case p.Up, 'w', 'W':
		return ActionUp
	case p.Down, 's', 'S':
		return ActionDown
	case p.Left, 'a', 'A':
		return ActionLeft
	case p.Right, 'd', 'D':
		return ActionRight
	case p.Space, 'z', 'Z':
		return ActionKey1
	case p.Return, 'x', 'X':
		return ActionKey2
	case p.Escape, 'c', 'C':
		return ActionCancel
	}
	return ActionNone
}

// Charset tells games which glyph repertoire a backend renders well.
type Charset int

const (
	// CharsetASCII is a plain terminal; map cells use two ASCII columns.
	CharsetASCII Charset = iota
	// CharsetSJIS renders double-byte glyphs two columns wide.
	CharsetSJIS
	// CharsetCP437 renders IBM graphics characters one column wide.
	CharsetCP437
)

// String returns the charset name.
func (c Charset) String() string {
	switch c {
	case CharsetSJIS:
		return "sjis"
	case CharsetCP437:
		return "cp437"
	default:
		return "ascii"
	}
}
