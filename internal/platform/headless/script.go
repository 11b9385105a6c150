package headless

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/conscade/internal/core"
)

// Step is one scripted key press followed by Wait idle frames. A step
// with no key only waits.
type Step struct {
	Name string // keypad key name ("up", "return", ...)
	Rune rune   // printable key when Name is empty
	Wait int
}

// Script is a sequence of steps.
type Script []Step

var keyNames = map[string]func(core.Keypad) core.Key{
	"up":     func(p core.Keypad) core.Key { return p.Up },
	"down":   func(p core.Keypad) core.Key { return p.Down },
	"left":   func(p core.Keypad) core.Key { return p.Left },
	"right":  func(p core.Keypad) core.Key { return p.Right },
	"return": func(p core.Keypad) core.Key { return p.Return },
	"enter":  func(p core.Keypad) core.Key { return p.Return },
	"esc":    func(p core.Keypad) core.Key { return p.Escape },
	"space":  func(p core.Keypad) core.Key { return p.Space },
}

// Key resolves the step's key for a backend keypad.
func (s Step) Key(pad core.Keypad) core.Key {
	if s.Name != "" {
		return keyNames[s.Name](pad)
	}
	if s.Rune != 0 {
		return core.Key(s.Rune)
	}
	return core.KeyNone
}

// ParseScript reads a comma or space separated key script such as
// "right,right,space,wait:30,q". A "wait:N" token adds N idle frames
// after the previous key; a key name or single printable character
// presses that key. "*N" after a key repeats it N times.
func ParseScript(s string) (Script, error) {
	var script Script
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\n' })
	for _, tok := range fields {
		if rest, ok := strings.CutPrefix(tok, "wait:"); ok {
			n, err := strconv.Atoi(rest)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("headless: bad wait %q", tok)
			}
			if len(script) == 0 {
				script = append(script, Step{})
			}
			script[len(script)-1].Wait += n
			continue
		}
		repeat := 1
		if key, count, ok := strings.Cut(tok, "*"); ok && key != "" {
			n, err := strconv.Atoi(count)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("headless: bad repeat %q", tok)
			}
			tok, repeat = key, n
		}
		st, err := parseKey(tok)
		if err != nil {
			return nil, err
		}
		for i := 0; i < repeat; i++ {
			script = append(script, st)
		}
	}
	return script, nil
}

func parseKey(tok string) (Step, error) {
	if _, ok := keyNames[strings.ToLower(tok)]; ok {
		return Step{Name: strings.ToLower(tok)}, nil
	}
	if utf8.RuneCountInString(tok) == 1 {
		r, _ := utf8.DecodeRuneInString(tok)
		if r > ' ' && r < 0x7f {
			return Step{Rune: r}, nil
		}
	}
	return Step{}, fmt.Errorf("headless: unknown key %q", tok)
}
