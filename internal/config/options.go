package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Legacy option names understood by the games.
const (
	OptHighScore = "hs"
	OptPiece     = "piece"
)

// ParseOptions reads "-name<value>" tokens, one per line. Blank lines and
// lines not starting with '-' are ignored.
func ParseOptions(r io.Reader) ([]string, error) {
	var opts []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "-") {
			opts = append(opts, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("config: read options: %w", err)
	}
	return opts, nil
}

// ReadOptionFile returns the options stored at path. A missing file
// yields no options.
func ReadOptionFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseOptions(bytes.NewReader(data))
}

// WriteOptionFile replaces the file at path with opts, one per line.
func WriteOptionFile(path string, opts []string) error {
	var buf bytes.Buffer
	for _, o := range opts {
		buf.WriteString(o)
		buf.WriteByte('\n')
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// IntOption returns the value of the last "-name<N>" token. Like atoi the
// value is the leading decimal digits, 0 when there are none.
func IntOption(opts []string, name string) (int, bool) {
	val, found := 0, false
	prefix := "-" + name
	for _, o := range opts {
		if !strings.HasPrefix(o, prefix) {
			continue
		}
		val, found = atoi(o[len(prefix):]), true
	}
	return val, found
}

// FormatInt builds a "-name<N>" token.
func FormatInt(name string, v int) string {
	return fmt.Sprintf("-%s%d", name, v)
}

func atoi(s string) int {
	s = strings.TrimLeft(s, " \t")
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		return -n
	}
	return n
}

// SplitLegacyArgs separates single-dash "-name<value>" tokens for the
// given option names from the rest of args, so they can bypass the flag
// parser.
func SplitLegacyArgs(args []string, names ...string) (legacy, rest []string) {
	for _, a := range args {
		if isLegacy(a, names) {
			legacy = append(legacy, a)
		} else {
			rest = append(rest, a)
		}
	}
	return legacy, rest
}

func isLegacy(arg string, names []string) bool {
	if strings.HasPrefix(arg, "--") {
		return false
	}
	for _, n := range names {
		if strings.HasPrefix(arg, "-"+n) && len(arg) > len(n)+1 {
			return true
		}
	}
	return false
}
