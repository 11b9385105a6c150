package cons

import (
	"fmt"

	"github.com/vovakirdan/conscade/internal/core"
)

// PutStringAt moves the cursor to (x, y) and writes s.
func PutStringAt(c Console, x, y int, s string) {
	c.SetPosition(x, y)
	c.PutString(s)
}

// PutStringAtColored moves the cursor, sets the color and writes s.
func PutStringAtColored(c Console, x, y int, col core.Color, s string) {
	c.SetPosition(x, y)
	c.SetColor(col)
	c.PutString(s)
}

// Printf writes formatted text at the cursor.
func Printf(c Console, format string, args ...any) {
	c.PutString(fmt.Sprintf(format, args...))
}

// PrintfAt writes formatted text at (x, y).
func PrintfAt(c Console, x, y int, format string, args ...any) {
	PutStringAt(c, x, y, fmt.Sprintf(format, args...))
}

// PrintfAtColored writes formatted text at (x, y) in color col.
func PrintfAtColored(c Console, x, y int, col core.Color, format string, args ...any) {
	PutStringAtColored(c, x, y, col, fmt.Sprintf(format, args...))
}
