package canvas

import "github.com/muesli/termenv"

// Color is a semantic color tag attached to a cell. The zero value means
// the cell is uncolored and renders with the terminal default.
type Color int

// Semantic colors for latency zones and markers.
const (
	None Color = iota
	Green
	Yellow
	Red
)

// Painter resolves a color from cell coordinates at write time. It must be
// a pure function of (x, y); the plotter passes zone thresholds by value.
type Painter func(x, y int) Color

// Solid returns a Painter that always resolves to c.
func Solid(c Color) Painter {
	return func(x, y int) Color { return c }
}

// ansiCodes maps semantic colors to ANSI foreground palette entries.
// Standard ANSI palette positions: green 2, yellow 3, red 1.
var ansiCodes = map[Color]string{
	Green:  "2",
	Yellow: "3",
	Red:    "1",
}

// Sequence returns the ANSI escape sequence that switches the terminal
// foreground to this color. Sequences are built against the fixed ANSI
// profile so serialization is deterministic regardless of the terminal
// the process happens to run in.
func (c Color) Sequence() string {
	code, ok := ansiCodes[c]
	if !ok {
		return resetSequence
	}
	return termenv.CSI + termenv.ANSI.Color(code).Sequence(false) + "m"
}

// resetSequence restores the terminal default foreground.
var resetSequence = termenv.CSI + termenv.ResetSeq + "m"

func (c Color) String() string {
	switch c {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	default:
		return "none"
	}
}
