package render

import (
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/pingplot/pingplot/internal/canvas"
	"github.com/pingplot/pingplot/internal/logger"
)

// Fallback dimensions when the terminal size can't be queried (pipes,
// odd environments).
const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// Reprint renders by homing the cursor and reprinting every serialized
// row. It needs no terminal modes beyond hiding the cursor, which Close
// restores.
type Reprint struct {
	out       *termenv.Output
	events    chan Event
	stopWatch func()
	closeOnce sync.Once
	log       logger.Logger
}

// NewReprint creates the reprint renderer on stdout, clears the screen
// once, and starts watching for resize notifications.
func NewReprint(log logger.Logger) *Reprint {
	return newReprint(os.Stdout, log)
}

func newReprint(w io.Writer, log logger.Logger) *Reprint {
	r := &Reprint{
		out:    termenv.NewOutput(w),
		events: make(chan Event, 4),
		log:    log,
	}
	r.out.HideCursor()
	r.out.ClearScreen()
	r.stopWatch = watchResize(r.events)
	return r
}

// Draw homes the cursor and reprints the canvas. Rows that run past the
// terminal edge wrap or truncate; that is acceptable for this strategy.
func (r *Reprint) Draw(c *canvas.Canvas) error {
	r.out.MoveCursor(1, 1)
	_, err := r.out.WriteString(c.String())
	return err
}

// Size queries the terminal, falling back to 80x24 when stdout isn't one.
func (r *Reprint) Size() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}

// Invalidate clears the screen so a smaller frame doesn't leave stale
// cells from the previous size behind.
func (r *Reprint) Invalidate() {
	r.out.ClearScreen()
}

// Events exposes resize notifications.
func (r *Reprint) Events() <-chan Event {
	return r.events
}

// Close restores cursor visibility and color state, exactly once.
func (r *Reprint) Close() error {
	r.closeOnce.Do(func() {
		if r.stopWatch != nil {
			r.stopWatch()
		}
		r.out.Reset()
		r.out.ShowCursor()
		_, _ = r.out.WriteString("\n")
	})
	return nil
}
