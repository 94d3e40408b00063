package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/pingplot/pingplot/internal/canvas"
	"github.com/pingplot/pingplot/internal/errors"
	"github.com/pingplot/pingplot/internal/logger"
)

// Screen renders through a full-screen tcell terminal: every cell is
// written at its explicit row and column and flushed once per frame.
// Acquiring the screen puts the terminal into raw, alternate-buffer mode;
// Close runs Fini exactly once to restore echo, line buffering, and the
// cursor, including on abnormal exit paths.
type Screen struct {
	screen    tcell.Screen
	styles    map[canvas.Color]tcell.Style
	events    chan Event
	closeOnce sync.Once
	log       logger.Logger
}

// NewScreen acquires the terminal. Failure here is the capability probe's
// signal to fall back to the reprint strategy.
func NewScreen(log logger.Logger) (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrTerm,
			"Couldn't acquire a full-screen terminal", "")
	}
	if err := ts.Init(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrTerm,
			"Couldn't initialize the terminal", "")
	}
	return newScreenFrom(ts, log), nil
}

// newScreenFrom wires an already-initialized tcell screen; tests use it
// with tcell's simulation screen.
func newScreenFrom(ts tcell.Screen, log logger.Logger) *Screen {
	ts.HideCursor()
	s := &Screen{
		screen: ts,
		// Semantic colors map to terminal colors once, at acquisition.
		styles: map[canvas.Color]tcell.Style{
			canvas.None:   tcell.StyleDefault,
			canvas.Green:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
			canvas.Yellow: tcell.StyleDefault.Foreground(tcell.ColorYellow),
			canvas.Red:    tcell.StyleDefault.Foreground(tcell.ColorRed),
		},
		events: make(chan Event, 4),
		log:    log,
	}
	go s.pollEvents()
	return s
}

// pollEvents translates tcell events into renderer events. PollEvent
// returns nil once Fini has run, which ends the goroutine.
func (s *Screen) pollEvents() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		switch tev := ev.(type) {
		case *tcell.EventResize:
			s.screen.Sync()
			select {
			case s.events <- Resized:
			default:
			}
		case *tcell.EventKey:
			// Raw mode swallows Ctrl+C, so quitting surfaces as a key.
			if tev.Key() == tcell.KeyCtrlC || tev.Key() == tcell.KeyEscape ||
				(tev.Key() == tcell.KeyRune && tev.Rune() == 'q') {
				select {
				case s.events <- Interrupted:
				default:
				}
			}
		}
	}
}

// Draw writes each canvas cell at its addressed position, silently
// discarding writes that fall outside the current terminal bounds, then
// flushes the frame.
func (s *Screen) Draw(c *canvas.Canvas) error {
	width, height := s.screen.Size()
	for y := 0; y < c.Height(); y++ {
		row := c.Height() - 1 - y
		if row >= height {
			continue
		}
		for x := 0; x < c.Width() && x < width; x++ {
			cell := c.At(canvas.Point{X: x, Y: y})
			s.screen.SetContent(x, row, cell.Ch, nil, s.styles[cell.Color])
		}
	}
	s.screen.Show()
	return nil
}

// Size reports the terminal dimensions tcell is tracking.
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// Invalidate drops tcell's notion of what is on screen; the next Show
// repaints every cell.
func (s *Screen) Invalidate() {
	s.screen.Clear()
}

// Events exposes resize and interrupt notifications.
func (s *Screen) Events() <-chan Event {
	return s.events
}

// Close restores the terminal, exactly once.
func (s *Screen) Close() error {
	s.closeOnce.Do(func() {
		s.screen.Fini()
	})
	return nil
}
