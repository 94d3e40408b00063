// Package render writes composed canvases to the terminal. Two
// interchangeable strategies sit behind one interface: a reprint renderer
// that clears and reprints serialized rows, and a full-screen renderer
// that addresses every cell through tcell. A capability probe picks the
// strategy at startup and reports which one it chose.
package render

import (
	"github.com/pingplot/pingplot/internal/canvas"
	"github.com/pingplot/pingplot/internal/errors"
	"github.com/pingplot/pingplot/internal/logger"
)

// Event is an asynchronous terminal notification surfaced to the run loop.
type Event int

const (
	// Resized fires when the terminal changes size; the loop replays the
	// current buffer through the same draw path.
	Resized Event = iota
	// Interrupted fires when the user asks to quit from inside a raw-mode
	// renderer, where Ctrl+C arrives as a key press instead of a signal.
	Interrupted
)

// Renderer is the contract both strategies satisfy. Draw consumes one
// composed canvas; Size reports the current terminal dimensions;
// Invalidate discards whatever is on screen after a resize so the next
// Draw starts from a clean slate; Close restores terminal state and is
// safe to call more than once, the restoration runs exactly once.
type Renderer interface {
	Draw(c *canvas.Canvas) error
	Size() (width, height int)
	Invalidate()
	Events() <-chan Event
	Close() error
}

// Strategy names accepted by Probe.
const (
	StrategyAuto    = ""
	StrategyReprint = "reprint"
	StrategyScreen  = "screen"
)

// Probe selects a renderer. With no forced strategy it tries to acquire a
// full-screen terminal and falls back to reprinting when that fails
// (dumb terminals, pipes, missing terminfo).
func Probe(force string, log logger.Logger) (Renderer, string, error) {
	switch force {
	case StrategyReprint:
		return NewReprint(log), StrategyReprint, nil
	case StrategyScreen:
		s, err := NewScreen(log)
		if err != nil {
			return nil, "", err
		}
		return s, StrategyScreen, nil
	case StrategyAuto:
		s, err := NewScreen(log)
		if err != nil {
			log.Debug("full-screen terminal unavailable, reprinting instead: %v", err)
			return NewReprint(log), StrategyReprint, nil
		}
		return s, StrategyScreen, nil
	default:
		return nil, "", errors.New(errors.ErrTerm,
			"Unknown renderer '"+force+"'",
			"Use 'screen', 'reprint', or leave it unset to auto-detect.")
	}
}
