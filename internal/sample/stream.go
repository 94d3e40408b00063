package sample

import (
	"bufio"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/pingplot/pingplot/internal/errors"
	"github.com/pingplot/pingplot/internal/logger"
)

// eventBuffer bounds the classified-event channel so a stalled consumer
// applies backpressure to the reader instead of growing without limit.
const eventBuffer = 16

// tailLines is how many raw output lines are retained for the diagnostic
// dump when ping quits unexpectedly.
const tailLines = 5

// DefaultArgs returns the flags ping needs to run continuously on the
// given dialect. Windows ping stops after four probes unless told otherwise.
func DefaultArgs(d Dialect) []string {
	if d == Windows {
		return []string{"-t"}
	}
	return nil
}

// Stream delivers classified samples from a running ping process. Events
// is closed when the stream ends; Err reports why.
type Stream struct {
	Events <-chan Sample

	done chan struct{}
	err  error
}

// Err returns the terminal error of the stream, nil for a clean shutdown.
// Only valid after Events has been closed.
func (s *Stream) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

// Start spawns the platform ping binary with the dialect's continuous-probe
// flags followed by the caller's arguments (which include the target host),
// and feeds its stdout through the dialect parser. The child runs with a C
// locale so decimal separators parse predictably.
//
// The reader goroutine owns the process: when ctx is canceled the process
// is killed and the stream closes cleanly; when ping exits on its own the
// stream closes with a STREAM error carrying the last few raw lines.
func Start(ctx context.Context, d Dialect, args []string, log logger.Logger) (*Stream, error) {
	argv := append(DefaultArgs(d), args...)
	cmd := exec.CommandContext(ctx, "ping", argv...)
	cmd.Env = append(os.Environ(), "LANG=C", "LC_ALL=C")

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSpawn,
			"Couldn't attach to ping's output",
			"This shouldn't happen - please report this bug!")
	}

	if err := cmd.Start(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrSpawn,
			"Couldn't run 'ping'",
			"Check that ping is on your PATH. On snap installs, run: snap connect pingplot:network-observe")
	}
	log.Debug("spawned ping %v (pid %d)", argv, cmd.Process.Pid)

	events := make(chan Sample, eventBuffer)
	s := &Stream{Events: events, done: make(chan struct{})}
	parser := NewParser(d)

	go func() {
		defer close(events)
		defer close(s.done)

		tail := make([]string, 0, tailLines)
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			line := scanner.Text()
			if len(tail) == tailLines {
				copy(tail, tail[1:])
				tail = tail[:tailLines-1]
			}
			tail = append(tail, line)

			sample, ok := parser.Classify(line)
			if !ok {
				log.Debug("ignored line: %q", line)
				continue
			}
			select {
			case events <- sample:
			case <-ctx.Done():
				_ = cmd.Wait()
				return
			}
		}

		waitErr := cmd.Wait()
		if ctx.Err() != nil {
			// Cancellation killed the process; not a stream failure.
			return
		}
		s.err = errors.WrapWithCode(waitErr, errors.ErrStream,
			"ping quit unexpectedly. Last lines of output:\n\n  "+strings.Join(tail, "\n  "),
			"Check the target host and your network connection.")
	}()

	return s, nil
}
