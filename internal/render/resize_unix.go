//go:build unix

package render

import (
	"os"
	"os/signal"
	"syscall"
)

// watchResize forwards SIGWINCH to the renderer's event channel. The
// returned func stops the watcher; it is safe to call once.
func watchResize(events chan<- Event) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGWINCH)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-sigs:
				select {
				case events <- Resized:
				default:
					// A redraw is already pending; collapsing bursts is fine.
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}
