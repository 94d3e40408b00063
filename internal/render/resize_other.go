//go:build !unix

package render

// watchResize is a no-op where SIGWINCH doesn't exist. The full-screen
// renderer still sees resizes through its own event loop; the reprint
// strategy redraws at the stale size until the next sample arrives.
func watchResize(events chan<- Event) func() {
	return func() {}
}
