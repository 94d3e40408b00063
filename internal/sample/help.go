package sample

import "os/exec"

// HasHelpFlag reports whether the passthrough arguments ask ping for its
// help text. When they do, nothing may be spawned or parsed; the caller
// prints composed help instead.
func HasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "--help" || arg == "/?" {
			return true
		}
	}
	return false
}

// HelpFlag returns the flag the platform's own ping uses to print usage.
func HelpFlag(d Dialect) string {
	if d == Windows {
		return "/h"
	}
	return "--help"
}

// PingHelp shells out to the platform ping for its usage text. ping exits
// non-zero after printing usage on most platforms, so the output is
// returned even when the command reports an error.
func PingHelp(d Dialect) string {
	out, _ := exec.Command("ping", HelpFlag(d)).CombinedOutput()
	return string(out)
}
