package sample

import "strings"

// Option letters that never take a value, per dialect. Anything else in a
// short option either glues its value on ("-t5") or consumes the next
// argument ("-t 5").
var noArgOptions = map[Dialect]string{
	Darwin: "hAaCDdfnoQqRrv",
	Linux:  "haAbBdDfhLnOqrRUvV46",
}

// ExtractHost finds the target host inside the arguments that will be
// forwarded verbatim to ping: it skips option arguments and returns the
// last positional argument left over. Windows ping orders its arguments
// differently enough that no guess is made there, so the chart simply
// renders without a title.
func ExtractHost(d Dialect, argv []string) string {
	if d == Windows {
		return ""
	}
	noArg := noArgOptions[d]

	var positional []string
	remaining := append([]string(nil), argv...)
	for len(remaining) > 0 {
		arg := remaining[0]
		remaining = remaining[1:]

		switch {
		case arg == "--":
			positional = append(positional, remaining...)
			remaining = nil
		case strings.HasPrefix(arg, "--"):
			// Long options on ping are all flag-style.
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			if strings.ContainsRune(noArg, rune(arg[1])) {
				continue
			}
			if len(arg) == 2 && len(remaining) > 0 {
				// Value follows as its own argument, e.g. "-t 5".
				remaining = remaining[1:]
			}
			// Otherwise the value is glued on, e.g. "-t5".
		default:
			positional = append(positional, arg)
		}
	}

	if len(positional) == 0 {
		return ""
	}
	return positional[len(positional)-1]
}
