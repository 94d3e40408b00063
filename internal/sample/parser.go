package sample

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Dialect selects which OS flavor of ping output a Parser understands.
type Dialect int

const (
	Linux Dialect = iota
	Darwin
	Windows
)

// DialectFor maps a GOOS value to its ping dialect. BSD flavors read like
// Darwin; everything else is assumed to be iputils.
func DialectFor(goos string) Dialect {
	switch goos {
	case "windows":
		return Windows
	case "darwin", "freebsd", "openbsd", "netbsd", "dragonfly":
		return Darwin
	default:
		return Linux
	}
}

func (d Dialect) String() string {
	switch d {
	case Windows:
		return "windows"
	case Darwin:
		return "darwin"
	default:
		return "linux"
	}
}

// Latency patterns for each dialect. The Windows one reads five integers
// and captures the sixth, which lands on the time value across the locale
// variations of "Reply from x.x.x.x: bytes=32 time=12ms TTL=55".
var (
	linuxTimeRe = regexp.MustCompile(`(?i)time=(\d+(?:\.\d+)?) *ms`)

	darwinReplyRe = regexp.MustCompile(`(?is)\s?(\d*)\sbytes\sfrom\s(\d+\.\d+\.\d+\.\d+):\s+icmp_seq=(\d+)\s+ttl=(\d+)\s+time=(\d+(?:\.\d+)?)\s+ms`)

	windowsReplyRe = regexp.MustCompile(`(?is).*?\d+.*?\d+.*?\d+.*?\d+.*?\d+.*?(\d+)`)
)

// Parser classifies single lines of ping output for one dialect.
//
// The Linux dialect deliberately has no timeout pattern: iputils prints
// nothing for a dropped packet in its default mode, so losses surface as
// gaps rather than Timeout samples. Darwin and Windows both print an
// explicit timeout line and are classified accordingly.
type Parser struct {
	dialect Dialect
}

// NewParser creates a parser for the given dialect.
func NewParser(d Dialect) *Parser {
	return &Parser{dialect: d}
}

// Dialect returns the dialect this parser was built for.
func (p *Parser) Dialect() Dialect {
	return p.dialect
}

// Classify produces at most one sample from a raw output line. The second
// return value is false for lines that carry no event (headers, summary
// banners, anything unrecognized); those must not advance any state.
func (p *Parser) Classify(line string) (Sample, bool) {
	switch p.dialect {
	case Windows:
		return classifyWindows(line)
	case Darwin:
		return classifyDarwin(line)
	default:
		return classifyLinux(line)
	}
}

func classifyLinux(line string) (Sample, bool) {
	if !strings.HasPrefix(line, "64 bytes from") {
		return 0, false
	}
	m := linuxTimeRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	return roundMs(m[1])
}

func classifyDarwin(line string) (Sample, bool) {
	if strings.HasPrefix(line, "Request timeout") {
		return Timeout, true
	}
	if !strings.HasPrefix(line, "64 bytes from") {
		return 0, false
	}
	m := darwinReplyRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	return roundMs(m[5])
}

func classifyWindows(line string) (Sample, bool) {
	if strings.Contains(line, "timed out") || strings.Contains(line, "failure") {
		return Timeout, true
	}
	if !strings.HasPrefix(line, "Reply from") {
		return 0, false
	}
	m := windowsReplyRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	ms, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return Sample(ms), true
}

// roundMs parses a decimal millisecond value and rounds it half away from
// zero, so 23.5 becomes 24.
func roundMs(raw string) (Sample, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return Sample(int(math.Round(v))), true
}
