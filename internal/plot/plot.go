// Package plot composes one chart frame: it scales the visible sample
// window against a dampened reference maximum, colors bars by latency
// zone, and overlays statistics onto a fresh canvas sized to the terminal.
package plot

import (
	"fmt"
	"math"

	"github.com/pingplot/pingplot/internal/canvas"
	"github.com/pingplot/pingplot/internal/history"
	"github.com/pingplot/pingplot/internal/sample"
	"github.com/pingplot/pingplot/internal/stats"
)

// StatsStyle selects which statistics the overlay shows.
type StatsStyle int

const (
	// StatsBasic shows current / max / min / average latency.
	StatsBasic StatsStyle = iota
	// StatsPercentile shows p5 / p50 / p95 and packet loss.
	StatsPercentile
)

// Latency thresholds, in milliseconds, that separate the color zones.
const (
	yellowThresholdMs = 100
	greenThresholdMs  = 50
)

// Chart geometry. Bars grow from barBaseRow and columns start at
// chartLeftCol, one cell inside the frame. chartMargins is the total width
// spent on frame and padding.
const (
	barBaseRow      = 2
	chartLeftCol    = 2
	chartMargins    = 5
	fallbackZoneRow = 2 // keeps a zero-height bar green when there is no reference max
)

// Plot renders the buffer into a canvas for a terminal of the given size.
// The buffer's newest sample lands in the leftmost chart column. A buffer
// with no successful probes yields just the frame.
func Plot(buf *history.Ring, termWidth, termHeight int, host string, style StatsStyle) *canvas.Canvas {
	// Keep one row and column spare so the final newline never wraps.
	w, h := termWidth-1, termHeight-1
	c := canvas.New(w, h)
	if w < chartMargins+1 || h < barBaseRow+3 {
		return c
	}

	frameBL := canvas.Point{X: 1, Y: 1}
	frameTR := canvas.Point{X: w - 2, Y: h - 2}
	_ = c.Box(frameBL, frameTR, nil, false)

	window := buf.Window(w - chartMargins + 1)
	latencies := stats.Latencies(window)
	if len(latencies) == 0 {
		return c
	}

	refMax := referenceMax(latencies)
	chartHeight := h - 5

	greenRow, yellowRow := zoneRows(refMax, chartHeight)
	paint := zonePainter(greenRow, yellowRow)

	for i, s := range window {
		x := chartLeftCol + i
		if s.IsTimeout() {
			c.Set(canvas.Point{X: x, Y: barBaseRow}, '?', canvas.Red)
			continue
		}
		c.VerticalRun("█", x, barBaseRow, barBaseRow+barHeight(s, refMax, chartHeight), paint)
	}

	drawOverlay(c, buf.All(), style)
	drawHostLabel(c, host)
	return c
}

// referenceMax picks the latency every bar is scaled against. A lone spike
// would flatten the rest of the chart, so when the maximum is more than
// twice the average it is pulled back by a quarter.
func referenceMax(latencies []int) float64 {
	maxMs, sum := 0, 0
	for _, ms := range latencies {
		sum += ms
		if ms > maxMs {
			maxMs = ms
		}
	}
	avg := float64(sum) / float64(len(latencies))

	ref := float64(maxMs)
	if ref > avg*2 {
		ref *= 0.75
	}
	return ref
}

// zoneRows inverse-scales the fixed latency thresholds into chart rows.
// With no reference max both boundaries sit at a low constant so that a
// zero-height bar renders green, not red.
func zoneRows(refMax float64, chartHeight int) (greenRow, yellowRow int) {
	if refMax <= 0 {
		return fallbackZoneRow, fallbackZoneRow
	}
	greenRow = int(math.Round(float64(chartHeight) * (greenThresholdMs / refMax)))
	yellowRow = int(math.Round(float64(chartHeight) * (yellowThresholdMs / refMax)))
	return greenRow, yellowRow
}

// zonePainter colors a row by where it sits relative to the zone
// boundaries. It is a pure function of the coordinates and the two
// captured threshold rows.
func zonePainter(greenRow, yellowRow int) canvas.Painter {
	return func(x, y int) canvas.Color {
		switch {
		case y <= greenRow:
			return canvas.Green
		case y <= yellowRow:
			return canvas.Yellow
		default:
			return canvas.Red
		}
	}
}

// barHeight scales one sample into chart rows, clamped to the chart.
func barHeight(s sample.Sample, refMax float64, chartHeight int) int {
	if refMax <= 0 || chartHeight <= 0 {
		return 0
	}
	ratio := float64(s.Ms()) / refMax
	if ratio > 1 {
		ratio = 1
	}
	height := int(math.Round(float64(chartHeight) * ratio))
	if height < 0 {
		height = 0
	}
	if height > chartHeight {
		height = chartHeight
	}
	return height
}

// drawOverlay centers the statistics box, blanking a one-cell halo behind
// it so chart bars never touch the text.
func drawOverlay(c *canvas.Canvas, all []sample.Sample, style StatsStyle) {
	snap, ok := stats.Compute(all)
	if !ok {
		return
	}

	lines := overlayLines(snap, style)
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	midX, midY := c.Width()/2, c.Height()/2
	top := midY + len(lines)/2
	if top > c.Height()-3 {
		top = c.Height() - 3
	}
	bottom := top - len(lines) + 1
	left := midX - maxLen/2

	_ = c.Box(
		canvas.Point{X: left - 1, Y: bottom - 1},
		canvas.Point{X: left + maxLen, Y: top + 1},
		nil, true,
	)

	for i, line := range lines {
		row := top - i
		if row < 0 {
			break
		}
		c.HorizontalRun(line, row, left, left+len(line), nil)
	}
}

// overlayLines formats the statistics for the active rendering variant.
func overlayLines(snap stats.Snapshot, style StatsStyle) []string {
	if style == StatsPercentile {
		return []string{
			fmt.Sprintf("P5:  %6.0f", snap.P5),
			fmt.Sprintf("P50: %6.0f", snap.P50),
			fmt.Sprintf("P95: %6.0f", snap.P95),
			fmt.Sprintf("Loss: %4d%%", snap.LossPct),
		}
	}
	return []string{
		fmt.Sprintf("Cur: %6d", snap.Cur),
		fmt.Sprintf("Max: %6d", snap.Max),
		fmt.Sprintf("Min: %6d", snap.Min),
		fmt.Sprintf("Avg: %6.0f", snap.Avg),
	}
}

// drawHostLabel centers the target name along the top border, padded by
// one space on each side.
func drawHostLabel(c *canvas.Canvas, host string) {
	if host == "" {
		return
	}
	label := " " + host + " "
	row := c.Height() - 2
	from := c.Width()/2 - len(label)/2
	c.HorizontalRun(label, row, from, from+len(label), nil)
}
