// Package stats derives per-frame statistics from a sample window:
// min/max/average over successful probes, interpolated percentiles, and
// packet loss. Nothing here is stored between frames; every snapshot is
// recomputed from the buffer it is given.
//
// All rounding in this package is half away from zero (math.Round).
package stats

import (
	"math"
	"sort"

	"github.com/pingplot/pingplot/internal/sample"
)

// Snapshot is the derived view of one sample window. Cur is the most
// recent successful probe; P* are interpolated percentiles over the
// successful probes only; LossPct counts timeouts against every sample.
type Snapshot struct {
	Count   int
	Cur     int
	Min     int
	Max     int
	Avg     float64
	P5      float64
	P50     float64
	P95     float64
	LossPct int
}

// Compute builds a snapshot from samples ordered newest first. It returns
// ok=false when the window holds no successful probe; callers render
// nothing in that case rather than treating it as an error.
func Compute(samples []sample.Sample) (Snapshot, bool) {
	latencies := Latencies(samples)
	if len(latencies) == 0 {
		return Snapshot{}, false
	}

	snap := Snapshot{
		Count:   len(samples),
		Cur:     latencies[0],
		LossPct: Loss(samples),
	}

	sum := 0
	snap.Min, snap.Max = latencies[0], latencies[0]
	for _, ms := range latencies {
		sum += ms
		if ms < snap.Min {
			snap.Min = ms
		}
		if ms > snap.Max {
			snap.Max = ms
		}
	}
	snap.Avg = float64(sum) / float64(len(latencies))

	sorted := make([]float64, len(latencies))
	for i, ms := range latencies {
		sorted[i] = float64(ms)
	}
	sort.Float64s(sorted)
	snap.P5 = Percentile(sorted, 5)
	snap.P50 = Percentile(sorted, 50)
	snap.P95 = Percentile(sorted, 95)

	return snap, true
}

// Latencies filters samples down to the successful probes, preserving
// order (newest first when the input is newest first).
func Latencies(samples []sample.Sample) []int {
	out := make([]int, 0, len(samples))
	for _, s := range samples {
		if !s.IsTimeout() {
			out = append(out, s.Ms())
		}
	}
	return out
}

// Loss returns the timeout share of the window as a rounded percentage.
func Loss(samples []sample.Sample) int {
	if len(samples) == 0 {
		return 0
	}
	timeouts := 0
	for _, s := range samples {
		if s.IsTimeout() {
			timeouts++
		}
	}
	return int(math.Round(100 * float64(timeouts) / float64(len(samples))))
}

// Percentile computes the p-th percentile of an ascending-sorted series by
// averaging the two elements that bound the fractional rank
// i = (n-1) * p / 100. A single-element series returns that element for
// every p. An empty series returns 0; callers gate on emptiness first.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	i := float64(n-1) * p / 100
	lo := int(math.Floor(i))
	hi := int(math.Ceil(i))
	return (sorted[lo] + sorted[hi]) / 2
}
