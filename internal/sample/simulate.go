package sample

import (
	"context"
	"math/rand"
	"time"
)

// Random-walk bounds for the simulator, in milliseconds.
const (
	simulateFloor   = 25
	simulateCeil    = 500
	simulateSeedMax = 150
)

// DefaultSimulateInterval paces the simulator at roughly ping cadence.
const DefaultSimulateInterval = 100 * time.Millisecond

// Simulate produces a stream of fake latency samples for demos and
// testing without touching the network. Each value moves up to 20% away
// from the previous one, resampled until it lands inside [25, 500] ms.
func Simulate(ctx context.Context, interval time.Duration) *Stream {
	if interval <= 0 {
		interval = DefaultSimulateInterval
	}

	events := make(chan Sample, eventBuffer)
	s := &Stream{Events: events, done: make(chan struct{})}

	go func() {
		defer close(events)
		defer close(s.done)

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		last := simulateFloor + rng.Intn(simulateSeedMax-simulateFloor+1)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			curr := walk(rng, last)
			last = curr

			select {
			case events <- Sample(curr):
			case <-ctx.Done():
				return
			}
		}
	}()

	return s
}

// walk takes one bounded random step from last.
func walk(rng *rand.Rand, last int) int {
	step := last / 5 // up to 20% either way
	if step < 1 {
		step = 1
	}
	for {
		curr := last - step + rng.Intn(2*step+1)
		if curr > simulateFloor && curr < simulateCeil {
			return curr
		}
	}
}
