// Package history keeps the bounded sample history behind the chart: a
// fixed-capacity ring with the newest sample at index 0 and automatic
// eviction of the oldest once full.
package history

import "github.com/pingplot/pingplot/internal/sample"

// DefaultCapacity bounds the history to more samples than any reasonable
// terminal is wide.
const DefaultCapacity = 400

// Ring is a newest-first ring buffer of samples. It has a single owner
// (the run loop) and is not safe for concurrent use.
type Ring struct {
	data []sample.Sample
	head int // index of the newest sample
	size int
}

// NewRing creates an empty ring with the given capacity.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{data: make([]sample.Sample, capacity)}
}

// Capacity returns the fixed capacity of the ring.
func (r *Ring) Capacity() int {
	return len(r.data)
}

// Len returns the number of stored samples.
func (r *Ring) Len() int {
	return r.size
}

// Push inserts s at the front, evicting the oldest sample if full.
func (r *Ring) Push(s sample.Sample) {
	r.head = (r.head - 1 + len(r.data)) % len(r.data)
	r.data[r.head] = s
	if r.size < len(r.data) {
		r.size++
	}
}

// At returns the i-th newest sample; At(0) is the most recent push.
func (r *Ring) At(i int) sample.Sample {
	return r.data[(r.head+i)%len(r.data)]
}

// Window copies out the n newest samples, newest first. It returns fewer
// when the ring holds fewer.
func (r *Ring) Window(n int) []sample.Sample {
	if n > r.size {
		n = r.size
	}
	if n <= 0 {
		return nil
	}
	out := make([]sample.Sample, n)
	for i := 0; i < n; i++ {
		out[i] = r.At(i)
	}
	return out
}

// All copies out every stored sample, newest first.
func (r *Ring) All() []sample.Sample {
	return r.Window(r.size)
}
