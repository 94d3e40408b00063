// Package sample turns raw ping output into typed latency samples. It owns
// the per-OS line parsers, the process stream that feeds them, and the
// random-walk simulator used for demos.
package sample

// Sample is one latency measurement in whole milliseconds, or the Timeout
// sentinel. Samples are immutable once produced.
type Sample int

// Timeout marks a probe that got no reply.
const Timeout Sample = -1

// IsTimeout reports whether the sample is the timeout sentinel.
func (s Sample) IsTimeout() bool {
	return s == Timeout
}

// Ms returns the latency in milliseconds. Only meaningful for non-timeout
// samples.
func (s Sample) Ms() int {
	return int(s)
}
