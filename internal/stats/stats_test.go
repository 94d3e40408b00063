package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pingplot/pingplot/internal/sample"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"single element any percentile", []float64{1}, 50, 1},
		{"median of three", []float64{1, 3, 5}, 50, 3},
		{"p75 interpolates between neighbors", []float64{1, 3, 5}, 75, 4},
		{"p100 is the maximum", []float64{1, 3, 5}, 100, 5},
		{"p0 is the minimum", []float64{1, 3, 5}, 0, 1},
		{"two elements median", []float64{10, 20}, 50, 15},
		{"empty series", nil, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentile(tt.sorted, tt.p))
		})
	}
}

func TestLoss(t *testing.T) {
	samples := []sample.Sample{
		10, sample.Timeout, 20, 30, 40, sample.Timeout, 50, 60, 70, 80,
	}
	assert.Equal(t, 20, Loss(samples), "2 timeouts among 10 samples is 20%")

	assert.Equal(t, 0, Loss(nil))
	assert.Equal(t, 100, Loss([]sample.Sample{sample.Timeout}))
	assert.Equal(t, 33, Loss([]sample.Sample{sample.Timeout, 1, 2}), "loss rounds to the nearest percent")
}

func TestCompute(t *testing.T) {
	samples := []sample.Sample{30, sample.Timeout, 10, 20}

	snap, ok := Compute(samples)
	require.True(t, ok)

	assert.Equal(t, 4, snap.Count)
	assert.Equal(t, 30, snap.Cur, "cur is the newest successful probe")
	assert.Equal(t, 10, snap.Min)
	assert.Equal(t, 30, snap.Max)
	assert.InDelta(t, 20.0, snap.Avg, 1e-9, "timeouts are excluded from the average")
	assert.Equal(t, 25, snap.LossPct)
	assert.InDelta(t, 20.0, snap.P50, 1e-9)
}

func TestCompute_SingleSample(t *testing.T) {
	snap, ok := Compute([]sample.Sample{42})
	require.True(t, ok)

	assert.Equal(t, 42, snap.Cur)
	assert.Equal(t, 42, snap.Min)
	assert.Equal(t, 42, snap.Max)
	assert.InDelta(t, 42.0, snap.P5, 1e-9)
	assert.InDelta(t, 42.0, snap.P95, 1e-9)
}

func TestCompute_NoSuccessfulProbes(t *testing.T) {
	_, ok := Compute(nil)
	assert.False(t, ok, "an empty window produces no statistics")

	_, ok = Compute([]sample.Sample{sample.Timeout, sample.Timeout})
	assert.False(t, ok, "a window of only timeouts produces no statistics")
}

func TestLatencies(t *testing.T) {
	got := Latencies([]sample.Sample{5, sample.Timeout, 7})
	assert.Equal(t, []int{5, 7}, got)
}
