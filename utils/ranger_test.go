package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFRange(t *testing.T) {
	var vals []float64
	for v := range FRange(0, 1, 0.1) {
		vals = append(vals, v)
	}
	// Binary float accumulation of 0.1 would overshoot 1.0 and drop the
	// endpoint; the decimal accumulation lands on it exactly
	require.Len(t, vals, 11)
	assert.Equal(t, 0., vals[0])
	assert.Equal(t, 0.5, vals[5])
	assert.Equal(t, 1., vals[10])

	vals = vals[:0]
	for v := range FRange(0, 1, 0.3) {
		vals = append(vals, v)
	}
	assert.Equal(t, []float64{0, 0.3, 0.6, 0.9}, vals)

	// Restartable: a second sweep of the same sequence is identical
	seq := FRange(-0.5, 0.5, 0.25)
	var first, second []float64
	for v := range seq {
		first = append(first, v)
	}
	for v := range seq {
		second = append(second, v)
	}
	assert.Equal(t, first, second)
	assert.Equal(t, []float64{-0.5, -0.25, 0, 0.25, 0.5}, first)

	// Early break stops the sweep
	var count int
	for range FRange(0, 1, 0.1) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)

	// Degenerate steps produce nothing
	for range FRange(0, 1, 0) {
		t.Fatal("zero step must not yield")
	}
	for range FRange(0, 1, -0.1) {
		t.Fatal("negative step must not yield")
	}
}
