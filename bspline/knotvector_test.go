package bspline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	// Empty in, empty out, no error
	assert.Empty(t, KnotVector{}.Normalize())

	kv := KnotVector{5, 7, 9}.Normalize()
	assert.Equal(t, KnotVector{0, 0.5, 1}, kv)

	// First and last map to the domain ends exactly
	kv = KnotVector{-2, -1, 0, 3, 10}.Normalize()
	assert.Equal(t, 0., kv[0])
	assert.Equal(t, 1., kv[len(kv)-1])

	// Already normalized vectors are unchanged
	kv = KnotVector{0, 0, 0, 0.5, 1, 1, 1}
	assert.Equal(t, kv, kv.Normalize())
}

func TestAutogen(t *testing.T) {
	_, err := Autogen(0, 4)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Autogen(3, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	kv, err := Autogen(2, 4)
	require.NoError(t, err)
	assert.Equal(t, KnotVector{0, 0, 0, 0.5, 1, 1, 1}, kv)

	kv, err = Autogen(3, 6)
	require.NoError(t, err)
	assert.Equal(t, KnotVector{0, 0, 0, 0, 1. / 3., 2. / 3., 1, 1, 1, 1}, kv)

	// Bezier-like case: a single segment, no interior knots
	kv, err = Autogen(3, 4)
	require.NoError(t, err)
	assert.Equal(t, KnotVector{0, 0, 0, 0, 1, 1, 1, 1}, kv)

	// Length and clamped-end multiplicity hold across shapes
	for degree := 1; degree < 6; degree++ {
		for numCtrlPts := degree + 1; numCtrlPts < degree+6; numCtrlPts++ {
			kv, err = Autogen(degree, numCtrlPts)
			require.NoError(t, err)
			require.Len(t, kv, degree+numCtrlPts+1)
			for i := 0; i < degree+1; i++ {
				assert.Equal(t, 0., kv[i])
				assert.Equal(t, 1., kv[len(kv)-1-i])
			}
			for i := 1; i < len(kv); i++ {
				assert.True(t, kv[i] >= kv[i-1])
			}
		}
	}
}
