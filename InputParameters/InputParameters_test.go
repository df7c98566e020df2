package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serejina/gonurbs/bspline"
)

func TestEvalParameters(t *testing.T) {
	var (
		ep   EvalParameters
		data = []byte(`
Title: "Cubic sweep"
Degree: 3
NumCtrlPts: 6
DerivOrder: 1
SampleStep: 0.1
`)
	)
	require.NoError(t, ep.Parse(data))
	assert.Equal(t, "Cubic sweep", ep.Title)
	assert.Equal(t, 3, ep.Degree)
	assert.Equal(t, 6, ep.NumCtrlPts)
	require.NoError(t, ep.Validate())

	kv, err := ep.Knots()
	require.NoError(t, err)
	assert.Equal(t, bspline.KnotVector{0, 0, 0, 0, 1. / 3., 2. / 3., 1, 1, 1, 1}, kv)
}

func TestEvalParametersExplicitKnots(t *testing.T) {
	ep := EvalParameters{
		Degree:     2,
		NumCtrlPts: 4,
		SampleStep: 0.1,
		KnotVector: []float64{0, 0, 0, 1, 2, 2, 2},
	}
	require.NoError(t, ep.Validate())
	kv, err := ep.Knots()
	require.NoError(t, err)
	// Supplied vectors are normalized onto [0,1]
	assert.Equal(t, bspline.KnotVector{0, 0, 0, 0.5, 1, 1, 1}, kv)
}

func TestEvalParametersValidate(t *testing.T) {
	ep := EvalParameters{Degree: 0, NumCtrlPts: 4, SampleStep: 0.1}
	assert.ErrorIs(t, ep.Validate(), bspline.ErrInvalidArgument)

	ep = EvalParameters{Degree: 3, NumCtrlPts: 3, SampleStep: 0.1}
	assert.ErrorIs(t, ep.Validate(), bspline.ErrInvalidArgument)

	ep = EvalParameters{Degree: 2, NumCtrlPts: 4, SampleStep: 0}
	assert.ErrorIs(t, ep.Validate(), bspline.ErrInvalidArgument)

	ep = EvalParameters{Degree: 2, NumCtrlPts: 4, SampleStep: 0.1,
		KnotVector: []float64{0, 0, 0, 1, 1, 1}}
	assert.ErrorIs(t, ep.Validate(), bspline.ErrInvalidArgument)

	ep = EvalParameters{Degree: 2, NumCtrlPts: 4, SampleStep: 0.1,
		KnotVector: []float64{0, 0, 0, 0.7, 0.5, 1, 1}}
	assert.ErrorIs(t, ep.Validate(), bspline.ErrInvalidArgument)
}
