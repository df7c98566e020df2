// Package bspline implements the evaluation-time primitives of B-spline and
// NURBS basis functions: knot-vector construction and normalization, knot
// span location and the Cox-de Boor recursion for basis-function values and
// derivatives (The NURBS Book, Piegl & Tiller, algorithms A2.1-A2.3).
package bspline

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a zero or degenerate required input.
var ErrInvalidArgument = errors.New("invalid argument")

// KnotVector is a non-decreasing sequence of parameter values. A clamped
// vector of degree p repeats its first and last value p+1 times. Knot
// vectors are constructed once and treated as immutable afterwards.
type KnotVector []float64

// Normalize rescales the vector affinely onto [0,1] and returns a fresh
// slice. An empty vector is returned unchanged. The caller must supply a
// non-degenerate knot range: when the first and last knots coincide the
// rescale divides by zero and the result is unusable.
func (kv KnotVector) Normalize() (out KnotVector) {
	if len(kv) == 0 {
		return kv
	}
	var (
		first = kv[0]
		last  = kv[len(kv)-1]
	)
	out = make(KnotVector, len(kv))
	for i, k := range kv {
		out[i] = (k - first) / (last - first)
	}
	return
}

// Autogen builds a clamped, uniform knot vector on [0,1] for the given
// degree and control point count, of length degree+numCtrlPts+1: degree+1
// zeros, uniformly spaced interior knots, degree+1 ones. When the segment
// count is not positive there are no interior knots (the Bezier-like case)
// and the interior generation is skipped entirely.
func Autogen(degree, numCtrlPts int) (kv KnotVector, err error) {
	if degree <= 0 || numCtrlPts <= 0 {
		err = fmt.Errorf("%w: degree and numCtrlPts must be nonzero", ErrInvalidArgument)
		return
	}
	var (
		knotMin = 0.
		knotMax = 1.
		// m+1 knots with m = degree + numCtrlPts
		m = degree + numCtrlPts + 1
	)
	kv = make(KnotVector, 0, m)
	for i := 0; i < degree+1; i++ {
		kv = append(kv, knotMin)
	}
	numSegments := m - 2*(degree+1) + 1
	if numSegments > 0 {
		spacing := (knotMax - knotMin) / float64(numSegments)
		midknot := knotMin + spacing
		for i := degree + 1; i < m-(degree+1); i++ {
			kv = append(kv, midknot)
			midknot += spacing
		}
	}
	for len(kv) < m {
		kv = append(kv, knotMax)
	}
	return
}
