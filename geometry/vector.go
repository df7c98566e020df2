// Package geometry provides the 3-vector operations and parameter-domain
// checks used when evaluating points, tangents and normals on NURBS curves
// and surfaces.
package geometry

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrInvalidArgument reports an empty or absent required input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDegenerateVector reports normalization of a zero-magnitude vector.
	ErrDegenerateVector = errors.New("degenerate vector")
	// ErrDomain reports a parameter value outside the valid domain.
	ErrDomain = errors.New("parameter out of domain")
)

// Cross returns the cross product of two 3-vectors. Inputs are assumed to
// have length 3; only emptiness is checked.
func Cross(vect1, vect2 []float64) (vect3 []float64, err error) {
	if len(vect1) == 0 || len(vect2) == 0 {
		err = fmt.Errorf("%w: input vectors are empty", ErrInvalidArgument)
		return
	}
	vect3 = []float64{
		vect1[1]*vect2[2] - vect1[2]*vect2[1],
		vect1[2]*vect2[0] - vect1[0]*vect2[2],
		vect1[0]*vect2[1] - vect1[1]*vect2[0],
	}
	return
}

// Normalize divides each component of a 3-vector by its Euclidean
// magnitude and returns the result as a fresh vector. A zero vector has no
// direction and fails with ErrDegenerateVector.
func Normalize(vect []float64) (out []float64, err error) {
	if len(vect) == 0 {
		err = fmt.Errorf("%w: input vector is empty", ErrInvalidArgument)
		return
	}
	magnitude := floats.Norm(vect, 2)
	if magnitude == 0 {
		err = fmt.Errorf("%w: magnitude is zero", ErrDegenerateVector)
		return
	}
	out = make([]float64, len(vect))
	for i, val := range vect {
		out[i] = val / magnitude
	}
	return
}

// CheckUV verifies that both surface parameters lie within [0,1].
func CheckUV(u, v float64) error {
	if u < 0. || u > 1. {
		return fmt.Errorf("%w: u = %v should be between 0 and 1", ErrDomain, u)
	}
	if v < 0. || v > 1. {
		return fmt.Errorf("%w: v = %v should be between 0 and 1", ErrDomain, v)
	}
	return nil
}

// CheckUVForNormal verifies the parameters as CheckUV does, and further
// that the finite-difference offset (u+delta, v+delta) used for surface
// normal approximation stays inside the domain. Near an edge the offset
// point leaves the surface and no normal can be computed there.
func CheckUVForNormal(u, v, delta float64) error {
	if err := CheckUV(u, v); err != nil {
		return err
	}
	if u+delta > 1. || u+delta < 0. || v+delta > 1. || v+delta < 0. {
		return fmt.Errorf("%w: cannot calculate normal on an edge", ErrDomain)
	}
	return nil
}
