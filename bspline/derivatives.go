package bspline

import (
	"github.com/serejina/gonurbs/utils"
)

// BasisFunctionDers computes the nonzero basis functions and their
// derivatives up to the requested order (algorithm A2.3). The result has
// min(degree,order)+1 rows and degree+1 columns; row k holds the k-th
// derivatives and row 0 the basis function values. Derivatives of order
// above the degree are identically zero and are represented by the table
// truncation, not by zero-filled rows. The returned table is freshly
// allocated on every call.
func BasisFunctionDers(degree int, kv KnotVector, span int, u float64, order int) (ders utils.Matrix) {
	var (
		du    = min(degree, order)
		left  = make([]float64, degree+1)
		right = make([]float64, degree+1)
		ndu   = utils.NewMatrix(degree+1, degree+1)
	)
	ndu.Set(0, 0, 1)
	for j := 1; j <= degree; j++ {
		left[j] = u - kv[span+1-j]
		right[j] = kv[span+j] - u
		var saved float64
		for r := 0; r < j; r++ {
			// Lower triangle holds the knot differences
			ndu.Set(j, r, right[r+1]+left[j-r])
			temp := ndu.At(r, j-1) / ndu.At(j, r)
			// Upper triangle holds the basis function values
			ndu.Set(r, j, saved+right[r+1]*temp)
			saved = left[j-r] * temp
		}
		ndu.Set(j, j, saved)
	}

	// Row 0 is the basis functions themselves
	ders = utils.NewMatrix(du+1, degree+1)
	for j := 0; j <= degree; j++ {
		ders.Set(0, j, ndu.At(j, degree))
	}

	// Two alternating rows of derivative coefficients, switched each order
	a := utils.NewMatrix(2, degree+1)
	for r := 0; r <= degree; r++ {
		s1, s2 := 0, 1
		a.Set(0, 0, 1)
		for k := 1; k <= du; k++ {
			var (
				d  float64
				rk = r - k
				pk = degree - k
			)
			if r >= k {
				a.Set(s2, 0, a.At(s1, 0)/ndu.At(pk+1, rk))
				d = a.At(s2, 0) * ndu.At(rk, pk)
			}
			var j1, j2 int
			if rk >= -1 {
				j1 = 1
			} else {
				j1 = -rk
			}
			if r-1 <= pk {
				j2 = k - 1
			} else {
				j2 = degree - r
			}
			for j := j1; j <= j2; j++ {
				a.Set(s2, j, (a.At(s1, j)-a.At(s1, j-1))/ndu.At(pk+1, rk+j))
				d += a.At(s2, j) * ndu.At(rk+j, pk)
			}
			if r <= pk {
				a.Set(s2, k, -a.At(s1, k-1)/ndu.At(pk+1, r))
				d += a.At(s2, k) * ndu.At(r, pk)
			}
			ders.Set(k, r, d)
			s1, s2 = s2, s1
		}
	}

	// The recursion yields derivatives up to a constant factor; rescale row
	// k by degree*(degree-1)*...*(degree-k+1)
	fac := float64(degree)
	for k := 1; k <= du; k++ {
		for j := 0; j <= degree; j++ {
			ders.Set(k, j, ders.At(k, j)*fac)
		}
		fac *= float64(degree - k)
	}
	return
}
