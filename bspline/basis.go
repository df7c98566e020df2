package bspline

// BasisFunctions computes the degree+1 nonzero basis functions at the given
// span via the triangular Cox-de Boor recursion (algorithm A2.2). Every
// update is a convex combination of nonnegative terms, so the recursion is
// numerically stable; the returned values are nonnegative and sum to 1.
// The span index must come from FindSpan for the same degree, kv and u.
func BasisFunctions(degree int, kv KnotVector, span int, u float64) (bfuncs []float64) {
	var (
		left  = make([]float64, degree+1)
		right = make([]float64, degree+1)
	)
	bfuncs = make([]float64, degree+1)
	// N[0] = 1.0 by definition
	bfuncs[0] = 1
	for j := 1; j <= degree; j++ {
		left[j] = u - kv[span+1-j]
		right[j] = kv[span+j] - u
		var saved float64
		for r := 0; r < j; r++ {
			temp := bfuncs[r] / (right[r+1] + left[j-r])
			bfuncs[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		bfuncs[j] = saved
	}
	return
}
