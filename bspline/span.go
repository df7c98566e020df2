package bspline

// FindSpan locates the knot span containing u by binary search over a
// clamped knot vector (algorithm A2.1): the returned index i satisfies
// kv[i] <= u < kv[i+1]. A parameter sitting on the clamped upper end knot
// returns n, the last valid basis function index, directly - bisecting into
// the repeated end knots would never terminate. No bounds checking is done
// here; u must lie within [kv[degree], kv[n+1]], enforced upstream.
func FindSpan(degree int, kv KnotVector, u float64) int {
	var (
		m = len(kv) - 1
		n = m - degree - 1
	)
	if kv[n+1] == u {
		return n
	}
	low, high := degree, n+1
	mid := (low + high) / 2
	for u < kv[mid] || u >= kv[mid+1] {
		if u < kv[mid] {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}
	return mid
}
