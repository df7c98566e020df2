package utils

import (
	"iter"

	"github.com/shopspring/decimal"
)

// FRange yields start, start+step, ... while the value stays <= stop.
// The accumulation runs in exact decimal arithmetic so that a decimal step
// like 0.1 lands on the endpoints instead of drifting the way repeated
// binary float addition does. The sequence is finite, forward-only and
// restartable; a non-positive step yields nothing.
func FRange(start, stop, step float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if step <= 0 {
			return
		}
		var (
			x = decimal.NewFromFloat(start)
			y = decimal.NewFromFloat(stop)
			d = decimal.NewFromFloat(step)
		)
		for x.Cmp(y) <= 0 {
			val, _ := x.Float64()
			if !yield(val) {
				return
			}
			x = x.Add(d)
		}
	}
}
