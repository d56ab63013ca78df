// Package mathutil holds the small numeric helpers shared by the generator packages.
package mathutil

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp limits v to the closed range [lo, hi].
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]. NaN is mapped to 0.
func Clamp01[T constraints.Float](v T) T {
	if v != v {
		return 0
	}
	return Clamp(v, 0, 1)
}

// Lerp interpolates linearly between a and b.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + t*(b-a)
}

// Smoothstep is the cubic ease 3t^2 - 2t^3 over t in [0, 1].
func Smoothstep[T constraints.Float](t T) T {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// Round rounds half away from zero and returns an int.
func Round(v float64) int {
	return int(math.Round(v))
}

// FloorDiv divides a by b (b > 0), rounding towards negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if r := a % b; r < 0 {
		q--
	}
	return q
}
