package noise

import (
	"github.com/df-mc/terragen/internal/mathutil"
)

// Scale multiplies the input coordinates of m by f before sampling.
func Scale(m Module, f float64) Module {
	return Func(func(x, y float64) float64 {
		return m.Value(x*f, y*f)
	})
}

// Bias adds b to every value of m.
func Bias(m Module, b float64) Module {
	return Func(func(x, y float64) float64 {
		return m.Value(x, y) + b
	})
}

// Clamp limits the output of m to [lo, hi].
func Clamp(m Module, lo, hi float64) Module {
	return Func(func(x, y float64) float64 {
		return mathutil.Clamp(m.Value(x, y), lo, hi)
	})
}

// Map linearly remaps the [0, 1] output of m onto [lo, hi].
func Map(m Module, lo, hi float64) Module {
	return Func(func(x, y float64) float64 {
		return mathutil.Lerp(lo, hi, m.Value(x, y))
	})
}

// Warp displaces the coordinates passed to m by the [0, 1] outputs of dx and dy, centred on zero
// and multiplied by strength.
func Warp(m, dx, dy Module, strength float64) Module {
	return Func(func(x, y float64) float64 {
		ox := (dx.Value(x, y)*2 - 1) * strength
		oy := (dy.Value(x, y)*2 - 1) * strength
		return m.Value(x+ox, y+oy)
	})
}
