// Package noise defines Module, the continuous 2D field every generator component consumes, along
// with adapters over the simplex and perlin libraries and a handful of composition helpers.
//
// A Module must be safe for concurrent use: it is evaluated from many goroutines at once and must
// return the same value for the same coordinate every time.
package noise

// Module is a stateless numeric function over 2D coordinates.
type Module interface {
	Value(x, y float64) float64
}

// Func adapts an ordinary function to a Module.
type Func func(x, y float64) float64

// Value ...
func (f Func) Value(x, y float64) float64 {
	return f(x, y)
}

// Constant is a Module returning the same value everywhere.
type Constant float64

// Value ...
func (c Constant) Value(float64, float64) float64 {
	return float64(c)
}
