package noise

import (
	"github.com/aquilax/go-perlin"

	"github.com/df-mc/terragen/internal/mathutil"
)

// Perlin is classic perlin noise remapped from roughly [-1, 1] to [0, 1].
type Perlin struct {
	p         *perlin.Perlin
	frequency float64
}

// NewPerlin creates Perlin noise. alpha is the weight of each successive octave (usually 2), beta
// the harmonic scaling between octaves (usually 2) and n the octave count.
func NewPerlin(seed int64, frequency, alpha, beta float64, n int32) Perlin {
	return Perlin{p: perlin.NewPerlin(alpha, beta, n, seed), frequency: frequency}
}

// Value ...
func (p Perlin) Value(x, y float64) float64 {
	return mathutil.Clamp01(p.p.Noise2D(x*p.frequency, y*p.frequency)*0.5 + 0.5)
}
