package noise

import (
	"github.com/ojrac/opensimplex-go"
)

// Simplex is fractal open simplex noise normalised to [0, 1].
type Simplex struct {
	n           opensimplex.Noise
	frequency   float64
	octaves     int
	persistence float64
	lacunarity  float64
}

// NewSimplex creates Simplex noise with the given base frequency and octave count. Octaves below 1
// are treated as 1.
func NewSimplex(seed int64, frequency float64, octaves int) Simplex {
	return Simplex{
		n:           opensimplex.NewNormalized(seed),
		frequency:   frequency,
		octaves:     max(octaves, 1),
		persistence: 0.5,
		lacunarity:  2,
	}
}

// Value ...
func (s Simplex) Value(x, y float64) float64 {
	var total, norm float64
	amplitude, frequency := 1.0, s.frequency
	for i := 0; i < s.octaves; i++ {
		total += s.n.Eval2(x*frequency, y*frequency) * amplitude
		norm += amplitude
		amplitude *= s.persistence
		frequency *= s.lacunarity
	}
	return total / norm
}
