package seed

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// goldenAngle spreads consecutive table entries around the circle without a visible pattern.
const goldenAngle = math.Pi * (3 - 2.23606797749979)

// jitter holds 256 unit vectors. It is filled once at package initialisation and never written
// again, so it is shared between goroutines without synchronisation.
var jitter = func() (t [256]mgl64.Vec2) {
	for i := range t {
		sin, cos := math.Sincos(float64(i) * goldenAngle)
		t[i] = mgl64.Vec2{cos, sin}
	}
	return t
}()

// Jitter returns the unit vector selected by the low 8 bits of h.
func Jitter(h int32) mgl64.Vec2 {
	return jitter[h&255]
}
