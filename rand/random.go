// Package rand implements the seedable xorshift128 generator used for per-tile randomness. The
// generator is small enough to be reset per tile visit and produces the same stream for the same
// seed on every platform.
package rand

const (
	x0 = 123456789
	y0 = 362436069
	z0 = 521288629
	w0 = 88675123
)

// Random is an xorshift128 generator. It is not safe for concurrent use.
type Random struct {
	seed       int64
	x, y, z, w int32
}

// NewRandom returns a Random seeded with seed.
func NewRandom(seed int64) *Random {
	r := &Random{}
	r.SetSeed(seed)
	return r
}

// SetSeed resets the generator to the start of the stream for seed.
func (r *Random) SetSeed(seed int64) {
	s := int32(seed) ^ int32(seed>>32)
	r.seed = seed
	r.x = x0 ^ s
	r.y = y0 ^ (s<<17 | int32(uint32(s)>>15))
	r.z = z0 ^ (s<<31 | int32(uint32(s)>>1))
	r.w = w0 ^ (s<<18 | int32(uint32(s)>>14))
}

// Seed returns the seed last passed to SetSeed.
func (r *Random) Seed() int64 {
	return r.seed
}

func (r *Random) next() int32 {
	t := r.x ^ (r.x << 11)
	r.x, r.y, r.z = r.y, r.z, r.w
	r.w = (r.w ^ int32(uint32(r.w)>>19)) ^ (t ^ int32(uint32(t)>>8))
	return r.w
}

// Int31 returns a non-negative pseudo-random int32.
func (r *Random) Int31() int32 {
	return r.next() & 0x7fffffff
}

// Int31n returns a pseudo-random int32 in [0, n). It panics if n <= 0.
func (r *Random) Int31n(n int32) int32 {
	if n <= 0 {
		panic("rand: invalid argument to Int31n")
	}
	return r.Int31() % n
}

// Range returns a pseudo-random int32 in the closed range [start, end].
func (r *Random) Range(start, end int32) int32 {
	return start + r.Int31n(end+1-start)
}

// Float64 returns a pseudo-random float64 in [0, 1).
func (r *Random) Float64() float64 {
	return float64(r.Int31()) / (1 << 31)
}
