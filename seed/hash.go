package seed

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

const (
	primeX = 1619
	primeY = 31337
)

// Hash2D hashes an integer lattice coordinate under seed. All arithmetic wraps at 32 bits:
//
//	h = seed ^ 1619*x ^ 31337*y
//	h = h*h*h*60493
//	h = (h >> 13) ^ h
//
// Every piece of generated output is a function of this definition, so it must never change.
func Hash2D(seed, x, y int32) int32 {
	h := seed ^ primeX*x ^ primeY*y
	h = h * h * h * 60493
	return (h >> 13) ^ h
}

// Unit maps a hash to a float64 in [0, 1).
func Unit(h int32) float64 {
	return float64(uint32(h)) / (1 << 32)
}

// RegionSeed derives the RNG seed of a placement region from the world seed and the region
// coordinates. Every tile inside a region shares this seed.
func RegionSeed(seed int64, rx, rz int32) int64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(seed))
	binary.LittleEndian.PutUint32(buf[8:], uint32(rx))
	binary.LittleEndian.PutUint32(buf[12:], uint32(rz))
	return int64(xxhash.Sum64(buf[:]))
}
