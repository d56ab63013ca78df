package poisson

import (
	"errors"
	"fmt"
)

// ErrRegionSize is returned when the region size is not a positive multiple of the tile size.
var ErrRegionSize = errors.New("poisson: region size must be a positive multiple of the tile size")

const (
	minRadius = 1
	maxRadius = 30
)

// Config holds the parameters of a Placer. The zero value is usable; defaults are applied by
// withDefaults.
type Config struct {
	// Seed is the world seed. Region seeds are derived from it.
	Seed int64
	// Radius is the minimum spacing between points at density 1. It is clamped to [1, 30] and to
	// less than half the region size.
	Radius int
	// Samples is the number of candidates thrown around every accepted point. Defaults to 30.
	Samples int
	// TileSize is the width of the window reported per Visit. Defaults to 16.
	TileSize int
	// RegionSize is the width of the block of tiles sharing one seed. Defaults to 32.
	RegionSize int
	// Metrics, if set, receives per-region counters.
	Metrics *Metrics
}

func (c Config) withDefaults() Config {
	if c.Samples <= 0 {
		c.Samples = 30
	}
	if c.TileSize <= 0 {
		c.TileSize = 16
	}
	if c.RegionSize == 0 {
		c.RegionSize = 32
	}
	return c
}

func (c Config) validate() error {
	if c.RegionSize < c.TileSize || c.RegionSize%c.TileSize != 0 {
		return fmt.Errorf("%w: region %d, tile %d", ErrRegionSize, c.RegionSize, c.TileSize)
	}
	if c.RegionSize < 4 {
		return fmt.Errorf("%w: region %d is too small", ErrRegionSize, c.RegionSize)
	}
	return nil
}

// clampRadius limits r to [1, 30] and to less than half the region, so the working area of a region
// always has room for points.
func (c Config) clampRadius() int {
	return max(minRadius, min(c.Radius, maxRadius, c.RegionSize/2-1))
}
