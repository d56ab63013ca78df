package populate

import (
	"github.com/df-mc/terragen/noise"
	"github.com/df-mc/terragen/poisson"
	"github.com/df-mc/terragen/rand"
	"github.com/df-mc/terragen/seed"
)

// Surface provides the columns that features are placed on.
type Surface interface {
	Column(x, z int) Column
}

// ScatterConfig configures a Scatter.
type ScatterConfig struct {
	// Seed seeds the per-point decisions of the populators.
	Seed int32
	// Density scales the spacing of the placer. Nil means a density of 1 everywhere.
	Density noise.Module
	// Edge, if set, is evaluated before the column is resolved. Points where it falls below
	// EdgeThreshold are dropped, keeping features away from biome borders.
	Edge          noise.Module
	EdgeThreshold float64
}

// Scatter places features on a Surface at the points of a poisson.Placer. Every point runs the
// populators of its biome in order and receives the feature of the first one that accepts it.
type Scatter struct {
	surface Surface
	placer  *poisson.Placer
	conf    ScatterConfig
}

// NewScatter creates a Scatter.
func NewScatter(surface Surface, placer *poisson.Placer, conf ScatterConfig) *Scatter {
	return &Scatter{surface: surface, placer: placer, conf: conf}
}

// Populate calls emit for every feature placed in the tile (tileX, tileZ). The features of a tile
// do not depend on the tiles populated before it.
func (s *Scatter) Populate(tileX, tileZ int32, emit func(Feature)) {
	r := rand.NewRandom(0)
	s.placer.Visit(tileX, tileZ, s.conf.Density, func(x, z int) {
		if s.conf.Edge != nil && s.conf.Edge.Value(float64(x), float64(z)) < s.conf.EdgeThreshold {
			return
		}
		col := s.surface.Column(x, z)
		if col.Biome == nil {
			return
		}
		r.SetSeed(int64(seed.Hash2D(s.conf.Seed, int32(x), int32(z))))
		for _, p := range col.Biome.Populators() {
			if f, ok := p.Populate(col, r); ok {
				emit(f)
				return
			}
		}
	})
}
