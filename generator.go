// Package terragen composes the climate sampler, the blend combinators, the biome catalogue and the
// decoration scatter into a deterministic terrain generator. Every query is a pure function of the
// root seed and the coordinate, so columns and tiles may be generated in any order and from any
// number of goroutines.
package terragen

import (
	"fmt"

	"github.com/df-mc/terragen/biome"
	"github.com/df-mc/terragen/blend"
	"github.com/df-mc/terragen/cell"
	"github.com/df-mc/terragen/climate"
	"github.com/df-mc/terragen/internal/mathutil"
	"github.com/df-mc/terragen/noise"
	"github.com/df-mc/terragen/poisson"
	"github.com/df-mc/terragen/populate"
	"github.com/df-mc/terragen/seed"
)

// TileSize is the width of a decoration tile in blocks.
const TileSize = 16

// Generator produces terrain height, biomes, climate and decoration for world columns. A Generator
// is immutable after New and safe for concurrent use.
type Generator struct {
	conf Config

	climate *climate.Sampler
	terrain cell.Populator
	placer  *poisson.Placer
	scatter *populate.Scatter
}

// New creates a Generator using fields of conf. Components draw their seeds from a seed.Seed rooted
// at conf.Seed in this order:
//
//  1. continent noise, mountain noise and the detail height noise, one Next each;
//  2. the climate sampler from a Derive child: temperature, moisture, their detail fields, the two
//     warp fields and finally the cell lattice seed;
//  3. the decoration scatter from Named("decoration"), which leaves the counter untouched: its root
//     seeds the placer, followed by the density field and the populator seed.
//
// Changing this order changes every world generated from a seed.
func New(conf Config) (*Generator, error) {
	conf = conf.withDefaults()
	if err := conf.validate(); err != nil {
		return nil, err
	}
	s := seed.New(conf.Seed)

	continent := noise.NewSimplex(int64(s.Next()), 1/conf.ContinentScale, 4)
	mountains := noise.NewPerlin(int64(s.Next()), 1/conf.MountainScale, 2, 2, 4)
	detail := noise.NewSimplex(int64(s.Next()), 1.0/64, 3)

	sampler, err := newClimate(conf, s.Derive())
	if err != nil {
		return nil, fmt.Errorf("create climate sampler: %w", err)
	}
	terrain, err := newTerrain(conf, sampler, continent, mountains, detail)
	if err != nil {
		return nil, fmt.Errorf("create terrain: %w", err)
	}

	g := &Generator{conf: conf, climate: sampler, terrain: terrain}

	d := s.Named("decoration")
	g.placer, err = poisson.New(poisson.Config{
		Seed:       int64(d.Root()),
		Radius:     conf.Radius,
		Samples:    conf.Samples,
		TileSize:   TileSize,
		RegionSize: conf.RegionSize,
		Metrics:    conf.Metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("create placer: %w", err)
	}
	if g.placer.Radius() != conf.Radius {
		conf.Log.Warn("Decoration radius clamped.", "radius", conf.Radius, "clamped", g.placer.Radius())
	}
	density := noise.Map(noise.NewSimplex(int64(d.Next()), 1.0/96, 2), 0.5*conf.DensityScale, 1.5*conf.DensityScale)
	g.scatter = populate.NewScatter(g, g.placer, populate.ScatterConfig{
		Seed:          d.Next(),
		Density:       density,
		Edge:          sampler.Edge(),
		EdgeThreshold: conf.EdgeThreshold,
	})

	conf.Log.Info("Terrain generator created.", "seed", conf.Seed, "climate", sampler.String(), "radius", g.placer.Radius(), "region", conf.RegionSize)
	return g, nil
}

// newClimate creates the climate sampler, drawing its seeds from s.
func newClimate(conf Config, s *seed.Seed) (*climate.Sampler, error) {
	baseFrequency := 1 / (conf.CellScale * 4)
	temperature := noise.NewSimplex(int64(s.Next()), baseFrequency, 2)
	moisture := noise.NewSimplex(int64(s.Next()), baseFrequency, 2)
	temperatureDetail := noise.NewSimplex(int64(s.Next()), 1.0/48, 2)
	moistureDetail := noise.NewSimplex(int64(s.Next()), 1.0/48, 2)
	warpX := noise.NewSimplex(int64(s.Next()), 1/conf.WarpScale, 2)
	warpY := noise.NewSimplex(int64(s.Next()), 1/conf.WarpScale, 2)

	return climate.New(climate.Config{
		Seed:              s.Next(),
		Scale:             conf.CellScale,
		Jitter:            conf.Jitter,
		WarpX:             warpX,
		WarpY:             warpY,
		WarpStrength:      conf.WarpStrength,
		Temperature:       temperature,
		Moisture:          moisture,
		TemperatureDetail: temperatureDetail,
		MoistureDetail:    moistureDetail,
		Variation:         conf.Variation,
		EdgeFunc:          conf.EdgeFunc,
		Altitude:          conf.Altitude,
	})
}

// newTerrain builds the populator tree: the continent noise blends the ocean floor into land, and
// the mountain noise raises land into small mountains and mountains. Land picks its biome from the
// climate of its cell; forest cells pick between oak and birch forest by cell identity.
func newTerrain(conf Config, sampler *climate.Sampler, continent, mountains, detail noise.Module) (cell.Populator, error) {
	surface := func(b biome.Biome) cell.Populator {
		return biome.Populator{Biome: b, Height: detail}
	}
	forest, err := blend.NewSelector(sampler.Identity(), []blend.Weighted{
		{Populator: surface(biome.Forest{}), Weight: 3},
		{Populator: surface(biome.BirchForest{}), Weight: 1},
	})
	if err != nil {
		return nil, err
	}
	populators := map[uint8]cell.Populator{biome.IDForest: forest}
	for _, b := range biome.All() {
		if _, ok := populators[b.ID()]; !ok {
			populators[b.ID()] = surface(b)
		}
	}
	land, err := biome.NewLookup(sampler, populators, surface(biome.Plains{}))
	if err != nil {
		return nil, err
	}
	highlands, err := blend.NewMultiBlender(mountains, land,
		biome.Populator{Biome: biome.SmallMountains{}, Height: mountains},
		biome.Populator{Biome: biome.Mountains{}, Height: mountains},
		conf.HillMin, conf.HillMid, conf.HillMax,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	terrain, err := blend.NewBlender(continent, surface(biome.Ocean{}), highlands, blend.BlenderConfig{
		Min: conf.CoastMin,
		Max: conf.CoastMax,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return terrain, nil
}

// Apply computes the height, biome tag and climate of (x, y) into c. The temperature is corrected for
// the height computed.
func (g *Generator) Apply(c *cell.Cell, x, y float64) {
	g.terrain.Apply(c, x, y)
	g.climate.Apply(c, x, y)
}

// Tag computes only the biome tag of (x, y) into c.
func (g *Generator) Tag(c *cell.Cell, x, y float64) {
	g.terrain.Tag(c, x, y)
}

// Height returns the surface level of the column at (x, z).
func (g *Generator) Height(x, z int) int {
	c := cell.Get()
	defer cell.Put(c)

	g.terrain.Apply(c, float64(x), float64(z))
	return g.height(c)
}

func (g *Generator) height(c *cell.Cell) int {
	return mathutil.Clamp(mathutil.Round(c.Value*biome.WorldHeight), 0, biome.WorldHeight-1)
}

// Biome returns the biome of the column at (x, z).
func (g *Generator) Biome(x, z int) biome.Biome {
	c := cell.Get()
	defer cell.Put(c)

	g.terrain.Tag(c, float64(x), float64(z))
	return biomeOf(c.Tag)
}

// Column returns the surface of the column at (x, z).
func (g *Generator) Column(x, z int) populate.Column {
	c := cell.Get()
	defer cell.Put(c)

	g.terrain.Apply(c, float64(x), float64(z))
	b := biomeOf(c.Tag)
	h := g.height(c)
	return populate.Column{X: x, Z: z, Height: h, Water: h < g.conf.SeaLevel, Ground: b.Ground(), Biome: b}
}

// Climate returns the climate of the column at (x, z), corrected for its terrain height.
func (g *Generator) Climate(x, z int) climate.Climate {
	c := cell.Get()
	defer cell.Put(c)

	g.Apply(c, float64(x), float64(z))
	return climate.Climate{
		CellID:      c.CellID,
		Identity:    c.Identity,
		Edge:        c.Edge,
		Moisture:    c.Moisture,
		Temperature: c.Temperature,
	}
}

// Decorate calls emit for every feature placed in the tile (tileX, tileZ), which spans TileSize
// blocks along both axes. The features do not depend on which tiles were decorated before.
func (g *Generator) Decorate(tileX, tileZ int32, emit func(populate.Feature)) {
	g.scatter.Populate(tileX, tileZ, emit)
}

// Sampler returns the climate sampler of the Generator.
func (g *Generator) Sampler() *climate.Sampler {
	return g.climate
}

// Config returns the configuration of the Generator with defaults applied.
func (g *Generator) Config() Config {
	return g.conf
}

// biomeOf resolves the biome of a tag produced by the terrain tree. Every leaf of the tree tags with
// a catalogue biome, so the fallback is only reached for foreign populators.
func biomeOf(t *cell.Tag) biome.Biome {
	if b, ok := biome.FromTag(t); ok {
		return b
	}
	return biome.Plains{}
}
