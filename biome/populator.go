package biome

import (
	"fmt"

	"github.com/df-mc/terragen/cell"
	"github.com/df-mc/terragen/climate"
	"github.com/df-mc/terragen/internal/mathutil"
	"github.com/df-mc/terragen/noise"
)

// Populator raises terrain within the elevation range of a biome and tags it with the biome.
type Populator struct {
	Biome Biome
	// Height selects the position within the elevation range. Its output is clamped to [0, 1].
	Height noise.Module
}

// Apply ...
func (p Populator) Apply(c *cell.Cell, x, y float64) {
	lo, hi := p.Biome.Elevation()
	h := mathutil.Clamp01(p.Height.Value(x, y))
	c.Value = mathutil.Lerp(float64(lo), float64(hi), h) / WorldHeight
	c.Tag = Tag(p.Biome)
}

// Tag ...
func (p Populator) Tag(c *cell.Cell, _, _ float64) {
	c.Tag = Tag(p.Biome)
}

// Lookup is a cell.Populator choosing the populator of the biome that Select returns for the
// climate of a coordinate. Since the climate baseline is constant per climate cell, so is the
// choice, apart from where local variation pushes it over a threshold of the table.
type Lookup struct {
	climate    *climate.Sampler
	populators [256]cell.Populator
	fallback   cell.Populator
}

// NewLookup creates a Lookup. populators maps biome IDs to the populator used for them; biomes
// without an entry use fallback.
func NewLookup(sampler *climate.Sampler, populators map[uint8]cell.Populator, fallback cell.Populator) (*Lookup, error) {
	if sampler == nil {
		return nil, fmt.Errorf("biome: lookup: %w", climate.ErrNilModule)
	}
	if fallback == nil {
		return nil, fmt.Errorf("biome: lookup: nil fallback populator")
	}
	l := &Lookup{climate: sampler, fallback: fallback}
	for id, p := range populators {
		if p == nil {
			return nil, fmt.Errorf("biome: lookup: nil populator for biome %d", id)
		}
		l.populators[id] = p
	}
	return l, nil
}

// node returns the populator for the coordinate passed.
func (l *Lookup) node(x, y float64) cell.Populator {
	s := l.climate.Sample(x, y)
	if p := l.populators[Select(s.Temperature, s.Moisture).ID()]; p != nil {
		return p
	}
	return l.fallback
}

// Apply ...
func (l *Lookup) Apply(c *cell.Cell, x, y float64) {
	l.node(x, y).Apply(c, x, y)
}

// Tag ...
func (l *Lookup) Tag(c *cell.Cell, x, y float64) {
	l.node(x, y).Tag(c, x, y)
}
