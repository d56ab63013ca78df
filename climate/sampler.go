// Package climate implements the cellular climate sampler. Space is divided into jittered cells
// (Worley noise); each coordinate is assigned the identity of its nearest cell, a metric of how
// close it lies to the boundary with a neighbour, and temperature and moisture fields that are
// constant per cell with local variation layered on top.
package climate

import (
	"fmt"
	"math"

	"github.com/df-mc/terragen/cell"
	"github.com/df-mc/terragen/internal/mathutil"
	"github.com/df-mc/terragen/noise"
	"github.com/df-mc/terragen/seed"
)

// Climate is the result of a full Sample.
type Climate struct {
	CellID      uint32
	Identity    float64
	Edge        float64
	Moisture    float64
	Temperature float64
}

// Sampler computes climate for coordinates. It holds no mutable state and is safe for concurrent
// use.
type Sampler struct {
	conf      Config
	frequency float64
	warp      bool
}

// New creates a Sampler from conf.
func New(conf Config) (*Sampler, error) {
	conf = conf.withDefaults()
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return &Sampler{
		conf:      conf,
		frequency: 1 / conf.Scale,
		warp:      conf.WarpX != nil && conf.WarpY != nil && conf.WarpStrength != 0,
	}, nil
}

// Config returns the configuration of s with defaults applied.
func (s *Sampler) Config() Config {
	return s.conf
}

// maxCell bounds the lattice coordinate so that it converts to int32 with room for the 3x3 scan.
// Coordinates further out than maxCell cells saturate onto the outermost cells.
const maxCell = 1 << 30

// location is the outcome of the nearest-cell search for one coordinate.
type location struct {
	cellX, cellY     int32
	anchorX, anchorY float64
	d1, d2           float64
}

// locate finds the nearest and second nearest jittered anchors around (x, y). The 3x3 neighbourhood
// is scanned row by row (dy outer, dx inner) and a tie keeps the cell scanned first.
func (s *Sampler) locate(x, y float64) location {
	if s.warp {
		ox := (s.conf.WarpX.Value(x, y)*2 - 1) * s.conf.WarpStrength
		oy := (s.conf.WarpY.Value(x, y)*2 - 1) * s.conf.WarpStrength
		x, y = x+ox, y+oy
	}
	px := mathutil.Clamp(x*s.frequency, -maxCell, maxCell)
	py := mathutil.Clamp(y*s.frequency, -maxCell, maxCell)
	xr, yr := int32(math.Round(px)), int32(math.Round(py))

	l := location{d1: math.MaxFloat64, d2: math.MaxFloat64}
	for dy := int32(-1); dy <= 1; dy++ {
		for dx := int32(-1); dx <= 1; dx++ {
			cx, cy := xr+dx, yr+dy
			ax, ay := s.anchor(cx, cy)
			d := math.Hypot(ax-px, ay-py)
			if d < l.d1 {
				l.d2 = l.d1
				l.d1 = d
				l.cellX, l.cellY = cx, cy
				l.anchorX, l.anchorY = ax, ay
			} else if d < l.d2 {
				l.d2 = d
			}
		}
	}
	return l
}

// anchor returns the jittered anchor of the lattice cell (cx, cy) in cell space.
func (s *Sampler) anchor(cx, cy int32) (float64, float64) {
	v := seed.Jitter(seed.Hash2D(s.conf.Seed, cx, cy))
	return float64(cx) + v[0]*s.conf.Jitter, float64(cy) + v[1]*s.conf.Jitter
}

// Anchor returns the anchor of the lattice cell (cx, cy) in world coordinates, before any warp is
// undone. Without a warp, sampling at the returned position yields an edge of 1.
func (s *Sampler) Anchor(cx, cy int32) (x, y float64) {
	ax, ay := s.anchor(cx, cy)
	return ax * s.conf.Scale, ay * s.conf.Scale
}

func (s *Sampler) cellID(l location) uint32 {
	return uint32(seed.Hash2D(^s.conf.Seed, l.cellX, l.cellY))
}

// Mask writes only the cell identity and edge metric for (x, y) into c. It skips the climate
// fields entirely and is the path to use when only boundary proximity is needed.
func (s *Sampler) Mask(c *cell.Cell, x, y float64) {
	l := s.locate(x, y)
	s.mask(c, l)
}

func (s *Sampler) mask(c *cell.Cell, l location) {
	c.CellID = s.cellID(l)
	c.Identity = seed.Unit(int32(c.CellID))
	c.Edge = mathutil.Clamp01(s.conf.EdgeFunc.edge(l.d1, l.d2))
}

// Apply writes the identity, edge, moisture and temperature for (x, y) into c. c.Value is read as
// the terrain height for altitude correction, so height must be populated first.
func (s *Sampler) Apply(c *cell.Cell, x, y float64) {
	l := s.locate(x, y)
	s.mask(c, l)

	wx, wy := l.anchorX*s.conf.Scale, l.anchorY*s.conf.Scale
	c.Moisture = s.field(s.conf.Moisture, s.conf.MoistureDetail, wx, wy, x, y)
	t := s.field(s.conf.Temperature, s.conf.TemperatureDetail, wx, wy, x, y)
	c.Temperature = s.correct(t, c.Value)
}

// field evaluates a climate field: the baseline at the anchor plus signed local variation at the
// raw coordinate.
func (s *Sampler) field(base, detail noise.Module, ax, ay, x, y float64) float64 {
	v := base.Value(ax, ay)
	if detail != nil && s.conf.Variation != 0 {
		v += (detail.Value(x, y)*2 - 1) * s.conf.Variation
	}
	return mathutil.Clamp01(v)
}

// correct applies altitude correction to the temperature t at height h.
func (s *Sampler) correct(t, h float64) float64 {
	a := s.conf.Altitude
	if !a.Enabled {
		return t
	}
	switch {
	case h > a.Mid:
		t *= 1 - mathutil.Clamp01((h-a.Mid)/(a.Upper-a.Mid))
	case h < a.Lower:
		t += (1 - t) * mathutil.Clamp01((a.Mid-h)/a.Mid) * a.OceanWarmth
	}
	return mathutil.Clamp01(t)
}

// Sample computes the full climate for (x, y). The height used for altitude correction comes from
// the configured Height module, or Altitude.Mid (no correction) if none is set.
func (s *Sampler) Sample(x, y float64) Climate {
	c := cell.Get()
	defer cell.Put(c)

	c.Value = s.conf.Altitude.Mid
	if s.conf.Height != nil {
		c.Value = s.conf.Height.Value(x, y)
	}
	s.Apply(c, x, y)
	return Climate{
		CellID:      c.CellID,
		Identity:    c.Identity,
		Edge:        c.Edge,
		Moisture:    c.Moisture,
		Temperature: c.Temperature,
	}
}

// Edge returns a Module evaluating the edge metric of s.
func (s *Sampler) Edge() noise.Module {
	return noise.Func(func(x, y float64) float64 {
		l := s.locate(x, y)
		return mathutil.Clamp01(s.conf.EdgeFunc.edge(l.d1, l.d2))
	})
}

// Identity returns a Module evaluating the cell identity of s. It is constant across each cell and
// suitable as the control signal of a selector.
func (s *Sampler) Identity() noise.Module {
	return noise.Func(func(x, y float64) float64 {
		return seed.Unit(int32(s.cellID(s.locate(x, y))))
	})
}

// String ...
func (s *Sampler) String() string {
	return fmt.Sprintf("climate(seed=%d, scale=%v, jitter=%v, edge=%v)", s.conf.Seed, s.conf.Scale, s.conf.Jitter, s.conf.EdgeFunc)
}
