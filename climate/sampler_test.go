package climate

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/df-mc/terragen/cell"
	"github.com/df-mc/terragen/noise"
)

func testConfig() Config {
	return Config{
		Seed:              42,
		Scale:             256,
		Temperature:       noise.NewSimplex(1, 1.0/1024, 2),
		Moisture:          noise.NewSimplex(2, 1.0/1024, 2),
		TemperatureDetail: noise.NewSimplex(3, 1.0/64, 1),
		MoistureDetail:    noise.NewSimplex(4, 1.0/64, 1),
		Variation:         0.1,
	}
}

func newSampler(t *testing.T, conf Config) *Sampler {
	t.Helper()
	s, err := New(conf)
	if err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	return s
}

func TestSampleFieldsInRange(t *testing.T) {
	conf := testConfig()
	conf.WarpX, conf.WarpY = noise.NewSimplex(5, 1.0/512, 1), noise.NewSimplex(6, 1.0/512, 1)
	conf.WarpStrength = 64
	for _, f := range []EdgeFunc{EdgeDiv, EdgeDiv2, EdgeSub} {
		conf.EdgeFunc = f
		s := newSampler(t, conf)
		rng := rand.New(rand.NewSource(99))
		for i := 0; i < 2000; i++ {
			x, y := rng.Float64()*20000-10000, rng.Float64()*20000-10000
			c := s.Sample(x, y)
			for name, v := range map[string]float64{"edge": c.Edge, "moisture": c.Moisture, "temperature": c.Temperature, "identity": c.Identity} {
				if v < 0 || v > 1 || math.IsNaN(v) {
					t.Fatalf("expected %v %s in [0,1], got %v at (%v, %v)", f, name, v, x, y)
				}
			}
		}
	}
}

func TestSampleIsDeterministic(t *testing.T) {
	a, b := newSampler(t, testConfig()), newSampler(t, testConfig())
	for _, p := range [][2]float64{{0, 0}, {-1234.5, 987.25}, {1e6, -1e6}} {
		if x, y := a.Sample(p[0], p[1]), b.Sample(p[0], p[1]); x != y {
			t.Fatalf("expected identical climate at %v, got %+v and %+v", p, x, y)
		}
	}
}

func TestSampleConcurrentOrderIndependent(t *testing.T) {
	t.Parallel()

	s := newSampler(t, testConfig())
	const n = 512
	want := make([]Climate, n)
	for i := range want {
		want[i] = s.Sample(float64(i*37), float64(-i*53))
	}
	var wg sync.WaitGroup
	errs := make(chan string, n)
	for i := n - 1; i >= 0; i-- {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if got := s.Sample(float64(i*37), float64(-i*53)); got != want[i] {
				errs <- "mismatch"
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	if len(errs) != 0 {
		t.Fatalf("expected concurrent samples to match sequential ones, got %d mismatches", len(errs))
	}
}

func TestEdgeIsOneAtAnchor(t *testing.T) {
	for _, f := range []EdgeFunc{EdgeDiv, EdgeDiv2, EdgeSub} {
		conf := testConfig()
		conf.EdgeFunc = f
		s := newSampler(t, conf)
		for cx := int32(-30); cx <= 30; cx++ {
			for cy := int32(-30); cy <= 30; cy++ {
				x, y := s.Anchor(cx, cy)
				if c := s.Sample(x, y); c.Edge < 0.999 {
					t.Fatalf("expected %v edge ~1 at anchor of (%d, %d), got %v", f, cx, cy, c.Edge)
				}
			}
		}
	}
}

func TestEdgeFuncsAtBoundary(t *testing.T) {
	for _, f := range []EdgeFunc{EdgeDiv, EdgeDiv2, EdgeSub} {
		if got := f.edge(0.5, 0.5); math.Abs(got) > 1e-12 {
			t.Fatalf("expected %v edge 0 where both anchors are equally close, got %v", f, got)
		}
		if got := f.edge(0, 0.1); got != 1 {
			t.Fatalf("expected %v edge 1 on a close anchor, got %v", f, got)
		}
	}
	if EdgeSub.edge(0.2, 0.6) == EdgeDiv.edge(0.2, 0.6) {
		t.Fatalf("expected sub and div to differ inside a cell")
	}
}

func TestSampleFarCoordinates(t *testing.T) {
	s := newSampler(t, testConfig())
	far := s.Sample(1e300, -1e300)
	for name, v := range map[string]float64{"edge": far.Edge, "moisture": far.Moisture, "temperature": far.Temperature, "identity": far.Identity} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			t.Fatalf("expected %s in [0,1] far from the origin, got %v", name, v)
		}
	}
	// Past the lattice bound every coordinate saturates onto the same outermost cell.
	if other := s.Sample(1e200, -1e250); other.CellID != far.CellID {
		t.Fatalf("expected saturated coordinates to share a cell, got %d and %d", far.CellID, other.CellID)
	}
}

func TestEdgeFallsToZeroAtBoundary(t *testing.T) {
	s := newSampler(t, testConfig())
	ax, ay := s.Anchor(0, 0)
	bx, by := s.Anchor(1, 0)

	c := &cell.Cell{}
	s.Mask(c, ax, ay)
	prevID, prevEdge := c.CellID, c.Edge
	crossed := false
	const steps = 2048
	for i := 1; i <= steps; i++ {
		f := float64(i) / steps
		s.Mask(c, ax+(bx-ax)*f, ay+(by-ay)*f)
		if c.CellID != prevID {
			crossed = true
			if prevEdge > 0.05 || c.Edge > 0.05 {
				t.Fatalf("expected edge ~0 across a boundary, got %v and %v", prevEdge, c.Edge)
			}
		}
		prevID, prevEdge = c.CellID, c.Edge
	}
	if !crossed {
		t.Fatalf("expected to cross at least one cell boundary between two anchors")
	}
}

func TestAdjacentCellsHaveDistinctIDs(t *testing.T) {
	conf := testConfig()
	conf.Seed, conf.Scale = 42, 256
	s := newSampler(t, conf)

	a, b := s.Sample(0, 0), s.Sample(256, 0)
	if a.CellID == b.CellID {
		t.Fatalf("expected distinct cell IDs one cell apart, got %d twice", a.CellID)
	}
	// With jitter <= 0.45 a lattice point is always closer to its own anchor than to any other,
	// keeping both samples well inside their cells.
	if a.Edge < 0.15 || b.Edge < 0.15 {
		t.Fatalf("expected lattice points to lie inside their cells, got edges %v and %v", a.Edge, b.Edge)
	}
}

func TestMaskSkipsClimateFields(t *testing.T) {
	s := newSampler(t, testConfig())
	c := &cell.Cell{Moisture: -1, Temperature: -1}
	s.Mask(c, 100, 200)
	if c.Moisture != -1 || c.Temperature != -1 {
		t.Fatalf("expected mask path to leave climate fields untouched, got %+v", *c)
	}
	full := s.Sample(100, 200)
	if c.Edge != full.Edge || c.CellID != full.CellID {
		t.Fatalf("expected mask path to agree with full sample, got %+v and %+v", *c, full)
	}
	if got := s.Edge().Value(100, 200); got != full.Edge {
		t.Fatalf("expected edge module %v, got %v", full.Edge, got)
	}
	if got := s.Identity().Value(100, 200); got != full.Identity {
		t.Fatalf("expected identity module %v, got %v", full.Identity, got)
	}
}

func TestAltitudeCorrection(t *testing.T) {
	conf := testConfig()
	conf.Temperature = noise.Constant(0.6)
	conf.TemperatureDetail = nil
	conf.Altitude = Altitude{Enabled: true, Lower: 0.3, Mid: 0.6, Upper: 0.9, OceanWarmth: 0.5}
	s := newSampler(t, conf)

	for _, tc := range []struct {
		height, want float64
	}{
		{0.45, 0.6}, // between lower and mid: untouched
		{0.75, 0.3}, // halfway to upper: halved
		{0.95, 0},   // above upper: frozen
		{0.29, 0.6 + 0.4*(0.31/0.6)*0.5}, // just below lower: pulled by the distance from mid
		{0.15, 0.75},                      // 0.6 + 0.4*0.75*0.5
		{0, 0.8},                          // bottom: 0.6 + 0.4*0.5
	} {
		c := &cell.Cell{Value: tc.height}
		s.Apply(c, 10, 10)
		if math.Abs(c.Temperature-tc.want) > 1e-9 {
			t.Fatalf("expected temperature %v at height %v, got %v", tc.want, tc.height, c.Temperature)
		}
	}
}

func TestSampleUsesHeightModule(t *testing.T) {
	conf := testConfig()
	conf.Temperature = noise.Constant(0.5)
	conf.TemperatureDetail = nil
	conf.Altitude = Altitude{Enabled: true, Lower: 0.2, Mid: 0.5, Upper: 0.8}
	conf.Height = noise.Constant(0.8)
	s := newSampler(t, conf)
	if got := s.Sample(0, 0).Temperature; got != 0 {
		t.Fatalf("expected temperature 0 at the upper threshold, got %v", got)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	for name, tc := range map[string]struct {
		mutate func(*Config)
		err    error
	}{
		"negative scale": {func(c *Config) { c.Scale = -1 }, ErrScale},
		"nan scale":      {func(c *Config) { c.Scale = math.NaN() }, ErrScale},
		"large jitter":   {func(c *Config) { c.Jitter = 0.8 }, ErrJitter},
		"no moisture":    {func(c *Config) { c.Moisture = nil }, ErrNilModule},
		"no temperature": {func(c *Config) { c.Temperature = nil }, ErrNilModule},
		"collapsed mid": {func(c *Config) {
			c.Altitude = Altitude{Enabled: true, Lower: 0.3, Mid: 0.3, Upper: 0.9}
		}, ErrThresholds},
		"zero lower": {func(c *Config) {
			c.Altitude = Altitude{Enabled: true, Lower: 0, Mid: 0.5, Upper: 0.9}
		}, ErrThresholds},
	} {
		conf := testConfig()
		tc.mutate(&conf)
		if _, err := New(conf); !errors.Is(err, tc.err) {
			t.Fatalf("%s: expected %v, got %v", name, tc.err, err)
		}
	}
}

func TestParseEdgeFunc(t *testing.T) {
	for _, f := range []EdgeFunc{EdgeDiv, EdgeDiv2, EdgeSub} {
		got, err := ParseEdgeFunc(f.String())
		if err != nil || got != f {
			t.Fatalf("expected %v, got %v (%v)", f, got, err)
		}
	}
	if f, err := ParseEdgeFunc(""); err != nil || f != EdgeDiv {
		t.Fatalf("expected empty name to select div, got %v (%v)", f, err)
	}
	if _, err := ParseEdgeFunc("manhattan"); err == nil {
		t.Fatalf("expected an error for an unknown edge function")
	}
}
