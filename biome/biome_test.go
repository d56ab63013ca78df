package biome

import (
	"errors"
	"testing"

	"github.com/df-mc/terragen/cell"
	"github.com/df-mc/terragen/climate"
	"github.com/df-mc/terragen/noise"
)

func TestCatalogue(t *testing.T) {
	all := All()
	if len(all) != 11 {
		t.Fatalf("expected 11 biomes, got %d", len(all))
	}
	names := map[string]bool{}
	for _, b := range all {
		if names[b.Name()] {
			t.Fatalf("expected unique names, got %q twice", b.Name())
		}
		names[b.Name()] = true

		lo, hi := b.Elevation()
		if lo > hi || hi >= WorldHeight {
			t.Fatalf("%v: invalid elevation range [%d, %d]", b.Name(), lo, hi)
		}
		got, ok := ByID(b.ID())
		if !ok || got != b {
			t.Fatalf("expected ByID(%d) to return %v, got %v", b.ID(), b.Name(), got)
		}
		tag := Tag(b)
		if tag.ID() != b.ID() || tag.Name() != b.Name() {
			t.Fatalf("expected tag of %v to carry its ID and name, got %v", b.Name(), tag)
		}
		if fromTag, ok := FromTag(tag); !ok || fromTag != b {
			t.Fatalf("expected FromTag to return %v", b.Name())
		}
	}
	if _, ok := ByID(200); ok {
		t.Fatalf("expected no biome with ID 200")
	}
	if _, ok := FromTag(cell.NewTag(IDOcean, "ocean", 1)); ok {
		t.Fatalf("expected foreign tags not to resolve to a biome")
	}
	if _, ok := FromTag(nil); ok {
		t.Fatalf("expected nil tag not to resolve to a biome")
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		temperature, moisture float64
		want                  uint8
	}{
		{0.1, 0.1, IDOcean},
		{0.8, 0.1, IDRiver},
		{0.95, 0.1, IDSwamp},
		{0.1, 0.4, IDIcePlains},
		{0.5, 0.4, IDPlains},
		{0.9, 0.4, IDDesert},
		{0.1, 0.7, IDTaiga},
		{0.5, 0.7, IDForest},
		{0.9, 0.7, IDBirchForest},
		{0.1, 0.9, IDMountains},
		{0.5, 0.9, IDSmallMountains},
		{0.9, 0.9, IDRiver},
		{-3, -3, IDOcean},
		{5, 0.5, IDDesert},
	}
	for _, tt := range tests {
		if got := Select(tt.temperature, tt.moisture).ID(); got != tt.want {
			t.Fatalf("temperature %v, moisture %v: expected biome %d, got %d", tt.temperature, tt.moisture, tt.want, got)
		}
	}
}

func TestPopulatorElevation(t *testing.T) {
	for _, b := range All() {
		lo, hi := b.Elevation()
		for _, h := range []float64{-1, 0, 0.5, 1, 2} {
			c := &cell.Cell{}
			Populator{Biome: b, Height: noise.Constant(h)}.Apply(c, 0, 0)
			y := c.Value * WorldHeight
			if y < float64(lo)-1e-9 || y > float64(hi)+1e-9 {
				t.Fatalf("%v: expected height in [%d, %d], got %v", b.Name(), lo, hi, y)
			}
			if c.Tag != Tag(b) {
				t.Fatalf("%v: expected the biome tag, got %v", b.Name(), c.Tag)
			}
			if !c.Tag.Contains(c.Value) {
				t.Fatalf("%v: expected the tag to contain the height it produced", b.Name())
			}
		}
	}
}

func TestLookup(t *testing.T) {
	sampler, err := climate.New(climate.Config{
		Seed:        9,
		Scale:       64,
		Temperature: noise.NewSimplex(1, 1.0/300, 2),
		Moisture:    noise.NewSimplex(2, 1.0/300, 2),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	fallback := cell.Constant{Value: 0.1, Type: Tag(Ocean{})}
	plains := Populator{Biome: Plains{}, Height: noise.Constant(0.5)}
	l, err := NewLookup(sampler, map[uint8]cell.Populator{IDPlains: plains}, fallback)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for x := 0.0; x < 4000; x += 37 {
		s := sampler.Sample(x, x/2)
		want := Select(s.Temperature, s.Moisture)

		c := &cell.Cell{}
		l.Apply(c, x, x/2)
		if want.ID() == IDPlains {
			if c.Tag != Tag(Plains{}) {
				t.Fatalf("expected plains at %v, got %v", x, c.Tag)
			}
		} else if c.Tag != Tag(Ocean{}) || c.Value != 0.1 {
			t.Fatalf("expected fallback for %v at %v, got %v", want.Name(), x, c.Tag)
		}

		tagged := &cell.Cell{}
		l.Tag(tagged, x, x/2)
		if tagged.Tag != c.Tag {
			t.Fatalf("expected Tag to match Apply at %v", x)
		}
	}

	if _, err := NewLookup(nil, nil, fallback); !errors.Is(err, climate.ErrNilModule) {
		t.Fatalf("expected ErrNilModule, got %v", err)
	}
	if _, err := NewLookup(sampler, nil, nil); err == nil {
		t.Fatalf("expected an error for a nil fallback")
	}
}
