package populate

import (
	"slices"
	"testing"

	"github.com/df-mc/terragen/noise"
	"github.com/df-mc/terragen/poisson"
	"github.com/df-mc/terragen/rand"
)

type biome []Populator

func (b biome) Populators() []Populator {
	return b
}

type flatSurface struct {
	height int
	water  bool
	ground Ground
	biome  Decorated
}

func (s flatSurface) Column(x, z int) Column {
	return Column{X: x, Z: z, Height: s.height, Water: s.water, Ground: s.ground, Biome: s.biome}
}

func TestTreeGround(t *testing.T) {
	tree := Tree{BaseAmount: amountScale, Type: OakTree{}}
	r := rand.NewRandom(1)
	for _, tt := range []struct {
		col  Column
		want bool
	}{
		{Column{Ground: GroundGrass, Height: 70}, true},
		{Column{Ground: GroundDirt, Height: 70}, true},
		{Column{Ground: GroundSnow, Height: 70}, true},
		{Column{Ground: GroundSand, Height: 70}, false},
		{Column{Ground: GroundGravel, Height: 70}, false},
		{Column{Ground: GroundGrass, Height: 50, Water: true}, false},
	} {
		f, ok := tree.Populate(tt.col, r)
		if ok != tt.want {
			t.Fatalf("ground %v, water %v: expected %v, got %v", tt.col.Ground, tt.col.Water, tt.want, ok)
		}
		if ok && f.Y != tt.col.Height+1 {
			t.Fatalf("expected tree at y %d, got %d", tt.col.Height+1, f.Y)
		}
	}
}

func TestTreeHeights(t *testing.T) {
	tests := []struct {
		typ      TreeType
		min, max int
	}{
		{OakTree{}, 3, 5},
		{SpruceTree{}, 4, 9},
		{BirchTree{}, 4, 6},
		{BirchTree{Super: true}, 9, 11},
	}
	r := rand.NewRandom(99)
	for _, tt := range tests {
		for i := 0; i < 500; i++ {
			_, h := tt.typ.Grow(r)
			if h < tt.min || h > tt.max {
				t.Fatalf("%T: expected height in [%d, %d], got %d", tt.typ, tt.min, tt.max, h)
			}
		}
	}
}

func TestSuperBirch(t *testing.T) {
	tree := Tree{BaseAmount: amountScale, Type: BirchTree{}}
	col := Column{Ground: GroundGrass, Height: 64}
	counts := map[Kind]int{}
	r := rand.NewRandom(77)
	for i := 0; i < 4000; i++ {
		f, ok := tree.Populate(col, r)
		if !ok {
			t.Fatalf("expected a full amount to always place a tree")
		}
		counts[f.Kind]++
	}
	if counts[KindSuperBirchTree] == 0 || counts[KindSuperBirchTree] > counts[KindBirchTree]/10 {
		t.Fatalf("expected occasional super birch trees, got %v", counts)
	}
}

func TestTallGrass(t *testing.T) {
	grass := TallGrass{Amount: 8}
	r := rand.NewRandom(5)
	if _, ok := grass.Populate(Column{Ground: GroundSand}, r); ok {
		t.Fatalf("expected no tall grass on sand")
	}
	placed := 0
	for i := 0; i < 1000; i++ {
		if f, ok := grass.Populate(Column{Ground: GroundGrass, Height: 64}, r); ok {
			placed++
			if f.Kind != KindTallGrass || f.Y != 65 {
				t.Fatalf("expected tall grass at y 65, got %v at %d", f.Kind, f.Y)
			}
		}
	}
	if placed < 400 || placed > 700 {
		t.Fatalf("expected roughly half of the columns to get grass, got %d", placed)
	}
}

func newScatter(t *testing.T, surface Surface, conf ScatterConfig) *Scatter {
	t.Helper()
	p, err := poisson.New(poisson.Config{Seed: 11, Radius: 4})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return NewScatter(surface, p, conf)
}

func collect(s *Scatter, tileX, tileZ int32) []Feature {
	var out []Feature
	s.Populate(tileX, tileZ, func(f Feature) {
		out = append(out, f)
	})
	return out
}

func TestScatterDeterministic(t *testing.T) {
	surface := flatSurface{height: 70, ground: GroundGrass, biome: biome{
		Tree{BaseAmount: 4, Type: OakTree{}},
		TallGrass{Amount: 8},
	}}
	s := newScatter(t, surface, ScatterConfig{Seed: 3})

	first := collect(s, 2, -1)
	collect(s, 0, 0)
	collect(s, 3, -1)
	if second := collect(s, 2, -1); !slices.Equal(first, second) {
		t.Fatalf("expected identical features for repeated tile visits")
	}
	if len(first) == 0 {
		t.Fatalf("expected features in a grass tile")
	}
	for _, f := range first {
		if f.X < 32 || f.X >= 48 || f.Z < -16 || f.Z >= 0 {
			t.Fatalf("feature at (%d, %d) outside tile (2, -1)", f.X, f.Z)
		}
	}
}

func TestScatterEdgeThreshold(t *testing.T) {
	surface := flatSurface{height: 70, ground: GroundGrass, biome: biome{TallGrass{Amount: amountScale}}}
	open := collect(newScatter(t, surface, ScatterConfig{Edge: noise.Constant(0.5), EdgeThreshold: 0.4}), 0, 0)
	if len(open) == 0 {
		t.Fatalf("expected features above the edge threshold")
	}
	if n := len(collect(newScatter(t, surface, ScatterConfig{Edge: noise.Constant(0.3), EdgeThreshold: 0.4}), 0, 0)); n != 0 {
		t.Fatalf("expected no features below the edge threshold, got %d", n)
	}
}

func TestScatterNoBiome(t *testing.T) {
	s := newScatter(t, flatSurface{height: 70, ground: GroundGrass}, ScatterConfig{})
	if n := len(collect(s, 0, 0)); n != 0 {
		t.Fatalf("expected no features without a biome, got %d", n)
	}
}
