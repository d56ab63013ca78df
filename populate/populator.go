// Package populate decides which surface features (trees, tall grass) are placed at the points
// scattered by a poisson.Placer.
package populate

import (
	"github.com/df-mc/terragen/rand"
)

// Populator decides if a feature is placed in the column passed. It may consume values from r and
// must not keep state between calls.
type Populator interface {
	Populate(col Column, r *rand.Random) (Feature, bool)
}

// Decorated is implemented by anything providing the populators of a column, usually a biome.
type Decorated interface {
	Populators() []Populator
}

// Ground is the top material of a column.
type Ground uint8

const (
	GroundGrass Ground = iota
	GroundDirt
	GroundSand
	GroundSnow
	GroundGravel
)

// Workable reports if trees can take root in the ground.
func (g Ground) Workable() bool {
	return g == GroundGrass || g == GroundDirt || g == GroundSnow
}

// String ...
func (g Ground) String() string {
	switch g {
	case GroundGrass:
		return "grass"
	case GroundDirt:
		return "dirt"
	case GroundSand:
		return "sand"
	case GroundSnow:
		return "snow"
	case GroundGravel:
		return "gravel"
	}
	return "unknown"
}

// Column describes the surface at a world column.
type Column struct {
	X, Z int
	// Height is the y of the topmost solid block.
	Height int
	// Water is true if the surface lies below sea level.
	Water  bool
	Ground Ground
	Biome  Decorated
}

// Kind is the type of a placed feature.
type Kind uint8

const (
	KindOakTree Kind = iota
	KindBirchTree
	KindSuperBirchTree
	KindSpruceTree
	KindTallGrass
)

// String ...
func (k Kind) String() string {
	switch k {
	case KindOakTree:
		return "oak_tree"
	case KindBirchTree:
		return "birch_tree"
	case KindSuperBirchTree:
		return "super_birch_tree"
	case KindSpruceTree:
		return "spruce_tree"
	case KindTallGrass:
		return "tall_grass"
	}
	return "unknown"
}

// Feature is a feature placed at a block position. Y is the first block above the surface.
type Feature struct {
	Kind    Kind
	X, Y, Z int
	// Height is the trunk height for trees and 1 for plants.
	Height int
}

// amountScale is the number of scattered points an amount is expressed against. An amount of n
// places a feature at roughly n out of amountScale points.
const amountScale = 16
