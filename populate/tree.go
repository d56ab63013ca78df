package populate

import (
	"github.com/df-mc/terragen/rand"
)

// Tree places trees of a single type on workable ground above water.
type Tree struct {
	BaseAmount int
	Type       TreeType
}

// Populate ...
func (t Tree) Populate(col Column, r *rand.Random) (Feature, bool) {
	if col.Water || !col.Ground.Workable() {
		return Feature{}, false
	}
	amount := r.Int31n(2) + int32(t.BaseAmount)
	if r.Int31n(amountScale) >= amount {
		return Feature{}, false
	}
	treeType := t.Type
	if birch, ok := treeType.(BirchTree); ok && r.Int31n(39) == 0 {
		birch.Super = true
		treeType = birch
	}
	kind, height := treeType.Grow(r)
	return Feature{Kind: kind, X: col.X, Y: col.Height + 1, Z: col.Z, Height: height}, true
}

// TreeType is a kind of tree with its own trunk height distribution.
type TreeType interface {
	Grow(r *rand.Random) (kind Kind, trunkHeight int)
}

type SpruceTree struct{}

// Grow ...
func (SpruceTree) Grow(r *rand.Random) (Kind, int) {
	treeHeight := int(r.Int31n(4) + 6)
	return KindSpruceTree, treeHeight - int(r.Int31n(3))
}

type OakTree struct{}

// Grow ...
func (OakTree) Grow(r *rand.Random) (Kind, int) {
	return KindOakTree, int(r.Int31n(3)) + 4 - 1
}

// BirchTree is a birch tree. Super birch trees are five blocks taller.
type BirchTree struct {
	Super bool
}

// Grow ...
func (b BirchTree) Grow(r *rand.Random) (Kind, int) {
	treeHeight := int(r.Int31n(3)) + 5
	if b.Super {
		return KindSuperBirchTree, treeHeight + 5 - 1
	}
	return KindBirchTree, treeHeight - 1
}
