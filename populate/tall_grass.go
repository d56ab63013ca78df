package populate

import (
	"github.com/df-mc/terragen/rand"
)

// TallGrass places tall grass on dry grass blocks.
type TallGrass struct {
	Amount int
}

// Populate ...
func (t TallGrass) Populate(col Column, r *rand.Random) (Feature, bool) {
	if col.Water || col.Ground != GroundGrass {
		return Feature{}, false
	}
	if r.Int31n(amountScale) >= r.Int31n(2)+int32(t.Amount) {
		return Feature{}, false
	}
	return Feature{Kind: KindTallGrass, X: col.X, Y: col.Height + 1, Z: col.Z, Height: 1}, true
}
