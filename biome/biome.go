// Package biome holds the biome catalogue: every biome has an elevation range, a temperature and a
// rainfall, the ground it is covered with and the populators that decorate it.
package biome

import (
	"github.com/df-mc/terragen/cell"
	"github.com/df-mc/terragen/populate"
)

// WorldHeight is the height that elevations are normalised against.
const WorldHeight = 128

// Biome is a biome in the catalogue.
type Biome interface {
	populate.Decorated
	// ID returns the numeric ID of the biome.
	ID() uint8
	// Name returns the name of the biome.
	Name() string
	// Elevation returns the lowest and highest surface level of the biome.
	Elevation() (min, max int)
	// Temperature and Rainfall return the climate the biome is associated with.
	Temperature() float64
	Rainfall() float64
	// Ground returns the top material of the biome.
	Ground() populate.Ground
}

const (
	IDOcean          uint8 = 0
	IDPlains         uint8 = 1
	IDDesert         uint8 = 2
	IDMountains      uint8 = 3
	IDForest         uint8 = 4
	IDTaiga          uint8 = 5
	IDSwamp          uint8 = 6
	IDRiver          uint8 = 7
	IDIcePlains      uint8 = 12
	IDSmallMountains uint8 = 20
	IDBirchForest    uint8 = 27
)

var (
	biomes [256]Biome
	tags   [256]*cell.Tag
)

func init() {
	for _, b := range []Biome{
		Ocean{}, Plains{}, Desert{}, Mountains{}, Forest{}, Taiga{},
		Swamp{}, River{}, IcePlains{}, SmallMountains{}, BirchForest{},
	} {
		_, top := b.Elevation()
		biomes[b.ID()] = b
		tags[b.ID()] = cell.NewTag(b.ID(), b.Name(), float64(top)/WorldHeight)
	}
}

// ByID returns the biome with the ID passed, or false if no such biome exists.
func ByID(id uint8) (Biome, bool) {
	b := biomes[id]
	return b, b != nil
}

// Tag returns the cell tag of b. The tag accepts values up to the top of the elevation range of b.
func Tag(b Biome) *cell.Tag {
	return tags[b.ID()]
}

// FromTag returns the biome a tag was created for. Tags not created by this package, including nil,
// return false.
func FromTag(t *cell.Tag) (Biome, bool) {
	if t == nil || tags[t.ID()] != t {
		return nil, false
	}
	return biomes[t.ID()], true
}

// All returns every biome in the catalogue ordered by ID.
func All() []Biome {
	var all []Biome
	for _, b := range biomes {
		if b != nil {
			all = append(all, b)
		}
	}
	return all
}
