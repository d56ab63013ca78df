package biome

import "github.com/df-mc/terragen/populate"

type Forest struct {
	grassy
}

func (Forest) Populators() []populate.Populator {
	return []populate.Populator{
		populate.Tree{Type: populate.OakTree{}, BaseAmount: 5},
		populate.TallGrass{Amount: 3},
	}
}

func (Forest) ID() uint8 {
	return IDForest
}

func (Forest) Name() string {
	return "forest"
}

func (Forest) Elevation() (min, max int) {
	return 63, 81
}

func (Forest) Temperature() float64 {
	return 0.7
}

func (Forest) Rainfall() float64 {
	return 0.8
}

type BirchForest struct {
	grassy
}

func (BirchForest) Populators() []populate.Populator {
	return []populate.Populator{
		populate.Tree{BaseAmount: 10, Type: populate.BirchTree{}},
	}
}

func (BirchForest) ID() uint8 {
	return IDBirchForest
}

func (BirchForest) Name() string {
	return "birch_forest"
}

func (BirchForest) Elevation() (min, max int) {
	return 60, 70
}

func (BirchForest) Temperature() float64 {
	return 0.6
}

func (BirchForest) Rainfall() float64 {
	return 0.6
}

type Taiga struct {
	snowy
}

func (Taiga) Populators() []populate.Populator {
	return []populate.Populator{
		populate.Tree{Type: populate.SpruceTree{}, BaseAmount: 10},
		populate.TallGrass{Amount: 1},
	}
}

func (Taiga) ID() uint8 {
	return IDTaiga
}

func (Taiga) Name() string {
	return "taiga"
}

func (Taiga) Elevation() (min, max int) {
	return 63, 81
}

func (Taiga) Temperature() float64 {
	return 0.05
}

func (Taiga) Rainfall() float64 {
	return 0.8
}
