package biome

import "github.com/df-mc/terragen/populate"

type Ocean struct{}

func (Ocean) Populators() []populate.Populator {
	return []populate.Populator{populate.TallGrass{Amount: 5}}
}

func (Ocean) ID() uint8 {
	return IDOcean
}

func (Ocean) Name() string {
	return "ocean"
}

func (Ocean) Elevation() (min, max int) {
	return 46, 58
}

func (Ocean) Ground() populate.Ground {
	return populate.GroundGravel
}

func (Ocean) Temperature() float64 {
	return 0.5
}

func (Ocean) Rainfall() float64 {
	return 0.5
}

type River struct{}

func (River) Populators() []populate.Populator {
	return []populate.Populator{populate.TallGrass{Amount: 5}}
}

func (River) ID() uint8 {
	return IDRiver
}

func (River) Name() string {
	return "river"
}

func (River) Elevation() (min, max int) {
	return 58, 62
}

func (River) Ground() populate.Ground {
	return populate.GroundDirt
}

func (River) Temperature() float64 {
	return 0.5
}

func (River) Rainfall() float64 {
	return 0.7
}

type Swamp struct {
	grassy
}

func (Swamp) Populators() []populate.Populator {
	return nil
}

func (Swamp) ID() uint8 {
	return IDSwamp
}

func (Swamp) Name() string {
	return "swamp"
}

func (Swamp) Elevation() (min, max int) {
	return 62, 63
}

func (Swamp) Temperature() float64 {
	return 0.8
}

func (Swamp) Rainfall() float64 {
	return 0.9
}
