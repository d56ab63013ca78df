package biome

import "github.com/df-mc/terragen/populate"

type grassy struct{}

// Ground ...
func (grassy) Ground() populate.Ground {
	return populate.GroundGrass
}

type sandy struct{}

// Ground ...
func (sandy) Ground() populate.Ground {
	return populate.GroundSand
}

type snowy struct{}

// Ground ...
func (snowy) Ground() populate.Ground {
	return populate.GroundSnow
}
