package biome

import (
	"github.com/df-mc/terragen/internal/mathutil"
)

const lookupSize = 64

// lookup is the biome table indexed by quantised temperature and rainfall.
var lookup [lookupSize * lookupSize]uint8

func init() {
	for i := 0; i < lookupSize; i++ {
		for j := 0; j < lookupSize; j++ {
			lookup[i+j*lookupSize] = classify(float64(i)/(lookupSize-1), float64(j)/(lookupSize-1))
		}
	}
}

// classify maps a temperature and rainfall in [0, 1] to a biome ID.
func classify(temperature, rainfall float64) uint8 {
	switch {
	case rainfall < 0.25:
		switch {
		case temperature < 0.7:
			return IDOcean
		case temperature < 0.85:
			return IDRiver
		}
		return IDSwamp
	case rainfall < 0.6:
		switch {
		case temperature < 0.25:
			return IDIcePlains
		case temperature < 0.75:
			return IDPlains
		}
		return IDDesert
	case rainfall < 0.8:
		switch {
		case temperature < 0.25:
			return IDTaiga
		case temperature < 0.75:
			return IDForest
		}
		return IDBirchForest
	}
	switch {
	case temperature < 0.2:
		return IDMountains
	case temperature < 0.7:
		return IDSmallMountains
	}
	return IDRiver
}

// Select returns the biome for a temperature and moisture, both clamped to [0, 1].
func Select(temperature, moisture float64) Biome {
	t := mathutil.Round(mathutil.Clamp01(temperature) * (lookupSize - 1))
	m := mathutil.Round(mathutil.Clamp01(moisture) * (lookupSize - 1))
	return biomes[lookup[t+m*lookupSize]]
}
