package climate

import (
	"errors"
	"fmt"

	"github.com/df-mc/terragen/noise"
)

var (
	// ErrScale is returned when the cell scale is negative or not finite.
	ErrScale = errors.New("climate: scale must be positive")
	// ErrJitter is returned when the jitter falls outside (0, 0.5].
	ErrJitter = errors.New("climate: jitter must be in (0, 0.5]")
	// ErrThresholds is returned when the altitude thresholds are not ordered 0 < lower < mid < upper <= 1.
	ErrThresholds = errors.New("climate: altitude thresholds must satisfy 0 < lower < mid < upper <= 1")
	// ErrNilModule is returned when a required field Module is missing.
	ErrNilModule = errors.New("climate: missing noise module")
)

// Config holds the parameters of a Sampler. Zero numeric values are replaced with defaults by
// withDefaults; values that are set but invalid are rejected by New.
type Config struct {
	// Seed is the hash seed of the cell lattice, usually taken from seed.Seed.Next.
	Seed int32
	// Scale is the size of a climate cell in blocks. Defaults to 256.
	Scale float64
	// Jitter is how far, in cell units, an anchor may move away from its lattice point. Defaults
	// to 0.45.
	Jitter float64
	// WarpX and WarpY displace sample coordinates before the cell lookup. Both must be set for the
	// warp to apply. Their output is expected in [0, 1].
	WarpX, WarpY noise.Module
	// WarpStrength is the maximum displacement in blocks.
	WarpStrength float64
	// Temperature and Moisture are sampled at the anchor of the nearest cell, giving every cell a
	// constant baseline.
	Temperature, Moisture noise.Module
	// TemperatureDetail and MoistureDetail are optional and sampled at the raw coordinate. They add
	// local variation of at most Variation on top of the baseline.
	TemperatureDetail, MoistureDetail noise.Module
	// Variation is the amplitude of the local variation.
	Variation float64
	// EdgeFunc selects how the nearest two distances are turned into the edge metric.
	EdgeFunc EdgeFunc
	// Height, if set, is used by Sample to provide the terrain height for altitude correction.
	// Apply reads the height from the Cell instead.
	Height noise.Module
	// Altitude configures how terrain height pulls the temperature.
	Altitude Altitude
}

// Altitude configures the height correction of temperature. Above Mid the temperature is pulled
// towards 0, reaching 0 at Upper. Below Lower it is pulled towards 1 by OceanWarmth at most.
type Altitude struct {
	Enabled           bool
	Lower, Mid, Upper float64
	OceanWarmth       float64
}

func (c Config) withDefaults() Config {
	if c.Scale == 0 {
		c.Scale = 256
	}
	if c.Jitter == 0 {
		c.Jitter = 0.45
	}
	return c
}

func (c Config) validate() error {
	if !(c.Scale > 0) || c.Scale > 1<<30 {
		return fmt.Errorf("%w: got %v", ErrScale, c.Scale)
	}
	if !(c.Jitter > 0 && c.Jitter <= 0.5) {
		return fmt.Errorf("%w: got %v", ErrJitter, c.Jitter)
	}
	if c.Temperature == nil {
		return fmt.Errorf("%w: temperature", ErrNilModule)
	}
	if c.Moisture == nil {
		return fmt.Errorf("%w: moisture", ErrNilModule)
	}
	if _, ok := edgeFuncs[c.EdgeFunc]; !ok {
		return fmt.Errorf("climate: unknown edge function %d", c.EdgeFunc)
	}
	if a := c.Altitude; a.Enabled {
		if !(a.Lower > 0 && a.Lower < a.Mid && a.Mid < a.Upper && a.Upper <= 1) {
			return fmt.Errorf("%w: got %v/%v/%v", ErrThresholds, a.Lower, a.Mid, a.Upper)
		}
		if a.OceanWarmth < 0 || a.OceanWarmth > 1 {
			return fmt.Errorf("%w: ocean warmth %v outside [0, 1]", ErrThresholds, a.OceanWarmth)
		}
	}
	return nil
}
