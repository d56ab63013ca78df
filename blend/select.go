// Package blend implements the combinators that compose several cell.Populators into one, driven by
// a control signal: continuous cross-fades (Lerp, Blender, MultiBlender) and a discrete weighted
// choice (Selector).
//
// Every combinator is immutable after construction and safe for concurrent use. The output at a
// coordinate depends only on the control signal and the sub-populators at that coordinate.
package blend

import (
	"errors"

	"github.com/df-mc/terragen/cell"
	"github.com/df-mc/terragen/noise"
)

var (
	// ErrNilModule is returned when a combinator is built without a control signal.
	ErrNilModule = errors.New("blend: control module must not be nil")
	// ErrNilPopulator is returned when a sub-populator is nil.
	ErrNilPopulator = errors.New("blend: populator must not be nil")
	// ErrEmptyRange is returned when a blend range collapses to zero or is inverted.
	ErrEmptyRange = errors.New("blend: range bounds must be strictly increasing")
	// ErrSplit is returned when a split point lies outside (0, 1).
	ErrSplit = errors.New("blend: split must be in (0, 1)")
	// ErrNoPopulators is returned when a Selector is built without populators.
	ErrNoPopulators = errors.New("blend: selector needs at least one populator")
	// ErrWeight is returned when a selector weight is not a positive finite number.
	ErrWeight = errors.New("blend: weight must be positive and finite")
)

// Select evaluates the control signal shared by all combinators.
type Select struct {
	Control noise.Module
}

// Eval returns the control value at (x, y).
func (s Select) Eval(x, y float64) float64 {
	return s.Control.Value(x, y)
}

func checkPopulators(p ...cell.Populator) error {
	for _, pop := range p {
		if pop == nil {
			return ErrNilPopulator
		}
	}
	return nil
}
