package blend

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/df-mc/terragen/cell"
	"github.com/df-mc/terragen/internal/mathutil"
	"github.com/df-mc/terragen/noise"
)

// maxWeightRatio is the largest allowed ratio between a weight and the smallest weight. It bounds
// the length of the backing slice of a Selector.
const maxWeightRatio = 1 << 16

// Weighted pairs a populator with its relative selection weight.
type Weighted struct {
	Populator cell.Populator
	Weight    float64
}

// Selector picks exactly one of several populators per coordinate without blending. Weights are
// expanded into a backing slice in which every populator appears round(weight/smallest weight)
// times; the control value, clamped to [0, 1], then indexes that slice at round(v * (len-1)).
type Selector struct {
	Select
	nodes []cell.Populator
}

// NewSelector creates a Selector.
func NewSelector(control noise.Module, populators []Weighted) (*Selector, error) {
	if control == nil {
		return nil, ErrNilModule
	}
	if len(populators) == 0 {
		return nil, ErrNoPopulators
	}
	weights := make([]float64, len(populators))
	for i, p := range populators {
		if p.Populator == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilPopulator, i)
		}
		if !(p.Weight > 0) || math.IsInf(p.Weight, 1) {
			return nil, fmt.Errorf("%w: index %d has weight %v", ErrWeight, i, p.Weight)
		}
		weights[i] = p.Weight
	}
	smallest := floats.Min(weights)

	var nodes []cell.Populator
	for i, p := range populators {
		ratio := p.Weight / smallest
		if math.IsInf(ratio, 0) || ratio > maxWeightRatio {
			return nil, fmt.Errorf("%w: index %d has weight %v, over %v times the smallest", ErrWeight, i, p.Weight, maxWeightRatio)
		}
		n := max(mathutil.Round(ratio), 1)
		for i := 0; i < n; i++ {
			nodes = append(nodes, p.Populator)
		}
	}
	return &Selector{Select: Select{Control: control}, nodes: nodes}, nil
}

// Len returns the length of the expanded backing slice.
func (s *Selector) Len() int {
	return len(s.nodes)
}

func (s *Selector) node(x, y float64) cell.Populator {
	v := mathutil.Clamp01(s.Eval(x, y))
	return s.nodes[mathutil.Round(v*float64(len(s.nodes)-1))]
}

// Apply ...
func (s *Selector) Apply(c *cell.Cell, x, y float64) {
	s.node(x, y).Apply(c, x, y)
}

// Tag ...
func (s *Selector) Tag(c *cell.Cell, x, y float64) {
	s.node(x, y).Tag(c, x, y)
}
