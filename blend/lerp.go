package blend

import (
	"github.com/df-mc/terragen/cell"
	"github.com/df-mc/terragen/internal/mathutil"
	"github.com/df-mc/terragen/noise"
)

// Lerp cross-fades between two populators using the control value, clamped to [0, 1], directly as
// the interpolation factor. At exactly 0 or 1 only one side is evaluated.
type Lerp struct {
	Select
	lower, upper cell.Populator
}

// NewLerp creates a Lerp.
func NewLerp(control noise.Module, lower, upper cell.Populator) (*Lerp, error) {
	if control == nil {
		return nil, ErrNilModule
	}
	if err := checkPopulators(lower, upper); err != nil {
		return nil, err
	}
	return &Lerp{Select: Select{Control: control}, lower: lower, upper: upper}, nil
}

// Apply ...
func (l *Lerp) Apply(c *cell.Cell, x, y float64) {
	alpha := mathutil.Clamp01(l.Eval(x, y))
	switch alpha {
	case 0:
		l.lower.Apply(c, x, y)
		return
	case 1:
		l.upper.Apply(c, x, y)
		return
	}
	l.lower.Apply(c, x, y)
	lowerVal, lowerTag := c.Value, c.Tag
	l.upper.Apply(c, x, y)
	c.Value = mathutil.Lerp(lowerVal, c.Value, alpha)
	if alpha < 0.5 {
		c.Tag = lowerTag
	}
}

// Tag ...
func (l *Lerp) Tag(c *cell.Cell, x, y float64) {
	if mathutil.Clamp01(l.Eval(x, y)) < 0.5 {
		l.lower.Tag(c, x, y)
		return
	}
	l.upper.Tag(c, x, y)
}
