package blend

import (
	"fmt"

	"github.com/df-mc/terragen/cell"
	"github.com/df-mc/terragen/internal/mathutil"
	"github.com/df-mc/terragen/noise"
)

// MultiBlender blends three populators across two sub-ranges of the control signal: lower to middle
// over [min, mid] and middle to upper over [mid, max]. Each half is normalised on its own and eased
// with a cubic curve.
//
// Tags are resolved asymmetrically. In the lower half the blended value is checked against the
// lower tag: if the lower tag no longer contains it, the middle tag is used instead. The upper half
// performs no such check and always reports the upper tag.
type MultiBlender struct {
	Select
	lower, middle, upper cell.Populator

	min, mid, max        float64
	lowerSpan, upperSpan float64
}

// NewMultiBlender creates a MultiBlender. min < mid < max must hold.
func NewMultiBlender(control noise.Module, lower, middle, upper cell.Populator, min, mid, max float64) (*MultiBlender, error) {
	if control == nil {
		return nil, ErrNilModule
	}
	if err := checkPopulators(lower, middle, upper); err != nil {
		return nil, err
	}
	if !(min < mid && mid < max) {
		return nil, fmt.Errorf("%w: min %v, mid %v, max %v", ErrEmptyRange, min, mid, max)
	}
	return &MultiBlender{
		Select:    Select{Control: control},
		lower:     lower,
		middle:    middle,
		upper:     upper,
		min:       min,
		mid:       mid,
		max:       max,
		lowerSpan: mid - min,
		upperSpan: max - mid,
	}, nil
}

// Apply ...
func (m *MultiBlender) Apply(c *cell.Cell, x, y float64) {
	v := m.Eval(x, y)
	switch {
	case v < m.min:
		m.lower.Apply(c, x, y)
	case v > m.max:
		m.upper.Apply(c, x, y)
	case v < m.mid:
		m.applyLower(c, x, y, v)
	default:
		alpha := mathutil.Smoothstep((v - m.mid) / m.upperSpan)
		m.middle.Apply(c, x, y)
		middleVal := c.Value
		m.upper.Apply(c, x, y)
		c.Value = mathutil.Lerp(middleVal, c.Value, alpha)
	}
}

func (m *MultiBlender) applyLower(c *cell.Cell, x, y, v float64) {
	alpha := mathutil.Smoothstep((v - m.min) / m.lowerSpan)
	m.lower.Apply(c, x, y)
	lowerVal, lowerTag := c.Value, c.Tag
	m.middle.Apply(c, x, y)
	c.Value = mathutil.Lerp(lowerVal, c.Value, alpha)
	if lowerTag.Contains(c.Value) {
		c.Tag = lowerTag
	}
}

// Tag ...
func (m *MultiBlender) Tag(c *cell.Cell, x, y float64) {
	v := m.Eval(x, y)
	switch {
	case v < m.min:
		m.lower.Tag(c, x, y)
	case v < m.mid:
		// The lower half classifies by the blended value, so it needs the full computation.
		value := c.Value
		m.applyLower(c, x, y, v)
		c.Value = value
	default:
		m.upper.Tag(c, x, y)
	}
}
