package blend

import (
	"fmt"
	"math"

	"github.com/df-mc/terragen/cell"
	"github.com/df-mc/terragen/internal/mathutil"
	"github.com/df-mc/terragen/noise"
)

// BlenderConfig configures a Blender.
type BlenderConfig struct {
	// Min and Max bound the control range over which the two sides are blended. Below Min only the
	// lower side is evaluated, above Max only the upper side.
	Min, Max float64
	// Split is the relative position in [Min, Max] at which both sides contribute equally. Defaults
	// to 0.5.
	Split float64
	// TagSplit is the relative position in [Min, Max] at which the tag switches from the lower to
	// the upper side. It is independent of Split so that the classification can change earlier or
	// later than the visual blend. Defaults to Split.
	TagSplit float64
	// Mask multiplies Cell.Mask by the blend factor.
	Mask bool
}

// Blender cross-fades between a lower and an upper populator over a sub-range of the control signal.
type Blender struct {
	Select
	lower, upper cell.Populator

	min, max, span float64
	split          float64
	tagThreshold   float64
	mask           bool
}

// NewBlender creates a Blender.
func NewBlender(control noise.Module, lower, upper cell.Populator, conf BlenderConfig) (*Blender, error) {
	if control == nil {
		return nil, ErrNilModule
	}
	if err := checkPopulators(lower, upper); err != nil {
		return nil, err
	}
	if !(conf.Min < conf.Max) || math.IsInf(conf.Max-conf.Min, 0) {
		return nil, fmt.Errorf("%w: min %v, max %v", ErrEmptyRange, conf.Min, conf.Max)
	}
	if conf.Split == 0 {
		conf.Split = 0.5
	}
	if !(conf.Split > 0 && conf.Split < 1) {
		return nil, fmt.Errorf("%w: split %v", ErrSplit, conf.Split)
	}
	if conf.TagSplit == 0 {
		conf.TagSplit = conf.Split
	}
	if !(conf.TagSplit > 0 && conf.TagSplit < 1) {
		return nil, fmt.Errorf("%w: tag split %v", ErrSplit, conf.TagSplit)
	}
	span := conf.Max - conf.Min
	return &Blender{
		Select:       Select{Control: control},
		lower:        lower,
		upper:        upper,
		min:          conf.Min,
		max:          conf.Max,
		span:         span,
		split:        conf.Split,
		tagThreshold: conf.Min + span*conf.TagSplit,
		mask:         conf.Mask,
	}, nil
}

// factor maps a control value inside [min, max] to a blend factor in [0, 1] that reaches 0.5 at the
// split point.
func (b *Blender) factor(v float64) float64 {
	a := mathutil.Clamp01((v - b.min) / b.span)
	if a < b.split {
		return 0.5 * a / b.split
	}
	return 0.5 + 0.5*(a-b.split)/(1-b.split)
}

// Apply ...
func (b *Blender) Apply(c *cell.Cell, x, y float64) {
	v := b.Eval(x, y)
	if v < b.min {
		b.lower.Apply(c, x, y)
		b.applyMask(c, 0)
		return
	}
	if v > b.max {
		b.upper.Apply(c, x, y)
		b.applyMask(c, 1)
		return
	}
	alpha := b.factor(v)

	b.lower.Apply(c, x, y)
	lowerVal, lowerTag := c.Value, c.Tag
	b.upper.Apply(c, x, y)
	c.Value = mathutil.Lerp(lowerVal, c.Value, alpha)
	if v < b.tagThreshold {
		c.Tag = lowerTag
	}
	b.applyMask(c, alpha)
}

func (b *Blender) applyMask(c *cell.Cell, alpha float64) {
	if b.mask {
		c.Mask *= alpha
	}
}

// Tag ...
func (b *Blender) Tag(c *cell.Cell, x, y float64) {
	if b.Eval(x, y) < b.tagThreshold {
		b.lower.Tag(c, x, y)
		return
	}
	b.upper.Tag(c, x, y)
}
