package cell

import "github.com/df-mc/terragen/noise"

// Populator writes terrain into a Cell for a coordinate. Implementations must not keep any mutable
// state that influences results: the output may depend only on x, y and the outputs of nested
// Populators for the same coordinate.
type Populator interface {
	// Apply computes Value and Tag for (x, y).
	Apply(c *Cell, x, y float64)
	// Tag computes only Tag for (x, y). It is the cheap path used when the height is not needed,
	// and it may leave Value untouched.
	Tag(c *Cell, x, y float64)
}

// Constant is a Populator writing a fixed value and tag.
type Constant struct {
	Value float64
	Type  *Tag
}

// Apply ...
func (p Constant) Apply(c *Cell, _, _ float64) {
	c.Value = p.Value
	c.Tag = p.Type
}

// Tag ...
func (p Constant) Tag(c *Cell, _, _ float64) {
	c.Tag = p.Type
}

// Terrain is a Populator taking its height from a Module and tagging every coordinate with Type.
type Terrain struct {
	Height noise.Module
	Type   *Tag
}

// Apply ...
func (p Terrain) Apply(c *Cell, x, y float64) {
	c.Value = p.Height.Value(x, y)
	c.Tag = p.Type
}

// Tag ...
func (p Terrain) Tag(c *Cell, _, _ float64) {
	c.Tag = p.Type
}
