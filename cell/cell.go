// Package cell holds the Cell scratch record written by generators and the Populator interface that
// terrain generators and blend combinators implement.
package cell

import "sync"

// Cell carries the output of one generator query. It is scratch space: its fields are only
// meaningful directly after a Populator or climate sampler has written them for one coordinate, and
// a Cell must not be read as the state of any other coordinate.
type Cell struct {
	// Value is the normalised terrain height in [0, 1].
	Value float64
	// Tag classifies the terrain or biome that produced Value.
	Tag *Tag
	// Temperature and Moisture are the climate fields in [0, 1].
	Temperature, Moisture float64
	// Edge is 1 at the anchor of the climate cell and falls to 0 towards its boundary.
	Edge float64
	// CellID identifies the climate cell the coordinate fell in.
	CellID uint32
	// Identity is CellID mapped to [0, 1). It is constant across a climate cell.
	Identity float64
	// Mask is a multiplicative weight accumulator, reset to 1.
	Mask float64
}

// Reset clears c for reuse.
func (c *Cell) Reset() {
	*c = Cell{Mask: 1}
}

var pool = sync.Pool{New: func() any {
	return &Cell{Mask: 1}
}}

// Get takes a reset Cell from the pool. The caller owns it until it is handed back with Put.
func Get() *Cell {
	c := pool.Get().(*Cell)
	c.Reset()
	return c
}

// Put returns c to the pool. c must not be used after Put returns.
func Put(c *Cell) {
	pool.Put(c)
}
