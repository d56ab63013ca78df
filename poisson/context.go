package poisson

import (
	"github.com/df-mc/terragen/noise"
	"github.com/df-mc/terragen/rand"
)

// point is an accepted point in region-local coordinates.
type point struct {
	x, z int
	ok   bool
}

// frame is an accepted point that still has candidates left to throw.
type frame struct {
	x, z      int
	remaining int
}

// Context is the mutable state of one tile visit: the region RNG, the density field, the offsets of
// the region and the reporting window, and the acceleration grid. A Context is taken from the pool
// of its Placer for the duration of one visit and reset before it is used again.
type Context struct {
	random     *rand.Random
	regionSeed int64
	density    noise.Module

	// offsetX and offsetZ are the world coordinates of the local origin of the working area.
	offsetX, offsetZ int
	// startX, startZ, endX and endZ bound the reported window in world coordinates, end exclusive.
	startX, startZ, endX, endZ int

	grid     []point
	gridSize int
	stack    []frame

	accepted, rejected int
}

func newContext(gridSize int) *Context {
	return &Context{
		random:   rand.NewRandom(0),
		grid:     make([]point, gridSize*gridSize),
		gridSize: gridSize,
	}
}

// reset prepares the context for a visit to the region with the seed passed.
func (ctx *Context) reset(regionSeed int64, density noise.Module) {
	clear(ctx.grid)
	ctx.stack = ctx.stack[:0]
	ctx.regionSeed = regionSeed
	ctx.random.SetSeed(regionSeed)
	ctx.density = density
	ctx.accepted, ctx.rejected = 0, 0
}

// release drops references held by the context before it is returned to the pool.
func (ctx *Context) release() {
	ctx.density = nil
}

func (ctx *Context) densityAt(x, z int) float64 {
	if ctx.density == nil {
		return 1
	}
	return max(ctx.density.Value(float64(x), float64(z)), 0)
}

func (ctx *Context) inWindow(x, z int) bool {
	return x >= ctx.startX && x < ctx.endX && z >= ctx.startZ && z < ctx.endZ
}
