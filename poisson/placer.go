// Package poisson scatters points with an approximate minimum spacing (Poisson disc sampling) over
// an unbounded plane, one tile at a time.
//
// The plane is divided into regions of several tiles. All randomness of a region comes from a seed
// derived from the world seed and the region coordinates, and each tile visit replays the whole
// region, reporting only the points inside the tile. A point therefore belongs to exactly one tile
// and is reported by that tile no matter which tiles were visited before it or in what order.
package poisson

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df-mc/terragen/internal/mathutil"
	"github.com/df-mc/terragen/noise"
	"github.com/df-mc/terragen/seed"
)

// Placer scatters points. It is immutable after construction and safe for concurrent use; all
// per-visit state lives in pooled Contexts.
type Placer struct {
	seed    int64
	samples int
	metrics *Metrics

	radius     int
	radius2    float64
	halfRadius int
	// working is the width of the area in a region where points may be placed.
	working  int
	cellSize float64
	gridSize int

	tileSize, regionSize int

	pool sync.Pool
}

// New creates a Placer from conf.
func New(conf Config) (*Placer, error) {
	conf = conf.withDefaults()
	if err := conf.validate(); err != nil {
		return nil, err
	}
	r := conf.clampRadius()
	p := &Placer{
		seed:       conf.Seed,
		samples:    conf.Samples,
		metrics:    conf.Metrics,
		radius:     r,
		radius2:    float64(r * r),
		halfRadius: r / 2,
		working:    conf.RegionSize - r,
		cellSize:   float64(r) / math.Sqrt2,
		tileSize:   conf.TileSize,
		regionSize: conf.RegionSize,
	}
	p.gridSize = int(math.Ceil(float64(p.working) / p.cellSize))
	p.pool.New = func() any {
		return newContext(p.gridSize)
	}
	return p, nil
}

// Radius returns the clamped minimum spacing.
func (p *Placer) Radius() int {
	return p.radius
}

// TileSize returns the width of the window reported by Visit.
func (p *Placer) TileSize() int {
	return p.tileSize
}

// RegionSize returns the width of a region.
func (p *Placer) RegionSize() int {
	return p.regionSize
}

// Region returns the coordinates of the region containing the tile passed.
func (p *Placer) Region(tileX, tileZ int32) (rx, rz int32) {
	return int32(mathutil.FloorDiv(int(tileX)*p.tileSize, p.regionSize)), int32(mathutil.FloorDiv(int(tileZ)*p.tileSize, p.regionSize))
}

// Visit calls fn with the world coordinates of every point inside the tile (tileX, tileZ). density is
// sampled at the world coordinates of each candidate and scales the squared minimum spacing; nil
// means a density of 1 everywhere. fn is called synchronously, in a deterministic order, and must
// not retain the Placer's state.
func (p *Placer) Visit(tileX, tileZ int32, density noise.Module, fn func(x, z int)) {
	x0, z0 := int(tileX)*p.tileSize, int(tileZ)*p.tileSize
	rx, rz := p.Region(tileX, tileZ)
	p.visit(rx, rz, density, x0, z0, x0+p.tileSize, z0+p.tileSize, fn)
}

// VisitRegion calls fn with the world coordinates of every point in the region (rx, rz).
func (p *Placer) VisitRegion(rx, rz int32, density noise.Module, fn func(x, z int)) {
	x0, z0 := int(rx)*p.regionSize, int(rz)*p.regionSize
	p.visit(rx, rz, density, x0, z0, x0+p.regionSize, z0+p.regionSize, fn)
}

func (p *Placer) visit(rx, rz int32, density noise.Module, startX, startZ, endX, endZ int, fn func(x, z int)) {
	ctx := p.pool.Get().(*Context)
	defer func() {
		ctx.release()
		p.pool.Put(ctx)
	}()

	ctx.reset(seed.RegionSeed(p.seed, rx, rz), density)
	ctx.offsetX = int(rx)*p.regionSize + p.halfRadius
	ctx.offsetZ = int(rz)*p.regionSize + p.halfRadius
	ctx.startX, ctx.startZ, ctx.endX, ctx.endZ = startX, startZ, endX, endZ

	x, z := int(ctx.random.Int31n(int32(p.working))), int(ctx.random.Int31n(int32(p.working)))
	p.accept(ctx, x, z, fn)

	for len(ctx.stack) > 0 {
		top := &ctx.stack[len(ctx.stack)-1]
		if top.remaining == 0 {
			ctx.stack = ctx.stack[:len(ctx.stack)-1]
			continue
		}
		top.remaining--

		angle := ctx.random.Float64() * 2 * math.Pi
		distance := mathutil.Lerp(float64(p.radius), float64(3*p.radius), ctx.random.Float64())
		sin, cos := math.Sincos(angle)
		offset := mgl64.Vec2{cos, sin}.Mul(distance)
		cx, cz := top.x+mathutil.Round(offset[0]), top.z+mathutil.Round(offset[1])

		if p.valid(ctx, cx, cz) {
			p.accept(ctx, cx, cz, fn)
		} else {
			ctx.rejected++
		}
	}

	p.metrics.AddVisit(Region{X: rx, Z: rz}, ctx.accepted, ctx.rejected)
}

// accept inserts the point into the grid, queues it for candidate throwing and reports it if it lies
// in the window of the visit.
func (p *Placer) accept(ctx *Context, x, z int, fn func(x, z int)) {
	gx, gz := p.gridIndex(x), p.gridIndex(z)
	ctx.grid[gz*p.gridSize+gx] = point{x: x, z: z, ok: true}
	ctx.stack = append(ctx.stack, frame{x: x, z: z, remaining: p.samples})
	ctx.accepted++

	wx, wz := x+ctx.offsetX, z+ctx.offsetZ
	if ctx.inWindow(wx, wz) {
		fn(wx, wz)
	}
}

// valid reports if a candidate in region-local coordinates may be accepted: it must lie inside the
// working area, its grid cell must be empty and no point in the surrounding 5x5 cells may be closer
// than the density-scaled radius.
func (p *Placer) valid(ctx *Context, x, z int) bool {
	if x < 0 || z < 0 || x >= p.working || z >= p.working {
		return false
	}
	gx, gz := p.gridIndex(x), p.gridIndex(z)
	if ctx.grid[gz*p.gridSize+gx].ok {
		return false
	}
	limit := ctx.densityAt(x+ctx.offsetX, z+ctx.offsetZ) * p.radius2
	candidate := mgl64.Vec2{float64(x), float64(z)}

	for j := max(gz-2, 0); j <= min(gz+2, p.gridSize-1); j++ {
		for i := max(gx-2, 0); i <= min(gx+2, p.gridSize-1); i++ {
			q := ctx.grid[j*p.gridSize+i]
			if !q.ok {
				continue
			}
			d := candidate.Sub(mgl64.Vec2{float64(q.x), float64(q.z)})
			if d.Dot(d) < limit {
				return false
			}
		}
	}
	return true
}

func (p *Placer) gridIndex(v int) int {
	return min(int(float64(v)/p.cellSize), p.gridSize-1)
}
