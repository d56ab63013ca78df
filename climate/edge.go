package climate

import (
	"fmt"
	"strings"
)

// EdgeFunc turns the distances to the nearest (d1) and second nearest (d2) anchors into a raw edge
// value. The edge metric is 1 minus that value normalised over the range of the function.
type EdgeFunc uint8

const (
	// EdgeDiv uses d1/d2. It is 0 at an anchor and 1 on a boundary regardless of cell size.
	EdgeDiv EdgeFunc = iota
	// EdgeDiv2 uses d1²/d2², giving wider cell interiors and sharper falloff near boundaries.
	EdgeDiv2
	// EdgeSub uses d1-d2 over d1+d2. It falls off linearly in the gap between the two anchors,
	// which keeps the boundary band narrower than div near the anchor.
	EdgeSub
)

type edgeRange struct {
	apply    func(d1, d2 float64) float64
	min, max float64
	name     string
}

var edgeFuncs = map[EdgeFunc]edgeRange{
	EdgeDiv:  {apply: func(d1, d2 float64) float64 { return d1 / d2 }, min: 0, max: 1, name: "div"},
	EdgeDiv2: {apply: func(d1, d2 float64) float64 { return (d1 * d1) / (d2 * d2) }, min: 0, max: 1, name: "div2"},
	EdgeSub:  {apply: func(d1, d2 float64) float64 { return (d1 - d2) / (d1 + d2) }, min: -1, max: 0, name: "sub"},
}

// ParseEdgeFunc parses the name of an edge function ("div", "div2" or "sub").
func ParseEdgeFunc(name string) (EdgeFunc, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return EdgeDiv, nil
	}
	for f, r := range edgeFuncs {
		if r.name == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("climate: unknown edge function %q", name)
}

// String ...
func (f EdgeFunc) String() string {
	if r, ok := edgeFuncs[f]; ok {
		return r.name
	}
	return fmt.Sprintf("EdgeFunc(%d)", uint8(f))
}

// edge computes the normalised edge metric. It is 1 at an anchor and 0 where d1 == d2.
func (f EdgeFunc) edge(d1, d2 float64) float64 {
	if d2 <= 0 {
		return 0
	}
	r := edgeFuncs[f]
	return 1 - (r.apply(d1, d2)-r.min)/(r.max-r.min)
}
