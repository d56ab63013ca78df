package cell

import (
	"testing"

	"github.com/df-mc/terragen/noise"
)

func TestGetReturnsResetCell(t *testing.T) {
	c := Get()
	c.Value, c.Edge, c.Mask, c.CellID = 0.7, 0.3, 0.1, 9
	Put(c)

	c = Get()
	defer Put(c)
	if c.Value != 0 || c.Edge != 0 || c.CellID != 0 || c.Tag != nil {
		t.Fatalf("expected pooled cell to be reset, got %+v", *c)
	}
	if c.Mask != 1 {
		t.Fatalf("expected mask to reset to 1, got %v", c.Mask)
	}
}

func TestTagContains(t *testing.T) {
	ocean := NewTag(0, "ocean", 0.45)
	if !ocean.Contains(0.45) || ocean.Contains(0.46) {
		t.Fatalf("expected ocean to accept values up to 0.45")
	}
	var none *Tag
	if !none.Contains(10) {
		t.Fatalf("expected nil tag to contain every value")
	}
	if none.Name() != "none" || ocean.String() != "ocean" {
		t.Fatalf("unexpected tag names %q and %q", none.Name(), ocean.String())
	}
}

func TestLeafPopulators(t *testing.T) {
	tag := NewTag(1, "plains", 1)
	c := &Cell{}
	Constant{Value: 0.4, Type: tag}.Apply(c, 0, 0)
	if c.Value != 0.4 || c.Tag != tag {
		t.Fatalf("expected constant populator output, got %+v", *c)
	}

	c.Reset()
	Terrain{Height: noise.Constant(0.25), Type: tag}.Tag(c, 0, 0)
	if c.Tag != tag || c.Value != 0 {
		t.Fatalf("expected tag-only path to leave the value untouched, got %+v", *c)
	}
	Terrain{Height: noise.Constant(0.25), Type: tag}.Apply(c, 0, 0)
	if c.Value != 0.25 {
		t.Fatalf("expected 0.25, got %v", c.Value)
	}
}
