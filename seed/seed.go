// Package seed implements the hierarchical seed counter and the fixed hash functions that every
// generator component draws its randomness from.
package seed

import (
	"github.com/segmentio/fasthash/fnv1a"
)

// Seed is a hierarchical counter. Next returns root+1, root+2, ... in call order, so two Seeds built
// from the same root and consumed in the same order hand out identical sub-seeds. The order in
// which components call Next is therefore part of their public contract.
//
// A Seed is not safe for concurrent use. It is meant to be consumed while a generator is built and
// then discarded.
type Seed struct {
	root  int32
	value int32
}

// New creates a Seed from a 64-bit world seed. The two halves are folded together so that seeds
// differing only in their upper 32 bits still produce different sequences.
func New(root int64) *Seed {
	r := int32(root) ^ int32(root>>32)
	return &Seed{root: r, value: r}
}

// Root returns the value the counter started from.
func (s *Seed) Root() int32 {
	return s.root
}

// Next advances the counter and returns the new value.
func (s *Seed) Next() int32 {
	s.value++
	return s.value
}

// Derive spawns an independent child counter rooted at the next value of s.
func (s *Seed) Derive() *Seed {
	v := s.Next()
	return &Seed{root: v, value: v}
}

// Named derives a child counter from the root of s and name without advancing s. Subsystems built
// through Named keep their seeds when unrelated components are added or reordered.
func (s *Seed) Named(name string) *Seed {
	h := fnv1a.AddString64(fnv1a.AddUint64(fnv1a.Init64, uint64(uint32(s.root))), name)
	v := int32(h) ^ int32(h>>32)
	return &Seed{root: v, value: v}
}
