package poisson

import (
	"sync"
)

// Region identifies a region of tiles sharing one seed.
type Region struct {
	X, Z int32
}

// Stats holds the counters of a single region.
type Stats struct {
	// Visits is the number of times the region was replayed.
	Visits uint64
	// Accepted and Rejected count candidates over all visits, the start point included in Accepted.
	Accepted, Rejected uint64
}

// Metrics tracks per-region counters for observability. A nil *Metrics discards everything.
type Metrics struct {
	mu sync.Mutex

	visits   map[Region]uint64
	accepted map[Region]uint64
	rejected map[Region]uint64
}

// NewMetrics creates an empty metrics registry.
func NewMetrics() *Metrics {
	return &Metrics{
		visits:   make(map[Region]uint64),
		accepted: make(map[Region]uint64),
		rejected: make(map[Region]uint64),
	}
}

// AddVisit records one visit of a region with the candidate counts of that visit.
func (m *Metrics) AddVisit(r Region, accepted, rejected int) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.visits[r]++
	m.accepted[r] += uint64(accepted)
	m.rejected[r] += uint64(rejected)
	m.mu.Unlock()
}

// Region returns the counters of a single region.
func (m *Metrics) Region(r Region) Stats {
	if m == nil {
		return Stats{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return Stats{Visits: m.visits[r], Accepted: m.accepted[r], Rejected: m.rejected[r]}
}

// Total returns the counters summed over all regions.
func (m *Metrics) Total() Stats {
	if m == nil {
		return Stats{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var s Stats
	for r, v := range m.visits {
		s.Visits += v
		s.Accepted += m.accepted[r]
		s.Rejected += m.rejected[r]
	}
	return s
}

// Regions returns the number of distinct regions visited.
func (m *Metrics) Regions() int {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.visits)
}
