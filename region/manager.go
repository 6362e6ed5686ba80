package region

import (
	"fmt"
	"iter"
)

// NewManager returns an empty Manager.
func NewManager[T Aggregate[T]]() *Manager[T] {
	return &Manager[T]{}
}

// NewRegion allocates a fresh region holding the zero aggregate and exactly
// one sub-region, and returns that sub-region's handle. A slot freed by an
// earlier Merge is reused when available.
func (m *Manager[T]) NewRegion() SubRegion {
	h := SubRegion(len(m.owner))
	e := entry[T]{subRegions: []SubRegion{h}, live: true}

	var slot int
	if n := len(m.freed); n > 0 {
		slot = m.freed[n-1]
		m.freed = m.freed[:n-1]
		m.regions[slot] = e
	} else {
		slot = len(m.regions)
		m.regions = append(m.regions, e)
	}
	m.owner = append(m.owner, slot)
	m.live++

	return h
}

// Merge joins the regions owning a and b and returns a.
//
// If both handles already resolve to the same region nothing changes.
// Otherwise b's region is dissolved: its aggregate is merged into a's, its
// sub-regions are appended to a's and redirected, and its slot is freed.
func (m *Manager[T]) Merge(a, b SubRegion) SubRegion {
	to, from := m.slot(a), m.slot(b)
	if to == from {
		return a
	}

	src := m.regions[from]
	m.regions[from] = entry[T]{}
	m.freed = append(m.freed, from)
	m.live--

	dst := &m.regions[to]
	dst.value = dst.value.Merge(src.value)
	dst.subRegions = append(dst.subRegions, src.subRegions...)
	for _, h := range src.subRegions {
		m.owner[h] = to
	}

	return a
}

// Same reports whether a and b currently resolve to the same region.
func (m *Manager[T]) Same(a, b SubRegion) bool {
	return m.slot(a) == m.slot(b)
}

// Region returns the live aggregate owning h for in-place mutation.
// The pointer is valid until the next NewRegion or Merge.
func (m *Manager[T]) Region(h SubRegion) *T {
	return &m.regions[m.slot(h)].value
}

// Add merges contribution into the aggregate of the region owning h.
func (m *Manager[T]) Add(h SubRegion, contribution T) {
	r := m.Region(h)
	*r = (*r).Merge(contribution)
}

// Regions yields every live aggregate in slot order.
func (m *Manager[T]) Regions() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range m.regions {
			if !m.regions[i].live {
				continue
			}
			if !yield(m.regions[i].value) {
				return
			}
		}
	}
}

// Len returns the number of live regions.
func (m *Manager[T]) Len() int {
	return m.live
}

// SubRegions returns the number of handles issued so far.
func (m *Manager[T]) SubRegions() int {
	return len(m.owner)
}

// Slots returns the number of allocated region slots, live or free.
func (m *Manager[T]) Slots() int {
	return len(m.regions)
}

// slot resolves h to its region slot. Handles not issued by m are a
// programmer error.
func (m *Manager[T]) slot(h SubRegion) int {
	if h < 0 || int(h) >= len(m.owner) {
		panic(fmt.Sprintf("region: unknown sub-region %d", h))
	}
	return m.owner[h]
}
