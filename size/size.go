// SPDX-License-Identifier: Unlicense OR MIT

/*
Package size distributes the pixels of an axis over its positions.

Distribute hands out a target size in four passes: every position first
receives its minimum, then the budget left is prorated toward the
preferred sizes, then toward the finite maximums, and whatever remains
is split over the positions that may grow without bound.
*/
package size

import (
	"golang.org/x/exp/slices"

	"gioui.org/grid/axis"
	"gioui.org/grid/metrics"
)

// Span is the placement of a position along an axis.
type Span struct {
	Pos         axis.Pos
	Start, Size int
}

// End returns the coordinate after the span.
func (s Span) End() int {
	return axis.Add(s.Start, s.Size, axis.Infinite)
}

// Sizes is the list of placed positions of an axis, ordered by
// position.
type Sizes []Span

// RequestFunc reports the share of the axis, in percent, requested
// for the position p.
type RequestFunc func(p axis.Pos) (percent int, ok bool)

// Distribute places the positions of m along an axis of target size.
// Positions never shrink below their minimum, so the total exceeds
// target when the minimums do. A nil req requests nothing.
func Distribute(m metrics.Metrics, target int, req RequestFunc) Sizes {
	if target < 0 {
		target = 0
	}
	d := distributor{
		m:      m,
		sizes:  make(Sizes, len(m)),
		target: target,
	}
	d.requests(req)
	d.minimums()
	d.preferred()
	d.maximums()
	d.stretch()
	start := 0
	for i := range d.sizes {
		d.sizes[i].Start = start
		start = d.sizes[i].End()
	}
	return d.sizes
}

// Update replaces s with the distribution of m over target and
// reports whether it changed.
func (s *Sizes) Update(m metrics.Metrics, target int, req RequestFunc) bool {
	n := Distribute(m, target, req)
	if slices.Equal(*s, n) {
		return false
	}
	*s = n
	return true
}

// Lookup returns the span of position p.
func (s Sizes) Lookup(p axis.Pos) (Span, bool) {
	i, ok := s.index(p)
	if !ok {
		return Span{}, false
	}
	return s[i], true
}

// Extent returns the start and size of the positions in r. Both ends
// of r must be present in s.
func (s Sizes) Extent(r axis.Range) (start, size int, ok bool) {
	i, ok1 := s.index(r.Start)
	j, ok2 := s.index(r.End)
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	start = s[i].Start
	return start, s[j].End() - start, true
}

// Total returns the size of the axis.
func (s Sizes) Total() int {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].End()
}

func (s Sizes) index(p axis.Pos) (int, bool) {
	return slices.BinarySearchFunc(s, p, func(sp Span, p axis.Pos) int {
		return int(sp.Pos) - int(p)
	})
}
