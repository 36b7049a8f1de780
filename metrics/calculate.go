// SPDX-License-Identifier: Unlicense OR MIT

package metrics

import (
	"fmt"

	"golang.org/x/exp/slices"

	"gioui.org/grid/axis"
)

// Calculate resolves cs into the metrics of an axis with extent
// collapsed positions. Every border position below extent is
// present in the result, with a zero constraint unless a constraint
// covers exactly that position. Cell positions are present when a
// constraint covers them.
//
// Constraints are applied in order of increasing span width, input
// order breaking ties. The result satisfies every constraint whose
// maximum does not conflict with the minimums of a narrower one.
func Calculate(extent axis.Pos, cs []Constraint) (Metrics, error) {
	size := int(extent)
	point := make(map[axis.Pos]bool)
	for i, c := range cs {
		if err := c.Span.Validate(); err != nil {
			return nil, fmt.Errorf("metrics: constraint %d: %w", i, err)
		}
		if end := int(c.Span.End) + 1; end > size {
			size = end
		}
		if c.Span.Start == c.Span.End {
			point[c.Span.Start] = true
		}
	}
	calc := &calculator{
		vals: make([]axis.Value, size),
		has:  make([]bool, size),
	}
	for p := 0; p < int(extent); p += 2 {
		if !point[axis.Pos(p)] {
			calc.has[p] = true
		}
	}
	order := slices.Clone(cs)
	slices.SortStableFunc(order, func(a, b Constraint) int {
		return a.Span.Width() - b.Span.Width()
	})
	for _, c := range order {
		calc.apply(c)
	}
	var m Metrics
	for p, ok := range calc.has {
		if ok {
			m = append(m, Entry{Pos: axis.Pos(p), Value: calc.vals[p]})
		}
	}
	return m, nil
}

type calculator struct {
	vals []axis.Value
	has  []bool
	// Scratch lists of positions.
	missing, odd []int
}

func (m *calculator) apply(c Constraint) {
	k := c.Value.Normalize()
	m.missing = m.missing[:0]
	var total axis.Value
	for p := int(c.Span.Start); p <= int(c.Span.End); p++ {
		if m.has[p] {
			total = total.Add(m.vals[p])
		} else {
			m.missing = append(m.missing, p)
		}
	}
	if len(m.missing) > 0 {
		m.synthesize(c.Span, k, total)
	}
	total = m.sum(c.Span)
	if total.Min < k.Min {
		m.adjustMinimumsBy(c.Span, k.Min-total.Min)
	}
	total = m.sum(c.Span)
	if total.Pref < k.Pref {
		m.adjustPreferredBy(c.Span, k.Pref-total.Pref)
	}
	if !k.Infinite() {
		m.bound(c.Span, k.Max)
	}
}

// synthesize creates the missing positions of span. The missing cell
// positions share the part of k the existing positions leave
// uncovered. Missing border positions are zero.
func (m *calculator) synthesize(span axis.Range, k, existing axis.Value) {
	m.odd = m.odd[:0]
	for _, p := range m.missing {
		m.has[p] = true
		m.vals[p] = axis.Value{}
		if !axis.Pos(p).IsBorder() {
			m.odd = append(m.odd, p)
		}
	}
	n := len(m.odd)
	if n == 0 {
		return
	}
	minNeed := axis.Sub(k.Min, existing.Min)
	prefNeed := axis.Sub(k.Pref, existing.Pref)
	maxNeed := axis.Infinite
	if !k.Infinite() {
		// Existing positions keep the room they had, and the new
		// positions get what the cell leaves.
		maxNeed = axis.Sub(k.Max, m.strip(span, nil))
	}
	for i, p := range m.odd {
		hi := axis.Infinite
		if maxNeed != axis.Infinite {
			hi = evenShare(maxNeed, n, i)
		}
		m.vals[p] = axis.New(evenShare(minNeed, n, i), evenShare(prefNeed, n, i), hi)
	}
}

// candidates returns the cell positions of span, or every position of
// span if it covers no cell position.
func (m *calculator) candidates(span axis.Range) []int {
	m.odd = m.odd[:0]
	for p := int(span.Start); p <= int(span.End); p++ {
		if !axis.Pos(p).IsBorder() {
			m.odd = append(m.odd, p)
		}
	}
	if len(m.odd) == 0 {
		for p := int(span.Start); p <= int(span.End); p++ {
			m.odd = append(m.odd, p)
		}
	}
	return m.odd
}

// adjustMinimumsBy raises the minimums of span by need, first toward
// the preferred sizes, then evenly.
func (m *calculator) adjustMinimumsBy(span axis.Range, need int) {
	cand := m.candidates(span)
	w := 0
	for _, p := range cand {
		w = axis.Add(w, m.vals[p].Pref-m.vals[p].Min, axis.Infinite)
	}
	give := minInt(need, w)
	pr := axis.NewProrater(give, w)
	for _, p := range cand {
		v := &m.vals[p]
		v.Min += pr.Share(v.Pref - v.Min)
	}
	need -= give
	for i, p := range cand {
		v := &m.vals[p]
		v.Min = axis.Add(v.Min, evenShare(need, len(cand), i), axis.Infinite)
		*v = v.Normalize()
	}
}

// adjustPreferredBy raises the preferred sizes of span by need, first
// toward the finite maximums, then evenly over the positions without
// a maximum, or over all positions if there are none.
func (m *calculator) adjustPreferredBy(span axis.Range, need int) {
	cand := m.candidates(span)
	w := 0
	var stretch []int
	for _, p := range cand {
		v := m.vals[p]
		if v.Infinite() {
			stretch = append(stretch, p)
			continue
		}
		w = axis.Add(w, v.Max-v.Pref, axis.Infinite)
	}
	give := minInt(need, w)
	pr := axis.NewProrater(give, w)
	for _, p := range cand {
		v := &m.vals[p]
		if !v.Infinite() {
			v.Pref += pr.Share(v.Max - v.Pref)
		}
	}
	need -= give
	if len(stretch) == 0 {
		stretch = cand
	}
	for i, p := range stretch {
		v := &m.vals[p]
		v.Pref = axis.Add(v.Pref, evenShare(need, len(stretch), i), axis.Infinite)
		*v = v.Normalize()
	}
}

// bound caps the maximums of span to limit. Infinite maximums are
// reduced to their preferred size and receive the room left below
// limit, if any.
func (m *calculator) bound(span axis.Range, limit int) {
	var stripped []int
	total := m.strip(span, &stripped)
	switch {
	case total > limit:
		m.adjustMaximumsBy(span, total-limit)
	case len(stripped) > 0:
		room := limit - total
		for i, p := range stripped {
			m.vals[p].Max += evenShare(room, len(stripped), i)
		}
	}
}

// strip replaces the infinite maximums of span with the preferred
// sizes and returns the total maximum of span. The stripped positions
// are appended to stripped if it is not nil.
func (m *calculator) strip(span axis.Range, stripped *[]int) int {
	total := 0
	for p := int(span.Start); p <= int(span.End); p++ {
		v := &m.vals[p]
		if v.Infinite() {
			v.Max = v.Pref
			if stripped != nil {
				*stripped = append(*stripped, p)
			}
		}
		total = axis.Add(total, v.Max, axis.Infinite)
	}
	return total
}

// adjustMaximumsBy lowers the maximums of span by up to excess,
// proportionally to the room above the preferred sizes.
func (m *calculator) adjustMaximumsBy(span axis.Range, excess int) {
	w := 0
	for p := int(span.Start); p <= int(span.End); p++ {
		w = axis.Add(w, m.vals[p].Max-m.vals[p].Pref, axis.Infinite)
	}
	pr := axis.NewProrater(minInt(excess, w), w)
	for p := int(span.Start); p <= int(span.End); p++ {
		v := &m.vals[p]
		v.Max -= pr.Share(v.Max - v.Pref)
	}
}

func (m *calculator) sum(span axis.Range) axis.Value {
	var t axis.Value
	for p := int(span.Start); p <= int(span.End); p++ {
		t = t.Add(m.vals[p])
	}
	return t
}

// evenShare returns the i'th of n shares of total, the first shares
// taking the remainder.
func evenShare(total, n, i int) int {
	s := total / n
	if i < total%n {
		s++
	}
	return s
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
