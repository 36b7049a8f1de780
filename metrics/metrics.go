// SPDX-License-Identifier: Unlicense OR MIT

/*
Package metrics derives the size constraints of every position along
one axis of a collapsed grid.

Cells impose their size triple on the range of positions they cover.
Calculate resolves the constraints narrowest span first: a cell
covering a single column fixes that column, and a spanning cell then
only raises minimums, fills in positions no narrower cell covers, or
caps the maximums of the positions it spans.
*/
package metrics

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"gioui.org/grid/axis"
)

// Constraint is a size triple imposed on a range of positions.
type Constraint struct {
	Span  axis.Range
	Value axis.Value
}

// Entry is the size constraint of a single position.
type Entry struct {
	Pos   axis.Pos
	Value axis.Value
}

// Metrics is the list of constrained positions of an axis, ordered by
// position.
type Metrics []Entry

// Lookup returns the constraint at p.
func (m Metrics) Lookup(p axis.Pos) (axis.Value, bool) {
	i, ok := m.index(p)
	if !ok {
		return axis.Value{}, false
	}
	return m[i].Value, true
}

func (m Metrics) index(p axis.Pos) (int, bool) {
	return slices.BinarySearchFunc(m, p, func(e Entry, p axis.Pos) int {
		return int(e.Pos) - int(p)
	})
}

// Total returns the sum of all constraints.
func (m Metrics) Total() axis.Value {
	var t axis.Value
	for _, e := range m {
		t = t.Add(e.Value)
	}
	return t
}

// Sum returns the sum of the constraints of the positions in r.
func (m Metrics) Sum(r axis.Range) axis.Value {
	i, _ := m.index(r.Start)
	var t axis.Value
	for ; i < len(m) && m[i].Pos <= r.End; i++ {
		t = t.Add(m[i].Value)
	}
	return t
}

func (m Metrics) String() string {
	var b strings.Builder
	for i, e := range m {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d:%v", e.Pos, e.Value)
	}
	return b.String()
}
