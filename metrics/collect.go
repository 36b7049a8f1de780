// SPDX-License-Identifier: Unlicense OR MIT

package metrics

import (
	"gioui.org/grid/axis"
	"gioui.org/grid/border"
	"gioui.org/grid/topology"
)

// Collect returns the constraints imposed on a by the placed cells of
// t and by borders. A border is a rigid constraint of thickness on
// the axis across it.
func Collect(a axis.Axis, t *topology.Topology, borders []*border.Straight, thickness int) []Constraint {
	cs := make([]Constraint, 0, t.Len()+len(borders))
	for _, e := range t.Elements() {
		if !e.Placed() {
			continue
		}
		cs = append(cs, Constraint{Span: e.Range(a), Value: e.Metrics(a)})
	}
	for _, st := range borders {
		if st.Axis == a {
			continue
		}
		cs = append(cs, Constraint{Span: axis.Point(st.Pos), Value: axis.Fixed(thickness)})
	}
	return cs
}
