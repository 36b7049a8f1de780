// SPDX-License-Identifier: Unlicense OR MIT

package metrics

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gioui.org/grid/axis"
	"gioui.org/grid/border"
	"gioui.org/grid/topology"
)

const inf = axis.Infinite

func v(min, pref, max int) axis.Value {
	return axis.Value{Min: min, Pref: pref, Max: max}
}

func cell(first, n int, val axis.Value) Constraint {
	return Constraint{Span: axis.Span(first, n), Value: val}
}

func calculate(t *testing.T, extent axis.Pos, cs ...Constraint) Metrics {
	t.Helper()
	m, err := Calculate(extent, cs)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name   string
		extent axis.Pos
		cs     []Constraint
		want   Metrics
	}{
		{
			name: "single columns",
			cs: []Constraint{
				cell(0, 1, v(10, 20, 30)),
				cell(1, 1, v(5, 10, inf)),
			},
			want: Metrics{
				{0, v(0, 0, 0)},
				{1, v(10, 20, 30)},
				{2, v(0, 0, 0)},
				{3, v(5, 10, inf)},
				{4, v(0, 0, 0)},
			},
		},
		{
			name: "span over existing columns",
			cs: []Constraint{
				cell(0, 2, v(50, 60, 100)),
				cell(0, 1, v(10, 20, 30)),
				cell(1, 1, v(10, 10, inf)),
			},
			want: Metrics{
				{0, v(0, 0, 0)},
				{1, v(30, 30, 30)},
				{2, v(0, 0, 0)},
				{3, v(20, 30, 70)},
				{4, v(0, 0, 0)},
			},
		},
		{
			name: "span over missing columns",
			cs: []Constraint{
				cell(0, 2, v(51, 61, inf)),
			},
			want: Metrics{
				{0, v(0, 0, 0)},
				{1, v(26, 31, inf)},
				{2, v(0, 0, 0)},
				{3, v(25, 30, inf)},
				{4, v(0, 0, 0)},
			},
		},
		{
			name: "finite span over missing columns",
			cs: []Constraint{
				cell(0, 2, v(50, 60, 100)),
			},
			want: Metrics{
				{0, v(0, 0, 0)},
				{1, v(25, 30, 50)},
				{2, v(0, 0, 0)},
				{3, v(25, 30, 50)},
				{4, v(0, 0, 0)},
			},
		},
		{
			name: "span bounds stretchy columns",
			cs: []Constraint{
				cell(0, 1, v(10, 20, inf)),
				cell(1, 1, v(10, 20, inf)),
				cell(0, 2, v(0, 0, 50)),
			},
			want: Metrics{
				{0, v(0, 0, 0)},
				{1, v(10, 20, 25)},
				{2, v(0, 0, 0)},
				{3, v(10, 20, 25)},
				{4, v(0, 0, 0)},
			},
		},
		{
			name: "span lowers maximums",
			cs: []Constraint{
				cell(0, 1, v(10, 20, 40)),
				cell(1, 1, v(10, 20, 60)),
				cell(0, 2, v(0, 0, 50)),
			},
			want: Metrics{
				{0, v(0, 0, 0)},
				{1, v(10, 20, 24)},
				{2, v(0, 0, 0)},
				{3, v(10, 20, 26)},
				{4, v(0, 0, 0)},
			},
		},
		{
			name:   "narrowing in a column",
			extent: 3,
			cs: []Constraint{
				cell(0, 1, v(5, 10, inf)),
				cell(0, 1, v(10, 20, 30)),
			},
			want: Metrics{
				{0, v(0, 0, 0)},
				{1, v(10, 20, 30)},
				{2, v(0, 0, 0)},
			},
		},
		{
			name: "borders",
			cs: []Constraint{
				{Span: axis.Point(2), Value: axis.Fixed(3)},
				cell(0, 1, axis.Fixed(7)),
			},
			want: Metrics{
				{0, v(0, 0, 0)},
				{1, v(7, 7, 7)},
				{2, v(3, 3, 3)},
				{4, v(0, 0, 0)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			extent := tt.extent
			if extent == 0 {
				extent = 5
			}
			got := calculate(t, extent, tt.cs...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("metrics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateOrderIndependentNarrowing(t *testing.T) {
	a, b := cell(0, 1, v(5, 10, inf)), cell(0, 1, v(10, 20, 30))
	m1 := calculate(t, 3, a, b)
	m2 := calculate(t, 3, b, a)
	if diff := cmp.Diff(m1, m2); diff != "" {
		t.Errorf("order changed the result (-ab +ba):\n%s", diff)
	}
}

func TestCalculateSatisfiesSpans(t *testing.T) {
	cs := []Constraint{
		cell(0, 1, v(10, 20, 30)),
		cell(2, 1, v(0, 5, inf)),
		cell(0, 3, v(80, 100, 200)),
		cell(1, 2, v(40, 50, inf)),
	}
	m := calculate(t, 7, cs...)
	for _, c := range cs {
		sum := m.Sum(c.Span)
		if sum.Min < c.Value.Min {
			t.Errorf("%v: minimum %d below %d", c.Span, sum.Min, c.Value.Min)
		}
		if sum.Pref < c.Value.Pref {
			t.Errorf("%v: preferred %d below %d", c.Span, sum.Pref, c.Value.Pref)
		}
	}
	for _, e := range m {
		if e.Value != e.Value.Normalize() {
			t.Errorf("position %d: %v not normalized", e.Pos, e.Value)
		}
	}
	if got := m.Sum(axis.Span(0, 3)).Max; got > 200 {
		t.Errorf("maximum %d above 200", got)
	}
}

func TestCalculateEmpty(t *testing.T) {
	m := calculate(t, 0)
	if len(m) != 0 {
		t.Errorf("got %v; want empty metrics", m)
	}
	if got := m.Total(); got != (axis.Value{}) {
		t.Errorf("got total %v; want zero", got)
	}
}

func TestCalculateInvalidRange(t *testing.T) {
	_, err := Calculate(5, []Constraint{{Span: axis.Range{Start: 3, End: 1}}})
	if !errors.Is(err, axis.ErrInvalidRange) {
		t.Errorf("got %v; want ErrInvalidRange", err)
	}
}

func TestLookup(t *testing.T) {
	m := calculate(t, 5, cell(0, 1, v(1, 2, 3)), cell(1, 1, v(4, 5, 6)))
	if got, ok := m.Lookup(3); !ok || got != v(4, 5, 6) {
		t.Errorf("got %v, %v; want %v, true", got, ok, v(4, 5, 6))
	}
	if _, ok := m.Lookup(5); ok {
		t.Error("found a position past the extent")
	}
	if got, want := m.Total(), v(5, 7, 9); got != want {
		t.Errorf("got total %v; want %v", got, want)
	}
	if got, want := m.String(), "0:{0,0,0} 1:{1,2,3} 2:{0,0,0} 3:{4,5,6} 4:{0,0,0}"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

type fixed struct {
	cols, rows int
	size       int
}

func (f *fixed) Span() (int, int)             { return f.cols, f.rows }
func (f *fixed) Metrics(axis.Axis) axis.Value { return axis.Fixed(f.size) }

func TestCollect(t *testing.T) {
	top, err := topology.New([][]topology.Cell{
		{&fixed{1, 1, 10}, &fixed{1, 1, 20}},
		{&fixed{2, 1, 30}},
	})
	if err != nil {
		t.Fatal(err)
	}
	var s border.Set
	s.Update(top)
	cs := Collect(axis.Horizontal, top, s.Straight(), 2)
	m := calculate(t, s.Result().Width, cs...)
	want := Metrics{
		{0, v(2, 2, 2)},
		{1, v(10, 10, 10)},
		{2, v(2, 2, 2)},
		{3, v(20, 20, 20)},
		{4, v(2, 2, 2)},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("metrics mismatch (-want +got):\n%s", diff)
	}
	rows := calculate(t, s.Result().Height, Collect(axis.Vertical, top, s.Straight(), 2)...)
	if got, want := rows.Total(), v(56, 56, 56); got != want {
		t.Errorf("got vertical total %v; want %v", got, want)
	}
}
