// SPDX-License-Identifier: Unlicense OR MIT

package border

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gioui.org/grid/axis"
	"gioui.org/grid/topology"
)

type cell struct {
	name       string
	cols, rows int
	id         any
}

func (c *cell) Span() (int, int)               { return c.cols, c.rows }
func (c *cell) Metrics(a axis.Axis) axis.Value { return axis.Value{} }
func (c *cell) String() string                 { return c.name }

type sharedCell struct {
	*cell
}

func (c sharedCell) BorderIdentity() any { return c.id }

func span(name string, cols, rows int) *cell {
	return &cell{name: name, cols: cols, rows: rows}
}

func unit(names ...string) []topology.Cell {
	row := make([]topology.Cell, len(names))
	for i, n := range names {
		row[i] = span(n, 1, 1)
	}
	return row
}

func newTopology(t *testing.T, rows [][]topology.Cell) *topology.Topology {
	t.Helper()
	top, err := topology.New(rows)
	if err != nil {
		t.Fatal(err)
	}
	return top
}

// record collapses t and returns the borders in emission order, one
// string per border prefixed with "v " or "h ".
func record(top *topology.Topology) ([]string, Result) {
	var stream []string
	res := Collapse(top,
		func(left, right *topology.Element, col axis.Pos, rows axis.Range) {
			stream = append(stream, fmt.Sprintf("v %v-%v: c=%d, r1=%d, r2=%d", left, right, col, rows.Start, rows.End))
		},
		func(above, below *topology.Element, row axis.Pos, cols axis.Range) {
			stream = append(stream, fmt.Sprintf("h %v-%v: r=%d, c=%d-%d", above, below, row, cols.Start, cols.End))
		},
	)
	return stream, res
}

// scenarioC is a 6x6 grid whose cells 3 and 4 span all six rows of
// the two middle columns.
func scenarioC() [][]topology.Cell {
	return [][]topology.Cell{
		{span("1", 1, 1), span("2", 1, 1), span("3", 1, 6), span("4", 1, 6), span("5", 1, 1), span("6", 1, 1)},
		unit("7", "8", "9", "10"),
		{span("11", 2, 1), span("12", 2, 1)},
		{span("13", 2, 1), span("14", 2, 1)},
		unit("15", "16", "17", "18"),
		unit("19", "20", "21", "22"),
	}
}

func TestCollapseEmpty(t *testing.T) {
	for _, top := range []*topology.Topology{nil, newTopology(t, nil), newTopology(t, [][]topology.Cell{{}, {}})} {
		stream, res := record(top)
		if len(stream) != 0 {
			t.Errorf("got borders %v for an empty grid", stream)
		}
		if res != (Result{}) {
			t.Errorf("got %+v; want zero Result", res)
		}
	}
}

func TestCollapseGrid(t *testing.T) {
	top := newTopology(t, [][]topology.Cell{unit("a", "b"), unit("c", "d")})
	stream, res := record(top)
	want := []string{
		"h --a: r=0, c=1-1",
		"h --b: r=0, c=3-3",
		"v --a: c=0, r1=1, r2=1",
		"v a-b: c=2, r1=1, r2=1",
		"h a-c: r=2, c=1-1",
		"v b--: c=4, r1=1, r2=1",
		"h b-d: r=2, c=3-3",
		"v --c: c=0, r1=3, r2=3",
		"v c-d: c=2, r1=3, r2=3",
		"h c--: r=4, c=1-1",
		"v d--: c=4, r1=3, r2=3",
		"h d--: r=4, c=3-3",
	}
	if diff := cmp.Diff(want, stream); diff != "" {
		t.Errorf("border stream mismatch (-want +got):\n%s", diff)
	}
	if want := (Result{Width: 5, Height: 5}); res != want {
		t.Errorf("got %+v; want %+v", res, want)
	}
	d := top.Rows()[1][1]
	if got, want := d.Range(axis.Horizontal), axis.Point(3); got != want {
		t.Errorf("columns of d: got %v; want %v", got, want)
	}
}

func TestCollapseScenarioC(t *testing.T) {
	top := newTopology(t, scenarioC())
	stream, res := record(top)
	count := func(prefix string) int {
		n := 0
		for _, s := range stream {
			if strings.HasPrefix(s, prefix) {
				n++
			}
		}
		return n
	}
	for _, want := range []string{
		"v 3-4: c=6, r1=1, r2=11",
		"h 11-13: r=6, c=1-3",
	} {
		if count(want) != 1 {
			t.Errorf("stream lacks %q:\n%s", want, strings.Join(stream, "\n"))
		}
	}
	// The merged runs are the only borders between their cells.
	if n := count("v 3-4:"); n != 1 {
		t.Errorf("got %d borders between 3 and 4; want 1", n)
	}
	if n := count("h 11-13:"); n != 1 {
		t.Errorf("got %d borders between 11 and 13; want 1", n)
	}
	if res.Width != 13 || res.Height != 13 {
		t.Errorf("got %dx%d; want 13x13", res.Width, res.Height)
	}
	for _, e := range top.Elements() {
		if !e.Placed() {
			t.Errorf("cell %v not placed", e)
		}
	}
}

func TestCollapseAdjacency(t *testing.T) {
	top := newTopology(t, scenarioC())
	type key struct {
		pos  axis.Pos
		cell axis.Pos
	}
	seen := make(map[key]bool)
	claim := func(pos axis.Pos, r axis.Range) {
		for p := r.Start; p <= r.End; p++ {
			k := key{pos, p}
			if seen[k] {
				t.Errorf("position %d covered twice along border %d", p, pos)
			}
			seen[k] = true
		}
	}
	checkSpan := func(r axis.Range) {
		if r.Start.IsBorder() || r.End.IsBorder() || r.End < r.Start {
			t.Errorf("span %v does not run between cell positions", r)
		}
	}
	res := Collapse(top,
		func(left, right *topology.Element, col axis.Pos, rows axis.Range) {
			if !col.IsBorder() {
				t.Errorf("vertical border at cell position %d", col)
			}
			checkSpan(rows)
			if left != nil && left.Range(axis.Horizontal).End+1 != col {
				t.Errorf("left cell %v does not end at column %d", left, col)
			}
			if right != nil && right.Range(axis.Horizontal).Start-1 != col {
				t.Errorf("right cell %v does not start at column %d", right, col)
			}
			claim(col, rows)
		},
		func(above, below *topology.Element, row axis.Pos, cols axis.Range) {
			if !row.IsBorder() {
				t.Errorf("horizontal border at cell position %d", row)
			}
			checkSpan(cols)
			if above != nil && above.Range(axis.Vertical).End+1 != row {
				t.Errorf("cell %v above does not end at row %d", above, row)
			}
			if below != nil && below.Range(axis.Vertical).Start-1 != row {
				t.Errorf("cell %v below does not start at row %d", below, row)
			}
			// Keep horizontal claims apart from vertical ones.
			claim(axis.MaxPos-row, cols)
		},
	)
	if res.Dropped != 0 {
		t.Errorf("dropped %d cells", res.Dropped)
	}
}

func TestCollapseVirtualRows(t *testing.T) {
	top := newTopology(t, [][]topology.Cell{{span("A", 1, 3), span("b", 1, 1)}})
	stream, res := record(top)
	if want := (Result{Width: 5, Height: 7}); res != want {
		t.Errorf("got %+v; want %+v", res, want)
	}
	a := top.Rows()[0][0]
	if got, want := a.Range(axis.Vertical), (axis.Range{Start: 1, End: 5}); got != want {
		t.Errorf("rows of A: got %v; want %v", got, want)
	}
	for _, want := range []string{
		"v --A: c=0, r1=1, r2=5",
		"v A--: c=2, r1=3, r2=5",
		"h A--: r=6, c=1-1",
		"h b--: r=2, c=3-3",
	} {
		found := false
		for _, s := range stream {
			found = found || s == want
		}
		if !found {
			t.Errorf("stream lacks %q:\n%s", want, strings.Join(stream, "\n"))
		}
	}
}

func TestCollapseBlockedCell(t *testing.T) {
	// The wide cell of the second row does not fit left of the span
	// of B and moves past it, leaving column 0 empty.
	top := newTopology(t, [][]topology.Cell{
		{span("a", 1, 1), span("B", 1, 2), span("c", 1, 1)},
		{span("W", 2, 1)},
	})
	_, res := record(top)
	w := top.Rows()[1][0]
	if got, want := w.Range(axis.Horizontal), axis.Span(2, 2); got != want {
		t.Errorf("columns of W: got %v; want %v", got, want)
	}
	if res.Width != axis.Border(4)+1 {
		t.Errorf("got width %d; want %d", res.Width, axis.Border(4)+1)
	}
}

func TestCollapseOverflow(t *testing.T) {
	n := axis.Limit + 1
	row := make([]topology.Cell, n)
	for i := range row {
		row[i] = span(strconv.Itoa(i), 1, 1)
	}
	top := newTopology(t, [][]topology.Cell{row})
	res := Collapse(top, nil, nil)
	if res.Dropped != 1 {
		t.Errorf("dropped %d cells; want 1", res.Dropped)
	}
	if res.Width != axis.MaxPos {
		t.Errorf("got width %d; want %d", res.Width, axis.MaxPos)
	}
	elems := top.Elements()
	if !elems[n-2].Placed() || elems[n-1].Placed() {
		t.Error("truncation did not drop exactly the last cell")
	}
}

func TestCollapseTallOverflow(t *testing.T) {
	top := newTopology(t, [][]topology.Cell{
		{span("a", 1, 1), span("tall", 1, axis.Limit+1), span("b", 1, 1)},
	})
	res := Collapse(top, nil, nil)
	if res.Dropped != 2 {
		t.Errorf("dropped %d cells; want 2", res.Dropped)
	}
	if !top.Rows()[0][0].Placed() {
		t.Error("cell before the overflow was dropped")
	}
}

func TestRunMergeByIdentity(t *testing.T) {
	x1 := &topology.Element{Cell: sharedCell{&cell{name: "x1", cols: 1, rows: 1, id: "x"}}}
	x2 := &topology.Element{Cell: sharedCell{&cell{name: "x2", cols: 1, rows: 1, id: "x"}}}
	y := &topology.Element{Cell: span("y", 1, 1)}
	var got []string
	emit := func(left, right *topology.Element, col axis.Pos, rows axis.Range) {
		got = append(got, fmt.Sprintf("%v-%v: c=%d, r=%v", left, right, col, rows))
	}
	var rc runCache
	rc.add(emit, x1, y, 1, 0)
	rc.add(emit, x2, y, 1, 1)
	rc.add(emit, y, x2, 1, 2)
	rc.terminate(emit, 1, 3)
	rc.add(emit, y, x2, 1, 3)
	rc.flushAll(emit)
	want := []string{
		"x1-y: c=2, r=1-3",
		"y-x2: c=2, r=5-5",
		"y-x2: c=2, r=7-7",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestRunIncomparableIdentity(t *testing.T) {
	x1 := &topology.Element{Cell: sharedCell{&cell{name: "x1", cols: 1, rows: 1, id: []int{1}}}}
	x2 := &topology.Element{Cell: sharedCell{&cell{name: "x2", cols: 1, rows: 1, id: []int{1}}}}
	y := &topology.Element{Cell: span("y", 1, 1)}
	var got []string
	emit := func(left, right *topology.Element, col axis.Pos, rows axis.Range) {
		got = append(got, fmt.Sprintf("%v-%v: c=%d, r=%v", left, right, col, rows))
	}
	var rc runCache
	rc.add(emit, x1, y, 1, 0)
	rc.add(emit, x2, y, 1, 1)
	rc.add(emit, x2, y, 1, 2)
	rc.flushAll(emit)
	want := []string{
		"x1-y: c=2, r=1-1",
		"x2-y: c=2, r=3-3",
		"x2-y: c=2, r=5-5",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
}
