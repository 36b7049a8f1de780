// SPDX-License-Identifier: Unlicense OR MIT

/*
Package border implements the collapsed border model of a grid.

Collapse walks the rows of a topology, assigns every cell its position
range in the collapsed coordinate space and reports the straight
borders separating adjoining cells. Vertical borders that continue
between the same pair of cells across rows are merged into a single
run; horizontal borders are clipped to the columns two cells share.

Set turns the reported borders into Straight and Corner descriptors and
recycles them across layout passes.
*/
package border

import (
	"gioui.org/grid/axis"
	"gioui.org/grid/topology"
)

// VerticalFunc receives a vertical border between left and right at
// collapsed column col, covering the collapsed rows in rows. A nil
// cell marks the outer edge of the grid.
type VerticalFunc func(left, right *topology.Element, col axis.Pos, rows axis.Range)

// HorizontalFunc receives a horizontal border between above and
// below at collapsed row row, covering the collapsed columns in cols.
// A nil cell marks the outer edge of the grid.
type HorizontalFunc func(above, below *topology.Element, row axis.Pos, cols axis.Range)

// Result summarizes a Collapse pass.
type Result struct {
	// Width and Height are the number of collapsed positions along
	// each axis, borders included. Both are zero for an empty grid.
	Width, Height axis.Pos
	// Dropped counts the cells left out because their position would
	// overflow the collapsed coordinate space.
	Dropped int
}

// Extent returns the number of collapsed positions along a.
func (r Result) Extent(a axis.Axis) axis.Pos {
	if a == axis.Horizontal {
		return r.Width
	}
	return r.Height
}

// Collapse places every cell of t and reports its borders to vertical
// and horizontal, in row-major order. Either function may be nil.
//
// A cell is placed in the first columns of its row left free by the
// cells of previous rows spanning into it. A row whose next cell would
// not fit the collapsed coordinate space is truncated: the cell and the
// rest of its row are left unplaced.
func Collapse(t *topology.Topology, vertical VerticalFunc, horizontal HorizontalFunc) Result {
	if vertical == nil {
		vertical = func(*topology.Element, *topology.Element, axis.Pos, axis.Range) {}
	}
	if horizontal == nil {
		horizontal = func(*topology.Element, *topology.Element, axis.Pos, axis.Range) {}
	}
	t.Reset()
	c := &collapser{
		vertical:   vertical,
		horizontal: horizontal,
	}
	rows := t.Rows()
	r := 0
	// Rows past the input continue while cells still span into them.
	for ; r < len(rows) || c.spanning(r); r++ {
		if r >= axis.Limit {
			break
		}
		var cells []*topology.Element
		if r < len(rows) {
			cells = rows[r]
		}
		c.row(r, cells)
	}
	for ; r < len(rows); r++ {
		c.dropped += len(rows[r])
	}
	c.bottom(c.rows)
	c.runs.flushAll(c.vertical)

	var res Result
	if c.width > 0 {
		res.Width = axis.Border(c.width) + 1
		res.Height = axis.Border(c.rows) + 1
	}
	res.Dropped = c.dropped
	return res
}

// segment is a one-row vertical border waiting to be emitted.
type segment struct {
	left, right *topology.Element
	col         int
}

type collapser struct {
	vertical   VerticalFunc
	horizontal HorizontalFunc

	// above holds, per logical column, the cell occupying that column
	// in the previous row.
	above []*topology.Element
	// cur is the occupancy of the row being processed.
	cur []*topology.Element
	// deferred holds the vertical borders collected while skipping
	// over cells spanning into the current row.
	deferred []segment
	runs     runCache

	// width is the number of logical columns seen so far, rows the
	// number of logical rows processed.
	width, rows int
	dropped     int
}

// spanning reports whether a cell of a previous row extends into
// logical row r.
func (c *collapser) spanning(r int) bool {
	return c.firstActive(0, len(c.above), r) < len(c.above)
}

// active returns the cell of a previous row that covers col and
// extends into logical row r.
func (c *collapser) active(col, r int) *topology.Element {
	if col >= len(c.above) {
		return nil
	}
	if e := c.above[col]; e != nil && e.LastRow() >= r {
		return e
	}
	return nil
}

// firstActive returns the first column in [from, to) covered by a
// cell spanning into row r, or to.
func (c *collapser) firstActive(from, to, r int) int {
	for col := from; col < to && col < len(c.above); col++ {
		if c.active(col, r) != nil {
			return col
		}
	}
	return to
}

// occupy marks the columns of e as occupied in the current row and
// returns the column after e.
func (c *collapser) occupy(e *topology.Element) int {
	for col := len(c.cur); col <= e.LastColumn(); col++ {
		c.cur = append(c.cur, e)
	}
	return len(c.cur)
}

// skip occupies the cells spanning into row r from col onwards,
// deferring the vertical borders on their left. It returns the next
// column and the cell left of it.
func (c *collapser) skip(col, r int, left *topology.Element) (int, *topology.Element) {
	for {
		s := c.active(col, r)
		if s == nil {
			return col, left
		}
		c.deferred = append(c.deferred, segment{left: left, right: s, col: col})
		left = s
		col = c.occupy(s)
	}
}

// fit advances col until cols consecutive columns are free in row r,
// leaving empty the columns too narrow for the cell.
func (c *collapser) fit(col, r, cols int, left *topology.Element) (int, *topology.Element) {
	if cols > axis.Limit {
		cols = axis.Limit
	}
	for {
		col, left = c.skip(col, r, left)
		next := c.firstActive(col, col+cols, r)
		if next == col+cols {
			return col, left
		}
		c.empty(r, col, next, left)
		col, left = next, nil
	}
}

// empty leaves the columns [from, to) of row r without a cell.
func (c *collapser) empty(r, from, to int, left *topology.Element) {
	if from >= to {
		return
	}
	if left != nil {
		c.deferred = append(c.deferred, segment{left: left, col: from})
	}
	for col := from; col < to; col++ {
		c.cur = append(c.cur, nil)
	}
	c.horizontals(r, from, to-1, nil)
}

func (c *collapser) row(r int, cells []*topology.Element) {
	c.cur = c.cur[:0]
	col := 0
	var left *topology.Element
	for i, e := range cells {
		cols, rows := e.Span()
		col, left = c.fit(col, r, cols, left)
		if cols > axis.Limit-col || rows > axis.Limit-r {
			c.dropped += len(cells) - i
			break
		}
		// Spans are validated by the topology, so Place cannot fail.
		if err := e.Place(axis.Span(col, cols), axis.Span(r, rows)); err != nil {
			panic(err)
		}
		// Horizontal borders above e settle the corners of this row
		// before the vertical borders collected so far are emitted.
		c.horizontals(r, col, col+cols-1, e)
		c.flushDeferred(r)
		c.runs.add(c.vertical, left, e, col, r)
		left = e
		col = c.occupy(e)
	}
	// Carry the remaining spans and close off the columns left empty
	// below the previous row.
	for col < len(c.above) {
		col, left = c.skip(col, r, left)
		if col >= len(c.above) {
			break
		}
		next := c.firstActive(col, len(c.above), r)
		c.empty(r, col, next, left)
		col, left = next, nil
	}
	c.flushDeferred(r)
	if left != nil {
		c.runs.add(c.vertical, left, nil, len(c.cur), r)
	}
	c.runs.flushStale(c.vertical, r)
	if len(c.cur) > c.width {
		c.width = len(c.cur)
	}
	c.rows = r + 1
	c.above, c.cur = c.cur, c.above
}

// horizontals emits the borders between the cells above columns
// [first, last] of row r and below, one per cell above.
func (c *collapser) horizontals(r, first, last int, below *topology.Element) {
	for col := first; col <= last; {
		above := c.cellAbove(col)
		end := col
		for end < last && c.cellAbove(end+1) == above {
			end++
		}
		if above != nil || below != nil {
			c.emitHorizontal(above, below, r, col, end)
		}
		col = end + 1
	}
}

// cellAbove returns the cell of the previous row at col.
func (c *collapser) cellAbove(col int) *topology.Element {
	if col < len(c.above) {
		return c.above[col]
	}
	return nil
}

func (c *collapser) emitHorizontal(above, below *topology.Element, r, first, last int) {
	// Vertical runs meeting either end of the border stop at its row.
	c.runs.terminate(c.vertical, first, r)
	c.runs.terminate(c.vertical, last+1, r)
	c.horizontal(above, below, axis.Border(r), axis.Span(first, last-first+1))
}

func (c *collapser) flushDeferred(r int) {
	for _, s := range c.deferred {
		c.runs.add(c.vertical, s.left, s.right, s.col, r)
	}
	c.deferred = c.deferred[:0]
}

// bottom emits the borders below the last row r-1.
func (c *collapser) bottom(r int) {
	for col := 0; col < len(c.above); {
		above := c.above[col]
		end := col
		for end+1 < len(c.above) && c.above[end+1] == above {
			end++
		}
		if above != nil {
			c.emitHorizontal(above, nil, r, col, end)
		}
		col = end + 1
	}
}
