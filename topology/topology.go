// SPDX-License-Identifier: Unlicense OR MIT

/*
Package topology describes the logical matrix of a grid: rows of cells,
each covering one or more columns and rows.

The layout engine never sees the concrete cell type. It reads spans
and size constraints through the Cell interface and records the
collapsed position ranges it computes for every cell in the cell's
Element.
*/
package topology

import (
	"errors"
	"fmt"

	"gioui.org/grid/axis"
)

// Cell is a grid cell as seen by the layout engine.
type Cell interface {
	// Span returns the number of columns and rows covered by the
	// cell. Both must be at least 1.
	Span() (columns, rows int)
	// Metrics returns the size constraint of the cell along an axis.
	Metrics(a axis.Axis) axis.Value
}

// Identifier is implemented by cells that share the identity of
// their borders with other cells. Border runs between cells of equal
// identities merge across rows. The identity should be comparable;
// identities of incomparable types, such as slices, never match.
type Identifier interface {
	BorderIdentity() any
}

var (
	// ErrInvalidSpan is returned for a cell covering less than one row
	// or column.
	ErrInvalidSpan = errors.New("topology: invalid span")
	// ErrNilCell is returned for a missing cell.
	ErrNilCell = errors.New("topology: nil cell")
)

// SpanError describes a cell rejected by New.
type SpanError struct {
	// Row and Index locate the cell in the rows passed to New.
	Row, Index int
	// Columns and Rows are the rejected span.
	Columns, Rows int
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("topology: cell %d of row %d spans %dx%d", e.Index, e.Row, e.Columns, e.Rows)
}

func (e *SpanError) Unwrap() error {
	return ErrInvalidSpan
}

// Topology is a validated sequence of rows of cells.
type Topology struct {
	rows  [][]*Element
	cells int
}

// New validates rows and returns their Topology. The rows are not
// retained, but the cells are.
func New(rows [][]Cell) (*Topology, error) {
	t := &Topology{rows: make([][]*Element, len(rows))}
	for r, row := range rows {
		elems := make([]*Element, len(row))
		for i, c := range row {
			if c == nil {
				return nil, fmt.Errorf("topology: cell %d of row %d: %w", i, r, ErrNilCell)
			}
			cols, rs := c.Span()
			if cols < 1 || rs < 1 {
				return nil, &SpanError{Row: r, Index: i, Columns: cols, Rows: rs}
			}
			elems[i] = &Element{
				Cell:    c,
				Row:     r,
				Index:   i,
				columns: cols,
				rows:    rs,
			}
		}
		t.rows[r] = elems
		t.cells += len(elems)
	}
	return t, nil
}

// Rows returns the rows of t. The returned slices must not be
// modified.
func (t *Topology) Rows() [][]*Element {
	if t == nil {
		return nil
	}
	return t.rows
}

// Len returns the number of cells in t.
func (t *Topology) Len() int {
	if t == nil {
		return 0
	}
	return t.cells
}

// Elements returns every element in row-major order.
func (t *Topology) Elements() []*Element {
	elems := make([]*Element, 0, t.Len())
	for _, row := range t.Rows() {
		elems = append(elems, row...)
	}
	return elems
}

// Reset forgets the placement of every element.
func (t *Topology) Reset() {
	for _, row := range t.Rows() {
		for _, e := range row {
			e.placed = false
			e.ranges = [2]axis.Range{}
		}
	}
}
