// SPDX-License-Identifier: Unlicense OR MIT

package topology

import (
	"fmt"

	"gioui.org/grid/axis"
)

// Element is the engine's handle for a Cell. Elements are compared
// by pointer.
type Element struct {
	Cell Cell
	// Row and Index locate the cell in the rows it was created from.
	Row, Index int

	columns, rows int
	ranges        [2]axis.Range
	placed        bool
}

// Span returns the validated span of the cell.
func (e *Element) Span() (columns, rows int) {
	return e.columns, e.rows
}

// Metrics returns the size constraint of the cell along a.
func (e *Element) Metrics(a axis.Axis) axis.Value {
	return e.Cell.Metrics(a).Normalize()
}

// Range returns the collapsed positions covered by the cell along a.
// It is only meaningful when Placed reports true.
func (e *Element) Range(a axis.Axis) axis.Range {
	return e.ranges[a]
}

// Placed reports whether the most recent layout pass assigned
// positions to the cell. Cells dropped because they overflow the
// collapsed coordinate space are not placed.
func (e *Element) Placed() bool {
	return e.placed
}

// Place records the positions computed for the cell. The ranges are
// validated before they are stored.
func (e *Element) Place(columns, rows axis.Range) error {
	if err := columns.Validate(); err != nil {
		return fmt.Errorf("topology: columns of cell %d in row %d: %w", e.Index, e.Row, err)
	}
	if err := rows.Validate(); err != nil {
		return fmt.Errorf("topology: rows of cell %d in row %d: %w", e.Index, e.Row, err)
	}
	e.ranges[axis.Horizontal] = columns
	e.ranges[axis.Vertical] = rows
	e.placed = true
	return nil
}

// Identity returns the border identity of the cell: the value
// returned by BorderIdentity if the cell implements Identifier,
// otherwise e itself. The identity of a nil Element is nil.
func (e *Element) Identity() any {
	if e == nil {
		return nil
	}
	if id, ok := e.Cell.(Identifier); ok {
		return id.BorderIdentity()
	}
	return e
}

// LastRow returns the last logical row covered by a placed cell.
func (e *Element) LastRow() int {
	return e.ranges[axis.Vertical].End.Index()
}

// LastColumn returns the last logical column covered by a placed
// cell.
func (e *Element) LastColumn() int {
	return e.ranges[axis.Horizontal].End.Index()
}

func (e *Element) String() string {
	if e == nil {
		return "-"
	}
	if s, ok := e.Cell.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%d.%d", e.Row, e.Index)
}
