// SPDX-License-Identifier: Unlicense OR MIT

package border

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"gioui.org/grid/axis"
	"gioui.org/grid/topology"
)

// Straight is a straight border between two cells.
type Straight struct {
	// Axis is the direction the border runs in: Vertical for a border
	// between columns, Horizontal for a border between rows.
	Axis axis.Axis
	// Pos is the collapsed column of a vertical border or the
	// collapsed row of a horizontal border.
	Pos axis.Pos
	// Span is the range of collapsed rows or columns covered.
	Span axis.Range
	// Before is the cell left of or above the border, After the cell
	// right of or below it. A nil cell marks the edge of the grid.
	Before, After *topology.Element

	gen int
}

// Corner is the point where straight borders meet. Corners sit on an
// even collapsed column and an even collapsed row.
type Corner struct {
	Col, Row axis.Pos
	// The cells in the four quadrants around the corner.
	TopLeft, TopRight, BottomLeft, BottomRight *topology.Element
	// The borders leaving the corner in each direction.
	Up, Down, Left, Right *Straight

	gen int
}

// Junction classifies a corner by the borders meeting in it.
type Junction uint8

const (
	// NoJunction is a corner without borders.
	NoJunction Junction = iota
	// End is a corner where a single border ends.
	End
	// Line is a corner where a border continues straight.
	Line
	// Elbow is a corner where a border turns.
	Elbow
	// Tee is a corner where three borders meet.
	Tee
	// Cross is a corner where four borders meet.
	Cross
)

type straightKey struct {
	axis  axis.Axis
	pos   axis.Pos
	start axis.Pos
}

type cornerKey struct {
	col, row axis.Pos
}

// Set holds the border descriptors of a topology. Descriptors survive
// from one Update to the next as long as their position does, so
// renderers may attach state to them by pointer.
type Set struct {
	straight map[straightKey]*Straight
	corners  map[cornerKey]*Corner
	// list is the straight borders of the last pass, in emission
	// order.
	list   []*Straight
	gen    int
	result Result
}

// Update collapses t and updates the descriptors. It reports whether
// any straight border was created, destroyed or modified.
func (s *Set) Update(t *topology.Topology) bool {
	if s.straight == nil {
		s.straight = make(map[straightKey]*Straight)
		s.corners = make(map[cornerKey]*Corner)
	}
	s.gen++
	s.list = s.list[:0]
	changed := false
	record := func(a axis.Axis, before, after *topology.Element, pos axis.Pos, span axis.Range) {
		k := straightKey{axis: a, pos: pos, start: span.Start}
		st, ok := s.straight[k]
		if !ok {
			st = &Straight{Axis: a, Pos: pos}
			s.straight[k] = st
			changed = true
		}
		if st.Span != span || st.Before != before || st.After != after {
			st.Span, st.Before, st.After = span, before, after
			changed = true
		}
		st.gen = s.gen
		s.list = append(s.list, st)
	}
	s.result = Collapse(t,
		func(left, right *topology.Element, col axis.Pos, rows axis.Range) {
			record(axis.Vertical, left, right, col, rows)
		},
		func(above, below *topology.Element, row axis.Pos, cols axis.Range) {
			record(axis.Horizontal, above, below, row, cols)
		},
	)
	for k, st := range s.straight {
		if st.gen != s.gen {
			delete(s.straight, k)
			changed = true
		}
	}
	s.threadCorners()
	return changed
}

// Result returns the result of the last Collapse run by Update.
func (s *Set) Result() Result {
	return s.result
}

// Len returns the number of straight borders.
func (s *Set) Len() int {
	return len(s.list)
}

// Emitted returns the straight borders in the order Collapse reported
// them.
func (s *Set) Emitted() []*Straight {
	return s.list
}

// Straight returns the straight borders ordered by axis, position and
// start.
func (s *Set) Straight() []*Straight {
	list := maps.Values(s.straight)
	slices.SortFunc(list, func(a, b *Straight) int {
		if a.Axis != b.Axis {
			return int(a.Axis) - int(b.Axis)
		}
		if a.Pos != b.Pos {
			return int(a.Pos) - int(b.Pos)
		}
		return int(a.Span.Start) - int(b.Span.Start)
	})
	return list
}

// Corners returns the corners ordered by row, then column.
func (s *Set) Corners() []*Corner {
	list := maps.Values(s.corners)
	slices.SortFunc(list, func(a, b *Corner) int {
		if a.Row != b.Row {
			return int(a.Row) - int(b.Row)
		}
		return int(a.Col) - int(b.Col)
	})
	return list
}

// Corner returns the corner at the given collapsed column and row, or
// nil.
func (s *Set) Corner(col, row axis.Pos) *Corner {
	return s.corners[cornerKey{col: col, row: row}]
}

// threadCorners rebuilds the corners at both ends of every straight
// border, recycling the corners of the previous pass.
func (s *Set) threadCorners() {
	for _, c := range s.corners {
		*c = Corner{Col: c.Col, Row: c.Row, gen: c.gen}
	}
	for _, st := range s.list {
		if st.Axis == axis.Vertical {
			top := s.corner(st.Pos, st.Span.Start-1)
			top.Down, top.BottomLeft, top.BottomRight = st, st.Before, st.After
			bottom := s.corner(st.Pos, st.Span.End+1)
			bottom.Up, bottom.TopLeft, bottom.TopRight = st, st.Before, st.After
		} else {
			left := s.corner(st.Span.Start-1, st.Pos)
			left.Right, left.TopRight, left.BottomRight = st, st.Before, st.After
			right := s.corner(st.Span.End+1, st.Pos)
			right.Left, right.TopLeft, right.BottomLeft = st, st.Before, st.After
		}
	}
	for k, c := range s.corners {
		if c.gen != s.gen {
			delete(s.corners, k)
		}
	}
}

func (s *Set) corner(col, row axis.Pos) *Corner {
	k := cornerKey{col: col, row: row}
	c, ok := s.corners[k]
	if !ok {
		c = &Corner{Col: col, Row: row}
		s.corners[k] = c
	}
	c.gen = s.gen
	return c
}

// Junction classifies the corner by its borders.
func (c *Corner) Junction() Junction {
	n := 0
	for _, st := range [...]*Straight{c.Up, c.Down, c.Left, c.Right} {
		if st != nil {
			n++
		}
	}
	switch n {
	case 0:
		return NoJunction
	case 1:
		return End
	case 2:
		if (c.Up != nil && c.Down != nil) || (c.Left != nil && c.Right != nil) {
			return Line
		}
		return Elbow
	case 3:
		return Tee
	default:
		return Cross
	}
}

func (j Junction) String() string {
	switch j {
	case NoJunction:
		return "NoJunction"
	case End:
		return "End"
	case Line:
		return "Line"
	case Elbow:
		return "Elbow"
	case Tee:
		return "Tee"
	case Cross:
		return "Cross"
	default:
		panic("unreachable")
	}
}
