// SPDX-License-Identifier: Unlicense OR MIT

package axis

import (
	"errors"
	"fmt"
	"math"
)

// Pos is a position in the collapsed coordinate space.
type Pos uint16

// MaxPos is the largest representable position.
const MaxPos = Pos(math.MaxUint16)

// Limit is the number of logical rows or columns that fit the
// collapsed space, including the border after the last one.
const Limit = int(MaxPos) / 2

// ErrInvalidRange is returned for a Range that ends before it starts.
var ErrInvalidRange = errors.New("axis: invalid range")

// RangeError describes a Range that failed validation.
type RangeError struct {
	Start, End Pos
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("axis: range ends at %d before it starts at %d", e.End, e.Start)
}

func (e *RangeError) Unwrap() error {
	return ErrInvalidRange
}

// Cell returns the position of the cells in logical row or column n.
func Cell(n int) Pos {
	return Pos(2*n + 1)
}

// Border returns the position of the border before logical row or
// column n.
func Border(n int) Pos {
	return Pos(2 * n)
}

// IsBorder reports whether p is a border position.
func (p Pos) IsBorder() bool {
	return p%2 == 0
}

// Index returns the logical row or column of p. For a border
// position it is the row or column after the border.
func (p Pos) Index() int {
	return int(p) / 2
}

// Range is an inclusive range of positions.
type Range struct {
	Start, End Pos
}

// NewRange returns the validated range [start, end].
func NewRange(start, end Pos) (Range, error) {
	r := Range{Start: start, End: end}
	return r, r.Validate()
}

// Point returns the range covering only p.
func Point(p Pos) Range {
	return Range{Start: p, End: p}
}

// Span returns the range covered by n logical rows or columns
// starting at logical index first.
func Span(first, n int) Range {
	return Range{Start: Cell(first), End: Cell(first + n - 1)}
}

// Validate returns a *RangeError if r ends before it starts.
func (r Range) Validate() error {
	if r.End < r.Start {
		return &RangeError{Start: r.Start, End: r.End}
	}
	return nil
}

// Width is the distance between the first and last position of r.
func (r Range) Width() int {
	return int(r.End) - int(r.Start)
}

// Contains reports whether p lies in r.
func (r Range) Contains(p Pos) bool {
	return r.Start <= p && p <= r.End
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}
