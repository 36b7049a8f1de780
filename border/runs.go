// SPDX-License-Identifier: Unlicense OR MIT

package border

import (
	"reflect"

	"gioui.org/grid/axis"
	"gioui.org/grid/topology"
)

// run is a vertical border not yet emitted, extended row by row while
// its neighbors keep the same identities.
type run struct {
	open            bool
	left, right     *topology.Element
	leftID, rightID any
	// first and last are logical rows.
	first, last int
}

// runCache holds the open vertical run of every column boundary,
// indexed by logical column.
type runCache struct {
	runs []run
}

// add records the vertical border of logical row r at column boundary
// col. It extends the open run at col if the run ended in the row
// above with the same identities, and otherwise emits the open run
// and starts a new one.
func (rc *runCache) add(emit VerticalFunc, left, right *topology.Element, col, r int) {
	for len(rc.runs) <= col {
		rc.runs = append(rc.runs, run{})
	}
	ru := &rc.runs[col]
	lid, rid := left.Identity(), right.Identity()
	if ru.open && ru.last == r-1 && sameIdentity(ru.leftID, lid) && sameIdentity(ru.rightID, rid) {
		ru.last = r
		return
	}
	rc.emit(emit, col)
	*ru = run{
		open:    true,
		left:    left,
		right:   right,
		leftID:  lid,
		rightID: rid,
		first:   r,
		last:    r,
	}
}

// terminate emits the run at col if it reaches the border above
// logical row r, so that no later border of row r extends it.
func (rc *runCache) terminate(emit VerticalFunc, col, r int) {
	if col < len(rc.runs) && rc.runs[col].open && rc.runs[col].last == r-1 {
		rc.emit(emit, col)
	}
}

// flushStale emits the runs not extended by logical row r.
func (rc *runCache) flushStale(emit VerticalFunc, r int) {
	for col := range rc.runs {
		if rc.runs[col].open && rc.runs[col].last < r {
			rc.emit(emit, col)
		}
	}
}

// flushAll emits every open run.
func (rc *runCache) flushAll(emit VerticalFunc) {
	for col := range rc.runs {
		rc.emit(emit, col)
	}
}

func (rc *runCache) emit(emit VerticalFunc, col int) {
	ru := &rc.runs[col]
	if !ru.open {
		return
	}
	ru.open = false
	emit(ru.left, ru.right, axis.Border(col), axis.Range{Start: axis.Cell(ru.first), End: axis.Cell(ru.last)})
}

// sameIdentity reports whether a and b are equal identities.
// Identities of incomparable types are never equal.
func sameIdentity(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	return a == b
}
