// SPDX-License-Identifier: Unlicense OR MIT

/*
Package axis implements the values shared by every stage of the grid
engine.

A Value is the (minimum, preferred, maximum) size triple of a cell, a
border or a whole row or column. Values are always normalized so that
Min <= Pref <= Max; the maximum may be Infinite.

Positions are expressed in the collapsed coordinate space: the cell in
logical row or column n occupies position 2n+1 and the border line
before it occupies position 2n. Even positions are always border
positions.
*/
package axis

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Axes lists both axes in the order the engine processes them.
var Axes = [...]Axis{Horizontal, Vertical}

// Cross returns the other axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}
