// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements a grid layout manager on top of the grid
engine.

A Grid owns the rows of cells of a grid. It collapses them into the
border model once per change of rows, derives the metrics of both
axes, and distributes the space given by the Constraints of each
Layout call. The pixel bounds of cells, borders and corners are then
available until the next Layout.
*/
package layout

import (
	"image"

	"gioui.org/grid/axis"
)

// Constraints represent the minimum and maximum size of a grid.
type Constraints struct {
	Min, Max image.Point
}

// Dimensions are the resolved size of a grid.
type Dimensions struct {
	Size image.Point
}

// Exact returns the Constraints with the minimum and maximum size
// set to size.
func Exact(size image.Point) Constraints {
	return Constraints{
		Min: size, Max: size,
	}
}

// Constrain a size so each dimension is in the range [min;max].
func (c Constraints) Constrain(size image.Point) image.Point {
	if min := c.Min.X; size.X < min {
		size.X = min
	}
	if min := c.Min.Y; size.Y < min {
		size.Y = min
	}
	if max := c.Max.X; size.X > max {
		size.X = max
	}
	if max := c.Max.Y; size.Y > max {
		size.Y = max
	}
	return size
}

// axisPoint returns the point with main along a and cross along the
// other axis.
func axisPoint(a axis.Axis, main, cross int) image.Point {
	if a == axis.Horizontal {
		return image.Point{X: main, Y: cross}
	}
	return image.Point{X: cross, Y: main}
}

// axisMain returns the size of sz along a.
func axisMain(a axis.Axis, sz image.Point) int {
	if a == axis.Horizontal {
		return sz.X
	}
	return sz.Y
}

// axisConstraint returns the minimum and maximum of cs along a.
func axisConstraint(a axis.Axis, cs Constraints) (int, int) {
	return axisMain(a, cs.Min), axisMain(a, cs.Max)
}

// axisRect returns the rectangle spanning [mainMin, mainMax) along a
// and [crossMin, crossMax) along the other axis.
func axisRect(a axis.Axis, mainMin, mainMax, crossMin, crossMax int) image.Rectangle {
	return image.Rectangle{
		Min: axisPoint(a, mainMin, crossMin),
		Max: axisPoint(a, mainMax, crossMax),
	}
}
