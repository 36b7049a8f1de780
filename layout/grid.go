// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"image"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"gioui.org/grid/axis"
	"gioui.org/grid/border"
	"gioui.org/grid/metrics"
	"gioui.org/grid/size"
	"gioui.org/grid/topology"
)

// Grid lays out rows of cells with collapsed borders.
//
// The zero Grid is empty and ready to use. A Grid must not be used
// concurrently.
type Grid struct {
	// BorderWidth is the thickness of every border.
	BorderWidth int
	// Logger receives debug output. A nil Logger discards it.
	Logger *zap.Logger

	top     *topology.Topology
	borders border.Set
	// dirty is set when the rows or their metrics changed.
	dirty bool
	// width is the border width the metrics were derived with.
	width int
	axes  [2]axisState
	cache sizeCache
	size  image.Point
}

type axisState struct {
	metrics metrics.Metrics
	sizes   size.Sizes
	// requests maps logical rows or columns to a percentage of the
	// axis.
	requests map[int]int
	// Generations of metrics and requests.
	mgen, rgen int
}

// SetRows replaces the rows of the grid. The grid keeps the cells,
// not the slices.
func (g *Grid) SetRows(rows [][]topology.Cell) error {
	t, err := topology.New(rows)
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	g.top = t
	g.dirty = true
	return nil
}

// Invalidate marks the metrics of the cells as changed.
func (g *Grid) Invalidate() {
	g.dirty = true
}

// RequestSize requests percent of the size of a for the logical row
// or column index. Percentages are clamped to [0, 100].
func (g *Grid) RequestSize(a axis.Axis, index, percent int) {
	st := &g.axes[a]
	if old, ok := st.requests[index]; ok && old == percent {
		return
	}
	if st.requests == nil {
		st.requests = make(map[int]int)
	}
	st.requests[index] = percent
	st.rgen++
}

// ClearRequest removes the size request for the logical row or
// column index.
func (g *Grid) ClearRequest(a axis.Axis, index int) {
	st := &g.axes[a]
	if _, ok := st.requests[index]; !ok {
		return
	}
	delete(st.requests, index)
	st.rgen++
}

// Layout distributes the space allowed by cs and returns the size of
// the grid. Each axis is given its preferred size, constrained to cs.
// Layout reports whether the bounds of any position changed since
// the previous call.
func (g *Grid) Layout(cs Constraints) (Dimensions, bool) {
	g.update()
	changed := false
	for _, a := range axis.Axes {
		st := &g.axes[a]
		lo, hi := axisConstraint(a, cs)
		target := st.metrics.Total().Pref
		if target < lo {
			target = lo
		}
		if target > hi {
			target = hi
		}
		k := sizeKey{axis: a, target: target, metrics: st.mgen, requests: st.rgen}
		sizes, cached := g.cache.Get(k)
		if !cached {
			sizes = size.Distribute(st.metrics, target, st.request)
			g.cache.Put(k, sizes)
		}
		moved := !slices.Equal(st.sizes, sizes)
		st.sizes = sizes
		changed = changed || moved
		g.logger().Debug("Distributed axis",
			zap.Stringer("axis", a),
			zap.Int("target", target),
			zap.Int("size", sizes.Total()),
			zap.Bool("cached", cached),
			zap.Bool("changed", moved),
		)
	}
	g.size = image.Point{
		X: g.axes[axis.Horizontal].sizes.Total(),
		Y: g.axes[axis.Vertical].sizes.Total(),
	}
	return Dimensions{Size: cs.Constrain(g.size)}, changed
}

// request looks up the size request of a collapsed position.
func (st *axisState) request(p axis.Pos) (int, bool) {
	if p.IsBorder() {
		return 0, false
	}
	pct, ok := st.requests[p.Index()]
	return pct, ok
}

// update collapses the rows and derives the metrics if the rows, the
// cells or the border width changed.
func (g *Grid) update() {
	if !g.dirty && g.width == g.BorderWidth {
		return
	}
	g.dirty = false
	g.width = g.BorderWidth
	log := g.logger()
	changed := g.borders.Update(g.top)
	res := g.borders.Result()
	log.Debug("Collapsed grid",
		zap.Int("rows", len(g.top.Rows())),
		zap.Int("cells", g.top.Len()),
		zap.Int("width", int(res.Width)),
		zap.Int("height", int(res.Height)),
		zap.Int("borders", g.borders.Len()),
		zap.Bool("changed", changed),
	)
	if res.Dropped > 0 {
		log.Warn("Cells dropped from an oversized grid", zap.Int("dropped", res.Dropped))
	}
	straight := g.borders.Straight()
	for _, a := range axis.Axes {
		st := &g.axes[a]
		cs := metrics.Collect(a, g.top, straight, g.BorderWidth)
		m, err := metrics.Calculate(res.Extent(a), cs)
		if err != nil {
			// Collapse only places cells on valid ranges.
			panic(err)
		}
		moved := !slices.Equal(st.metrics, m)
		if moved {
			st.metrics = m
			st.mgen++
		}
		log.Debug("Calculated metrics",
			zap.Stringer("axis", a),
			zap.Int("positions", len(m)),
			zap.Bool("changed", moved),
		)
	}
}

func (g *Grid) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

// Elements returns the cells of the grid in row-major order.
func (g *Grid) Elements() []*topology.Element {
	return g.top.Elements()
}

// Borders returns the border descriptors of the grid.
func (g *Grid) Borders() *border.Set {
	g.update()
	return &g.borders
}

// Metrics returns the metrics of a.
func (g *Grid) Metrics(a axis.Axis) metrics.Metrics {
	g.update()
	return g.axes[a].metrics
}

// Sizes returns the distribution of a computed by the last Layout.
func (g *Grid) Sizes(a axis.Axis) size.Sizes {
	return g.axes[a].sizes
}

// MinSize returns the smallest size of the grid.
func (g *Grid) MinSize() image.Point {
	g.update()
	return image.Point{
		X: g.axes[axis.Horizontal].metrics.Total().Min,
		Y: g.axes[axis.Vertical].metrics.Total().Min,
	}
}

// PrefSize returns the preferred size of the grid.
func (g *Grid) PrefSize() image.Point {
	g.update()
	return image.Point{
		X: g.axes[axis.Horizontal].metrics.Total().Pref,
		Y: g.axes[axis.Vertical].metrics.Total().Pref,
	}
}

// Size returns the size computed by the last Layout.
func (g *Grid) Size() image.Point {
	return g.size
}

// Bounds returns the bounds of a cell. The bounds of a cell left out
// of the layout are empty.
func (g *Grid) Bounds(e *topology.Element) image.Rectangle {
	if e == nil || !e.Placed() {
		return image.Rectangle{}
	}
	x0, w, ok1 := g.axes[axis.Horizontal].sizes.Extent(e.Range(axis.Horizontal))
	y0, h, ok2 := g.axes[axis.Vertical].sizes.Extent(e.Range(axis.Vertical))
	if !ok1 || !ok2 {
		return image.Rectangle{}
	}
	return image.Rect(x0, y0, x0+w, y0+h)
}

// BorderBounds returns the bounds of a straight border.
func (g *Grid) BorderBounds(s *border.Straight) image.Rectangle {
	main, n, ok1 := g.axes[s.Axis].sizes.Extent(s.Span)
	cross, ok2 := g.axes[s.Axis.Cross()].sizes.Lookup(s.Pos)
	if !ok1 || !ok2 {
		return image.Rectangle{}
	}
	return axisRect(s.Axis, main, main+n, cross.Start, cross.End())
}

// CornerBounds returns the bounds of a corner.
func (g *Grid) CornerBounds(c *border.Corner) image.Rectangle {
	x, ok1 := g.axes[axis.Horizontal].sizes.Lookup(c.Col)
	y, ok2 := g.axes[axis.Vertical].sizes.Lookup(c.Row)
	if !ok1 || !ok2 {
		return image.Rectangle{}
	}
	return image.Rect(x.Start, y.Start, x.End(), y.End())
}
