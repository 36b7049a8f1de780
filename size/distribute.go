// SPDX-License-Identifier: Unlicense OR MIT

package size

import (
	"gioui.org/grid/axis"
	"gioui.org/grid/metrics"
)

type distributor struct {
	m      metrics.Metrics
	sizes  Sizes
	target int
	// budget is the size not yet handed out.
	budget int
	// want is the requested size of every position, or -1.
	want []int
}

func (d *distributor) requests(req RequestFunc) {
	d.want = make([]int, len(d.m))
	for i, e := range d.m {
		d.want[i] = -1
		if req == nil {
			continue
		}
		pct, ok := req(e.Pos)
		if !ok {
			continue
		}
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		d.want[i] = axis.MulDiv(d.target, pct, 100)
	}
}

func (d *distributor) minimums() {
	used := 0
	for i, e := range d.m {
		d.sizes[i] = Span{Pos: e.Pos, Size: e.Value.Min}
		used = axis.Add(used, e.Value.Min, axis.Infinite)
	}
	d.budget = axis.Sub(d.target, used)
}

func (d *distributor) preferred() {
	d.prorate(func(i int) int {
		return d.m[i].Value.Pref - d.sizes[i].Size
	}, true)
}

// maximums grows the positions toward their finite maximums. A
// requested position grows toward its request instead, within its
// maximum.
func (d *distributor) maximums() {
	d.prorate(func(i int) int {
		v, size := d.m[i].Value, d.sizes[i].Size
		w := d.want[i]
		switch {
		case w >= 0 && v.Infinite():
			return axis.Sub(w, size)
		case w >= 0:
			return minInt(axis.Sub(w, size), v.Max-size)
		case v.Infinite():
			return 0
		default:
			return v.Max - size
		}
	}, true)
}

// stretch splits the budget left evenly over the unrequested
// positions without a maximum, or over every position without a
// maximum if all of them are requested.
func (d *distributor) stretch() {
	stretchy := func(requested bool) func(int) int {
		return func(i int) int {
			if d.m[i].Value.Infinite() && (d.want[i] >= 0) == requested {
				return 1
			}
			return 0
		}
	}
	if d.weight(stretchy(false)) > 0 {
		d.prorate(stretchy(false), false)
	} else {
		d.prorate(stretchy(true), false)
	}
}

// prorate hands out the budget in proportion to weight. If capped,
// no position receives more than its weight. Weights are cut where
// their running total would pass axis.Infinite, so the shares always
// add up to the size handed out.
func (d *distributor) prorate(weight func(i int) int, capped bool) {
	if d.budget == 0 {
		return
	}
	ws := make([]int, len(d.sizes))
	total := 0
	for i := range d.sizes {
		if w := minInt(weight(i), axis.Infinite-total); w > 0 {
			ws[i] = w
			total += w
		}
	}
	if total == 0 {
		return
	}
	give := d.budget
	if capped && total < give {
		give = total
	}
	pr := axis.NewProrater(give, total)
	given := 0
	for i, w := range ws {
		share := pr.Share(w)
		s := &d.sizes[i]
		s.Size = axis.Add(s.Size, share, axis.Infinite)
		given += share
	}
	d.budget -= given
}

func (d *distributor) weight(weight func(i int) int) int {
	total := 0
	for i := range d.sizes {
		if w := weight(i); w > 0 {
			total = axis.Add(total, w, axis.Infinite)
		}
	}
	return total
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
