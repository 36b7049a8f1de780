// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"gioui.org/grid/axis"
	"gioui.org/grid/size"
)

// sizeCache is a least recently used cache of distributions.
type sizeCache struct {
	m          map[sizeKey]*sizeElem
	head, tail *sizeElem
}

type sizeElem struct {
	next, prev *sizeElem
	key        sizeKey
	sizes      size.Sizes
}

// sizeKey identifies a distribution. The generations change
// whenever the metrics or the size requests of the axis change.
type sizeKey struct {
	axis     axis.Axis
	target   int
	metrics  int
	requests int
}

const maxCacheSize = 64

func (c *sizeCache) Get(k sizeKey) (size.Sizes, bool) {
	if e, ok := c.m[k]; ok {
		c.remove(e)
		c.insert(e)
		return e.sizes, true
	}
	return nil, false
}

func (c *sizeCache) Put(k sizeKey, s size.Sizes) {
	if c.m == nil {
		c.m = make(map[sizeKey]*sizeElem)
		c.head = new(sizeElem)
		c.tail = new(sizeElem)
		c.head.prev = c.tail
		c.tail.next = c.head
	}
	if e, ok := c.m[k]; ok {
		c.remove(e)
	}
	e := &sizeElem{key: k, sizes: s}
	c.m[k] = e
	c.insert(e)
	if len(c.m) > maxCacheSize {
		oldest := c.tail.next
		c.remove(oldest)
		delete(c.m, oldest.key)
	}
}

// Len returns the number of cached distributions.
func (c *sizeCache) Len() int {
	return len(c.m)
}

func (c *sizeCache) remove(e *sizeElem) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (c *sizeCache) insert(e *sizeElem) {
	e.next = c.head
	e.prev = c.head.prev
	e.prev.next = e
	e.next.prev = e
}
