// SPDX-License-Identifier: Unlicense OR MIT

package axis

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Infinite is the maximum of a Value that may grow without bound.
const Infinite = math.MaxInt

// Value is a size triple. The zero Value is a rigid size of zero.
type Value struct {
	Min, Pref, Max int
}

// New returns the Value for the given sizes. Negative sizes are
// raised to zero, the preferred size is raised to the minimum and the
// maximum is raised to the preferred size.
func New(min, pref, max int) Value {
	if min < 0 {
		min = 0
	}
	if pref < min {
		pref = min
	}
	if max < pref {
		max = pref
	}
	return Value{Min: min, Pref: pref, Max: max}
}

// Fixed returns a Value that can only be satisfied by size.
func Fixed(size int) Value {
	return New(size, size, size)
}

// Stretch returns a Value with an Infinite maximum.
func Stretch(min, pref int) Value {
	return New(min, pref, Infinite)
}

// Infinite reports whether v has no maximum.
func (v Value) Infinite() bool {
	return v.Max == Infinite
}

// Normalize enforces Min <= Pref <= Max on v.
func (v Value) Normalize() Value {
	return New(v.Min, v.Pref, v.Max)
}

// Add returns the elementwise sum of v and o. An Infinite maximum
// absorbs any other, and finite sums saturate at Infinite.
func (v Value) Add(o Value) Value {
	return Value{
		Min:  Add(v.Min, o.Min, Infinite),
		Pref: Add(v.Pref, o.Pref, Infinite),
		Max:  Add(v.Max, o.Max, Infinite),
	}
}

// Narrow returns the intersection of v and o: the larger of the
// minimums and preferred sizes and the smaller of the maximums.
func (v Value) Narrow(o Value) Value {
	return New(maxInt(v.Min, o.Min), maxInt(v.Pref, o.Pref), minInt(v.Max, o.Max))
}

func (v Value) String() string {
	return fmt.Sprintf("{%d,%d,%s}", v.Min, v.Pref, FormatSize(v.Max))
}

// FormatSize formats a size, writing Infinite as "inf".
func FormatSize(v int) string {
	if v == Infinite {
		return "inf"
	}
	return strconv.Itoa(v)
}

// Sum returns the sum of all values.
func Sum(vs ...Value) Value {
	var s Value
	for _, v := range vs {
		s = s.Add(v)
	}
	return s
}

// Add returns a+b for non-negative a and b, saturating at limit.
func Add[T constraints.Integer](a, b, limit T) T {
	if b > 0 && a > limit-b {
		return limit
	}
	return a + b
}

// Sub returns a-b, or zero if b exceeds a.
func Sub[T constraints.Integer](a, b T) T {
	if b >= a {
		return 0
	}
	return a - b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
