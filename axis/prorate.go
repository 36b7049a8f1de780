// SPDX-License-Identifier: Unlicense OR MIT

package axis

import "math/bits"

// Prorater splits a budget across a sequence of weights whose sum is
// known in advance. Each share is floor((carry + budget*weight) /
// total), and the remainder is carried to the next share, so the
// shares of all weights add up to exactly budget.
type Prorater struct {
	budget, total, carry uint64
}

// NewProrater returns a Prorater distributing budget over weights
// summing to total. Budget and total must be non-negative.
func NewProrater(budget, total int) Prorater {
	if budget < 0 || total < 0 {
		panic("axis: negative proration")
	}
	return Prorater{budget: uint64(budget), total: uint64(total)}
}

// Share returns the share for the next weight, which must not
// exceed the total the Prorater was created with.
func (p *Prorater) Share(weight int) int {
	if p.total == 0 || weight <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(p.budget, uint64(weight))
	var c uint64
	lo, c = bits.Add64(lo, p.carry, 0)
	hi += c
	q, r := bits.Div64(hi, lo, p.total)
	p.carry = r
	return int(q)
}

// MulDiv returns v*num/den rounded down, without intermediate
// overflow. The result must fit an int.
func MulDiv(v, num, den int) int {
	if v <= 0 || num <= 0 || den <= 0 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(v), uint64(num))
	if hi >= uint64(den) {
		return Infinite
	}
	q, _ := bits.Div64(hi, lo, uint64(den))
	if q > uint64(Infinite) {
		return Infinite
	}
	return int(q)
}
