// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package mpint

// Bitwise operations are specified as if z, x and y were infinite-
// precision two's-complement integers, even though Int stores
// sign-magnitude. Each case below rewrites the operation into plain
// magnitude arithmetic via the identity -n = ^(n-1); each of the nine
// sign combinations (three operators, three operand sign patterns) has
// its own case in And, Or and Xor below. The
// decrement helper below produces the transient a-1/b-1 magnitudes that
// appear in the negative-operand cases; it is local scratch invisible
// to the caller, so it uses make directly rather than the Int's
// configured Allocator.

// decMagnitude returns a-1 for a nonzero magnitude a.
func decMagnitude(a []Word) []Word {
	r := make([]Word, len(a))
	subUint(a, 1, r)
	return r
}

// negateResult sets z to -(mag + 1), the "outer negation" that closes
// out every case in the table that produces a negative result.
func (z *Int) negateResult(mag []Word) *Int {
	n := len(mag)
	z.reserve(n + 1)
	z.setLen(n + 1)
	c := addUint(mag, 1, z.abs[:n])
	z.abs[n] = c
	z.neg = true
	return z.normalize()
}

// setPositive sets z to the nonnegative magnitude mag.
func (z *Int) setPositive(mag []Word) *Int {
	z.reserve(len(mag))
	z.setLen(len(mag))
	copy(z.abs, mag)
	z.neg = false
	return z.normalize()
}

// Not sets z to the bitwise complement of x, ^x = -(x+1), and returns
// z. Note that since Int is sign-magnitude rather than a fixed-width
// two's-complement type, Not(0) is -1 and there is no all-ones
// representation to return for any input.
func (z *Int) Not(x *Int) *Int {
	if !x.neg {
		return z.negateResult(x.abs)
	}
	return z.setPositive(decMagnitude(x.abs))
}

// And sets z to x & y under the infinite two's-complement
// interpretation and returns z.
func (z *Int) And(x, y *Int) *Int {
	switch {
	case !x.neg && !y.neg:
		r := make([]Word, minInt(len(x.abs), len(y.abs)))
		andNN(x.abs, len(x.abs), y.abs, len(y.abs), r)
		return z.setPositive(r)
	case !x.neg && y.neg:
		b1 := decMagnitude(y.abs)
		r := make([]Word, len(x.abs))
		andNotNN(x.abs, len(x.abs), b1, len(b1), r)
		return z.setPositive(r)
	case x.neg && !y.neg:
		a1 := decMagnitude(x.abs)
		r := make([]Word, len(y.abs))
		andNotNN(y.abs, len(y.abs), a1, len(a1), r)
		return z.setPositive(r)
	default:
		a1 := decMagnitude(x.abs)
		b1 := decMagnitude(y.abs)
		n := len(a1)
		if len(b1) > n {
			n = len(b1)
		}
		r := make([]Word, n)
		orNN(a1, len(a1), b1, len(b1), r)
		return z.negateResult(r)
	}
}

// Or sets z to x | y under the infinite two's-complement interpretation
// and returns z.
func (z *Int) Or(x, y *Int) *Int {
	switch {
	case !x.neg && !y.neg:
		n := maxInt(len(x.abs), len(y.abs))
		r := make([]Word, n)
		orNN(x.abs, len(x.abs), y.abs, len(y.abs), r)
		return z.setPositive(r)
	case !x.neg && y.neg:
		b1 := decMagnitude(y.abs)
		r := make([]Word, len(b1))
		andNotNN(b1, len(b1), x.abs, len(x.abs), r)
		return z.negateResult(r)
	case x.neg && !y.neg:
		a1 := decMagnitude(x.abs)
		r := make([]Word, len(a1))
		andNotNN(a1, len(a1), y.abs, len(y.abs), r)
		return z.negateResult(r)
	default:
		a1 := decMagnitude(x.abs)
		b1 := decMagnitude(y.abs)
		n := minInt(len(a1), len(b1))
		r := make([]Word, n)
		andNN(a1, len(a1), b1, len(b1), r)
		return z.negateResult(r)
	}
}

// Xor sets z to x ^ y under the infinite two's-complement
// interpretation and returns z.
func (z *Int) Xor(x, y *Int) *Int {
	switch {
	case x.neg == y.neg && !x.neg:
		n := maxInt(len(x.abs), len(y.abs))
		r := make([]Word, n)
		xorNN(x.abs, len(x.abs), y.abs, len(y.abs), r)
		return z.setPositive(r)
	case x.neg == y.neg:
		a1 := decMagnitude(x.abs)
		b1 := decMagnitude(y.abs)
		n := maxInt(len(a1), len(b1))
		r := make([]Word, n)
		xorNN(a1, len(a1), b1, len(b1), r)
		return z.setPositive(r)
	case !x.neg:
		b1 := decMagnitude(y.abs)
		n := maxInt(len(x.abs), len(b1))
		r := make([]Word, n)
		xorNN(x.abs, len(x.abs), b1, len(b1), r)
		return z.negateResult(r)
	default:
		a1 := decMagnitude(x.abs)
		n := maxInt(len(a1), len(y.abs))
		r := make([]Word, n)
		xorNN(a1, len(a1), y.abs, len(y.abs), r)
		return z.negateResult(r)
	}
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

// AndInt64 sets z to x & y and returns z.
func (z *Int) AndInt64(x *Int, y int64) *Int {
	var t Int
	t.SetInt64(y)
	return z.And(x, &t)
}

// OrInt64 sets z to x | y and returns z.
func (z *Int) OrInt64(x *Int, y int64) *Int {
	var t Int
	t.SetInt64(y)
	return z.Or(x, &t)
}

// XorInt64 sets z to x ^ y and returns z.
func (z *Int) XorInt64(x *Int, y int64) *Int {
	var t Int
	t.SetInt64(y)
	return z.Xor(x, &t)
}

// AndUint64 sets z to x & y and returns z.
func (z *Int) AndUint64(x *Int, y uint64) *Int {
	var t Int
	t.SetUint64(y)
	return z.And(x, &t)
}

// OrUint64 sets z to x | y and returns z.
func (z *Int) OrUint64(x *Int, y uint64) *Int {
	var t Int
	t.SetUint64(y)
	return z.Or(x, &t)
}

// XorUint64 sets z to x ^ y and returns z.
func (z *Int) XorUint64(x *Int, y uint64) *Int {
	var t Int
	t.SetUint64(y)
	return z.Xor(x, &t)
}
