// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package mpint

// absAdd sets z to |x| + |y|, leaving sign handling to the caller.
func (z *Int) absAdd(x, y *Int) {
	xa, ya := x.abs, y.abs
	if len(xa) < len(ya) {
		xa, ya = ya, xa
	}
	an, bn := len(xa), len(ya)

	z.reserve(an + 1)
	z.setLen(an + 1)
	c := add(xa, an, ya, bn, z.abs)
	z.abs[an] = c
	z.normalize()
}

// absSub sets z to |x| - |y|, assuming |x| >= |y|; leaves sign handling
// to the caller. When y is zero this degenerates to a plain copy of x's
// magnitude, which is the behavior the source this is adapted from gets
// wrong in its corresponding zero branch (see DESIGN.md).
func (z *Int) absSub(x, y *Int) {
	an, bn := len(x.abs), len(y.abs)

	z.reserve(an)
	z.setLen(an)
	sub(x.abs, an, y.abs, bn, z.abs)
	z.normalize()
}

// Add sets z to x + y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	switch {
	case x.neg == y.neg:
		z.absAdd(x, y)
		z.neg = x.neg && len(z.abs) > 0
	case cmp(x.abs, len(x.abs), y.abs, len(y.abs)) >= 0:
		z.absSub(x, y)
		z.neg = x.neg && len(z.abs) > 0
	default:
		z.absSub(y, x)
		z.neg = y.neg && len(z.abs) > 0
	}
	return z
}

// Sub sets z to x - y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	var negY Int
	negY.Neg(y)
	return z.Add(x, &negY)
}

// AddInt64 sets z to x + y and returns z.
func (z *Int) AddInt64(x *Int, y int64) *Int {
	var t Int
	t.SetInt64(y)
	return z.Add(x, &t)
}

// SubInt64 sets z to x - y and returns z.
func (z *Int) SubInt64(x *Int, y int64) *Int {
	var t Int
	t.SetInt64(y)
	return z.Sub(x, &t)
}

// AddUint64 sets z to x + y and returns z.
func (z *Int) AddUint64(x *Int, y uint64) *Int {
	var t Int
	t.SetUint64(y)
	return z.Add(x, &t)
}

// SubUint64 sets z to x - y and returns z.
func (z *Int) SubUint64(x *Int, y uint64) *Int {
	var t Int
	t.SetUint64(y)
	return z.Sub(x, &t)
}

// Mul sets z to x * y and returns z. A single-limb operand multiplies
// directly into the destination; a genuine multi-limb product is formed
// in a scratch buffer and then swapped in, since mul cannot write
// through a destination that aliases either source.
func (z *Int) Mul(x, y *Int) *Int {
	a, b := x, y
	if len(a.abs) < len(b.abs) {
		a, b = b, a
	}
	an, bn := len(a.abs), len(b.abs)
	neg := x.neg != y.neg

	if an == 0 || bn == 0 {
		z.reserve(0)
		z.setLen(0)
		z.neg = false
		return z
	}

	if bn == 1 {
		aa, bb := a.abs[:an], b.abs[0]
		z.reserve(an + 1)
		z.setLen(an + 1)
		c := mulUint(aa, bb, z.abs)
		z.abs[an] = c
		z.neg = neg
		return z.normalize()
	}

	var scratch Int
	scratch.SetAllocator(z.allocator())
	scratch.reserve(an + bn)
	scratch.setLen(an + bn)
	mul(a.abs, an, b.abs, bn, scratch.abs)
	scratch.neg = neg
	scratch.normalize()

	z.Release()
	z.Swap(&scratch)
	return z
}

// MulInt64 sets z to x * y and returns z.
func (z *Int) MulInt64(x *Int, y int64) *Int {
	var t Int
	t.SetInt64(y)
	return z.Mul(x, &t)
}

// MulUint64 sets z to x * y and returns z.
func (z *Int) MulUint64(x *Int, y uint64) *Int {
	var t Int
	t.SetUint64(y)
	return z.Mul(x, &t)
}

// QuoRem sets z to the truncated quotient x/y and m to the remainder,
// and returns (z, m). Signs follow truncated division: sign(z) =
// sign(x)*sign(y); sign(m) = sign(x); |m| < |y|. Panics with a
// *Error carrying ErrDivisionByZero if y is zero (see Quo/Rem for the
// error-returning forms used by callers that do not want a panic).
func (z *Int) QuoRem(x, y, m *Int) (*Int, *Int) {
	q, r, err := quoRem(x, y, z, m)
	if err != nil {
		panic(err)
	}
	return q, r
}

// Quo sets z to the truncated quotient x/y and returns (z, error).
func (z *Int) Quo(x, y *Int) (*Int, error) {
	var m Int
	m.SetAllocator(z.allocator())
	q, _, err := quoRem(x, y, z, &m)
	return q, err
}

// Rem sets z to the remainder of x/y (same sign as x) and returns
// (z, error).
func (z *Int) Rem(x, y *Int) (*Int, error) {
	var q Int
	q.SetAllocator(z.allocator())
	_, r, err := quoRem(x, y, &q, z)
	return r, err
}

// Mod sets z to the floored modulus of x by y: the result has
// the same sign as y (or is zero), unlike Rem which takes x's sign.
// Returns (z, error).
func (z *Int) Mod(x, y *Int) (*Int, error) {
	var q Int
	var r Int
	q.SetAllocator(z.allocator())
	r.SetAllocator(z.allocator())
	if _, _, err := quoRem(x, y, &q, &r); err != nil {
		return z, err
	}
	if !r.IsZero() && r.neg != y.neg {
		r.Add(&r, y)
	}
	z.Set(&r)
	return z, nil
}

// QuoInt64 sets z to the truncated quotient x/y and returns (z, error).
func (z *Int) QuoInt64(x *Int, y int64) (*Int, error) {
	var t Int
	t.SetInt64(y)
	return z.Quo(x, &t)
}

// QuoUint64 sets z to the truncated quotient x/y and returns (z, error).
func (z *Int) QuoUint64(x *Int, y uint64) (*Int, error) {
	var t Int
	t.SetUint64(y)
	return z.Quo(x, &t)
}

// RemInt64 sets z to the remainder of x/y (same sign as x) and returns
// (z, error).
func (z *Int) RemInt64(x *Int, y int64) (*Int, error) {
	var t Int
	t.SetInt64(y)
	return z.Rem(x, &t)
}

// RemUint64 sets z to the remainder of x/y (same sign as x) and returns
// (z, error).
func (z *Int) RemUint64(x *Int, y uint64) (*Int, error) {
	var t Int
	t.SetUint64(y)
	return z.Rem(x, &t)
}

// ModInt64 sets z to the floored modulus of x by y and returns
// (z, error).
func (z *Int) ModInt64(x *Int, y int64) (*Int, error) {
	var t Int
	t.SetInt64(y)
	return z.Mod(x, &t)
}

// ModUint64 sets z to the floored modulus of x by y and returns
// (z, error).
func (z *Int) ModUint64(x *Int, y uint64) (*Int, error) {
	var t Int
	t.SetUint64(y)
	return z.Mod(x, &t)
}

// quoRem is the shared implementation behind QuoRem, Quo, Rem and Mod.
func quoRem(x, y, q, r *Int) (*Int, *Int, error) {
	if y.IsZero() {
		return q, r, newError("div", ErrDivisionByZero)
	}

	an, bn := len(x.abs), len(y.abs)
	if an < bn {
		r.Set(x)
		q.reserve(0)
		q.setLen(0)
		q.neg = false
		return q, r, nil
	}

	qn := an - bn + 1
	var qq Int
	qq.SetAllocator(q.allocator())
	qq.reserve(qn)
	qq.setLen(qn)

	var rr Int
	rr.SetAllocator(r.allocator())
	rr.reserve(bn)
	rr.setLen(bn)

	div(x.abs, an, y.abs, bn, qq.abs, rr.abs)

	qq.neg = x.neg != y.neg
	qq.normalize()
	rr.neg = x.neg
	rr.normalize()

	q.Release()
	q.Swap(&qq)
	r.Release()
	r.Swap(&rr)
	return q, r, nil
}
