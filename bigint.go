// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package mpint

import "github.com/gopherlibs/mpint/mpalloc"

// Int is a signed arbitrary-precision integer. The zero Int is the
// value 0 and is ready to use without further initialization. Every
// mutating method on *Int reserves capacity through its allocator
// before writing, so a failed allocation never leaves the receiver in
// an inconsistent state.
//
// Int is sign-magnitude: abs holds the |value| as a normalized,
// little-endian limb slice (abs[len(abs)-1] != 0 whenever len(abs) >
// 0), and neg records whether the value is negative. Zero is
// represented by an empty abs and neg == false.
type Int struct {
	neg   bool
	abs   []Word
	alloc mpalloc.Allocator
}

// allocator returns the receiver's allocator, adopting the process
// default the first time it is needed.
func (z *Int) allocator() mpalloc.Allocator {
	if z.alloc == nil {
		z.alloc = mpalloc.Default()
	}
	return z.alloc
}

// SetAllocator installs a as z's allocator for future reserves and
// returns z. It does not migrate the buffer z already holds.
func (z *Int) SetAllocator(a mpalloc.Allocator) *Int {
	z.alloc = a
	return z
}

// Allocator returns z's current allocator, resolving the process
// default if none has been set yet.
func (z *Int) Allocator() mpalloc.Allocator {
	return z.allocator()
}

// reserve ensures z.abs has capacity for at least n limbs, growing
// through z's allocator and preserving the live prefix if it must
// reallocate. It never shrinks the backing array.
func (z *Int) reserve(n int) {
	if cap(z.abs) >= n {
		return
	}
	buf := z.allocator().Get(n)
	copy(buf, z.abs)
	old := z.abs
	z.abs = buf[:len(old)]
	if cap(old) > 0 {
		z.allocator().Put(old[:cap(old)])
	}
}

// setLen trims or extends z.abs to n limbs (capacity permitting,
// reserve must already have been called) without touching content
// beyond the old length.
func (z *Int) setLen(n int) {
	z.abs = z.abs[:n]
}

// normalize strips leading (high) zero limbs from z.abs and clears neg
// if the result is zero, restoring the Int invariant after a routine
// has written into z.abs directly.
func (z *Int) normalize() *Int {
	n := normLen(z.abs, len(z.abs))
	z.abs = z.abs[:n]
	if n == 0 {
		z.neg = false
	}
	return z
}

// NewInt returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// NewUint returns a new Int set to x.
func NewUint(x uint64) *Int {
	return new(Int).SetUint64(x)
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	neg := x < 0
	var u uint64
	if neg {
		u = uint64(-(x + 1)) + 1
	} else {
		u = uint64(x)
	}
	z.SetUint64(u)
	z.neg = neg && u != 0
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.neg = false
	if x == 0 {
		z.reserve(0)
		z.setLen(0)
		return z
	}
	n := 1
	if wordBits == 32 && x > uint64(wordMax) {
		n = 2
	}
	z.reserve(n)
	z.setLen(n)
	if n == 1 {
		z.abs[0] = Word(x)
	} else {
		z.abs[0] = Word(x)
		z.abs[1] = Word(x >> 32)
	}
	return z.normalize()
}

// Set sets z to x and returns z. It always copies x's magnitude.
func (z *Int) Set(x *Int) *Int {
	if z == x {
		return z
	}
	z.reserve(len(x.abs))
	z.setLen(len(x.abs))
	copy(z.abs, x.abs)
	z.neg = x.neg
	return z
}

// Swap exchanges z and x, including their allocators.
func (z *Int) Swap(x *Int) {
	z.neg, x.neg = x.neg, z.neg
	z.abs, x.abs = x.abs, z.abs
	z.alloc, x.alloc = x.alloc, z.alloc
}

// MoveFrom sets z to x and consumes x, leaving x reset to zero. When z
// and x share the same allocator, x's backing buffer is transferred to z
// directly rather than copied; when the allocators differ, a buffer
// obtained from one allocator cannot safely be handed to the other (a
// Pooled allocator must only see buffers it gave out itself), so this
// degrades to an ordinary copy and x's own buffer is released back to
// its allocator. x must not be z.
func (z *Int) MoveFrom(x *Int) *Int {
	if z == x {
		return z
	}
	if z.allocator() == x.allocator() {
		z.Release()
		z.neg, z.abs = x.neg, x.abs
		x.neg, x.abs = false, nil
		return z
	}
	z.Set(x)
	x.Release()
	return z
}

// Release returns z's backing buffer to its allocator and resets z to
// zero. z remains usable afterward.
func (z *Int) Release() {
	if cap(z.abs) > 0 {
		z.allocator().Put(z.abs[:cap(z.abs)])
	}
	z.abs = nil
	z.neg = false
}

// Sign returns -1, 0 or +1 according to the sign of z.
func (z *Int) Sign() int {
	switch {
	case len(z.abs) == 0:
		return 0
	case z.neg:
		return -1
	default:
		return 1
	}
}

// SignBit reports whether z is negative. Unlike the C library this is
// adapted from, true means negative: the usual convention, and the one
// every caller of a method named SignBit will assume (see DESIGN.md).
func (z *Int) SignBit() bool {
	return z.neg
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	if len(z.abs) > 0 {
		z.neg = !z.neg
	}
	return z
}

// IsZero reports whether z is the value 0.
func (z *Int) IsZero() bool {
	return len(z.abs) == 0
}

// BitLen returns the number of bits required to represent |z|; BitLen
// of 0 is 0.
func (z *Int) BitLen() int {
	n := len(z.abs)
	if n == 0 {
		return 0
	}
	return (n-1)*wordBits + bitWidthWord(z.abs[n-1])
}

// PopCount returns the number of set bits in |z|.
func (z *Int) PopCount() int {
	return popcountN(z.abs)
}

// HasSingleBit reports whether |z| is a nonzero power of two.
func (z *Int) HasSingleBit() bool {
	return hasSingleBitN(z.abs)
}

// CountTrailingZeros returns the number of trailing zero bits in |z|;
// CountTrailingZeros of 0 is 0.
func (z *Int) CountTrailingZeros() int {
	return countrZeroN(z.abs)
}

// CountTrailingOnes returns the number of trailing one bits in |z|.
func (z *Int) CountTrailingOnes() int {
	return countrOneN(z.abs)
}

// CountLeadingZeros returns the number of leading zero bits within |z|'s
// most significant limb; CountLeadingZeros of 0 is 0.
func (z *Int) CountLeadingZeros() int {
	return countlZeroN(z.abs)
}

// CountLeadingOnes returns the number of leading one bits within |z|'s
// most significant limb.
func (z *Int) CountLeadingOnes() int {
	return countlOneN(z.abs)
}
