// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package mpint

import "math/bits"

// subUint subtracts the single word b from the magnitude a, writing the
// an-limb result into r and returning the borrow out of the top limb. The
// caller must ensure a >= b so no borrow escapes past the top; r and a may
// alias.
func subUint(a []Word, b Word, r []Word) Word {
	c := b
	for i, ai := range a {
		d, borrow := bits.Sub(uint(ai), uint(c), 0)
		r[i] = Word(d)
		c = Word(borrow)
		if c == 0 {
			if &r[0] != &a[0] {
				copy(r[i+1:], a[i+1:])
			}
			return 0
		}
	}
	return c
}

// subN subtracts the n-limb magnitude b from a, writing the result into r
// and returning the borrow out of the top limb.
func subN(a, b, r []Word) Word {
	var c uint
	for i := range a {
		var d uint
		d, c = bits.Sub(uint(a[i]), uint(b[i]), c)
		r[i] = Word(d)
	}
	return Word(c)
}

// sub subtracts b (length bn <= an) from a (length an), writing the an-limb
// result into r. The caller must ensure a >= b.
func sub(a []Word, an int, b []Word, bn int, r []Word) Word {
	c := subN(a[:bn], b[:bn], r[:bn])
	if an > bn {
		c = subUint(a[bn:an], c, r[bn:an])
	}
	return c
}
