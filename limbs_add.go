// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package mpint

import "math/bits"

// addUint adds the single word b to the magnitude a, writing the an-limb
// result into r (len(r) >= an) and returning the carry out of the top
// limb. r and a may alias.
func addUint(a []Word, b Word, r []Word) Word {
	c := b
	for i, ai := range a {
		s, carry := bits.Add(uint(ai), uint(c), 0)
		r[i] = Word(s)
		c = Word(carry)
		if c == 0 {
			if &r[0] != &a[0] {
				copy(r[i+1:], a[i+1:])
			}
			return 0
		}
	}
	return c
}

// addN adds two n-limb magnitudes a and b, writing the result into r and
// returning the carry out of the top limb.
func addN(a, b, r []Word) Word {
	var c uint
	for i := range a {
		var s uint
		s, c = bits.Add(uint(a[i]), uint(b[i]), c)
		r[i] = Word(s)
	}
	return Word(c)
}

// add adds a (length an) and b (length bn <= an), writing the an-limb
// result into r and returning the carry out of the top limb: the common
// prefix is added with addN, then the carry is rippled through a's tail.
func add(a []Word, an int, b []Word, bn int, r []Word) Word {
	c := addN(a[:bn], b[:bn], r[:bn])
	if an > bn {
		c = addUint(a[bn:an], c, r[bn:an])
	}
	return c
}
