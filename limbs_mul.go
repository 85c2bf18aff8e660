// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package mpint

import "math/bits"

// mulUint multiplies the magnitude a by the single word b, writing the
// an-limb low part of the product into r and returning the carry word out
// of the top limb (the (an+1)-th limb of the product). r and a may alias.
func mulUint(a []Word, b Word, r []Word) Word {
	var c Word
	for i, ai := range a {
		hi, lo := umul(ai, b)
		s, carry := bits.Add(uint(lo), uint(c), 0)
		r[i] = Word(s)
		c = hi + Word(carry)
	}
	return c
}

// addMulUint computes r += a*b in place over an an-limb accumulator r,
// where a has an limbs and b is a single word, and returns the carry word
// out of the top limb. This is the inner step of the schoolbook multiply
// below: each limb of the multiplier drives one addMulUint pass over a
// shifted window of the accumulator.
func addMulUint(a []Word, b Word, r []Word) Word {
	var c Word
	for i, ai := range a {
		hi, lo := umul(ai, b)

		s, carry1 := bits.Add(uint(lo), uint(r[i]), 0)
		s, carry2 := bits.Add(s, uint(c), 0)
		r[i] = Word(s)
		c = hi + Word(carry1) + Word(carry2)
	}
	return c
}

// mul computes the full an+bn-limb product of a (length an) and b (length
// bn), writing the result into r (len(r) >= an+bn, which must not alias a
// or b). Schoolbook: r starts as a*b[0], then each further limb of b
// contributes one addMulUint pass into a shifted window of r.
func mul(a []Word, an int, b []Word, bn int, r []Word) {
	for i := range r[:an+bn] {
		r[i] = 0
	}
	r[an] = mulUint(a[:an], b[0], r[:an])
	for j := 1; j < bn; j++ {
		r[an+j] = addMulUint(a[:an], b[j], r[j:an+j])
	}
}
