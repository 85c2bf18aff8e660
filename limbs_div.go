// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package mpint

import "math/bits"

// divUint divides the an-limb magnitude a by the nonzero single word d,
// writing the an-limb quotient into q (q and a may alias) and returning
// the remainder. Internally normalizes by shifting a and d left so d's
// top bit is set, then runs div2by1 one limb at a time from the most to
// the least significant, which is the textbook way to turn the 2-by-1
// division primitive into an n-by-1 division.
func divUint(a []Word, d Word, q []Word) Word {
	n := len(a)
	if n == 0 {
		return 0
	}

	s := countlZeroWord(d)
	dn := d << uint(s)
	v := invWord(dn)

	shifted := make([]Word, n+1)
	shifted[n] = shlVU(a, uint(s), shifted[:n])

	r := shifted[n]
	for i := n - 1; i >= 0; i-- {
		q[i], r = div2by1(r, shifted[i], dn, v)
	}
	return r >> uint(s)
}

// mulSubN computes a -= qhat*b over the bn-limb window a[:bn] plus one
// extra guard limb a[bn], in place, and returns the final borrow (0 or
// 1). This is the D4 step of Knuth's algorithm D: subtracting the
// trial product of one quotient digit against the whole divisor from the
// corresponding window of the (partial) remainder.
func mulSubN(a []Word, b []Word, bn int, qhat Word) Word {
	var carry, borrow Word
	for i := 0; i < bn; i++ {
		hi, lo := umul(qhat, b[i])
		lo2, c1 := bits.Add(uint(lo), uint(carry), 0)
		carry = hi + Word(c1)
		d, b1 := bits.Sub(uint(a[i]), lo2, uint(borrow))
		a[i] = Word(d)
		borrow = Word(b1)
	}
	d, b1 := bits.Sub(uint(a[bn]), uint(carry), uint(borrow))
	a[bn] = Word(d)
	return Word(b1)
}

// div divides the an-limb magnitude a by the bn-limb magnitude b (bn >=
// 1, b's top limb nonzero, an >= bn), writing the (an-bn+1)-limb
// quotient into q and the bn-limb remainder into r. bn == 1 delegates to
// divUint; bn >= 2 is Knuth's Algorithm D: the divisor is normalized so
// its top limb has its high bit set, each quotient digit is estimated
// with div2by1 against the divisor's top limb and refined against its
// second limb, and the trial product is subtracted with mulSubN,
// correcting with one add-back on underflow.
func div(a []Word, an int, b []Word, bn int, q []Word, r []Word) {
	if bn == 1 {
		r[0] = divUint(a[:an], b[0], q[:an])
		return
	}

	s := uint(countlZeroWord(b[bn-1]))

	bNorm := make([]Word, bn)
	shlVU(b[:bn], s, bNorm)

	aNorm := make([]Word, an+1)
	aNorm[an] = shlVU(a[:an], s, aNorm[:an])

	b1 := bNorm[bn-1]
	b0 := bNorm[bn-2]
	v := invWord(b1)

	qn := an - bn
	for j := qn; j >= 0; j-- {
		top2 := aNorm[j+bn]
		top1 := aNorm[j+bn-1]

		var qhat, rhat Word
		if top2 == b1 {
			qhat = wordMax
			rhat = top1
			s, carry := bits.Add(uint(rhat), uint(b1), 0)
			rhat = Word(s)
			if carry != 0 {
				goto subtract
			}
		} else {
			qhat, rhat = div2by1(top2, top1, b1, v)
		}
		for {
			hi, lo := umul(qhat, b0)
			if hi < rhat || (hi == rhat && lo <= aNorm[j+bn-2]) {
				break
			}
			qhat--
			s, carry := bits.Add(uint(rhat), uint(b1), 0)
			rhat = Word(s)
			if carry != 0 {
				break
			}
		}

	subtract:
		borrow := mulSubN(aNorm[j:j+bn+1], bNorm, bn, qhat)
		if borrow != 0 {
			qhat--
			c := addN(aNorm[j:j+bn], bNorm, aNorm[j:j+bn])
			aNorm[j+bn] += c
		}
		q[j] = qhat
	}

	shrVU(aNorm[:bn], s, r[:bn])
}
