// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

//go:build !(amd64 || arm64 || ppc64 || ppc64le || riscv64 || s390x || mips64 || mips64le)

package mpint

// umul computes the exact 2*wordBits-bit product of a and b on
// architectures without a native wide-multiply instruction: the four
// quarter-product portable fallback (Warren, Hacker's Delight, ch. 8),
// carrying the single possible cross-term overflow into the high half.
func umul(a, b Word) (hi, lo Word) {
	a0 := a & halfMask
	a1 := a >> halfBits
	b0 := b & halfMask
	b1 := b >> halfBits

	x0 := a0 * b0
	x1 := a1*b0 + x0>>halfBits
	x2 := a0 * b1
	x3 := a1 * b1

	x1 += x2
	if x1 < x2 {
		x3 += Word(1) << halfBits
	}

	lo = (x1 << halfBits) | (x0 & halfMask)
	hi = x3 + x1>>halfBits
	return hi, lo
}
