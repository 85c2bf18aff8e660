// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

//go:build amd64 || arm64 || ppc64 || ppc64le || riscv64 || s390x || mips64 || mips64le

package mpint

import "math/bits"

// umul computes the exact 2*wordBits-bit product of a and b, returning the
// high and low halves. These architectures have a native wide-multiply
// instruction (MULQ, MUL/UMULH, ...); bits.Mul lowers directly to it.
func umul(a, b Word) (hi, lo Word) {
	h, l := bits.Mul(uint(a), uint(b))
	return Word(h), Word(l)
}
