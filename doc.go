// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

// Package mpint implements signed arbitrary-precision integers.
//
// The package is layered the way most freestanding bignum libraries are:
// word-level primitives (double-word multiply, bit counts, a
// reciprocal-based 2-by-1 division), unsigned limb-range routines that
// operate on raw []Word magnitudes without owning memory, and the signed
// Int type built on top, which owns a limb buffer and dispatches each
// operation to the appropriate limb routine after sign and size handling.
//
// Int stores its value as sign-magnitude rather than two's complement.
// Arithmetic is therefore naturally unsigned under the hood, but the
// bitwise operators (Not, And, Or, Xor) are specified as if every Int were
// an infinite-precision two's-complement integer, so they rewrite their
// operands through the identity -x = ^(x-1) before falling back to
// magnitude-level bit operations. See bigint_bitwise.go for the nine
// sign combinations.
package mpint
