// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package mpint

import "math/bits"

// Word is a single limb: a digit of a magnitude in base 2^wordBits. Its
// width tracks the host architecture (32 bits on a 32-bit GOARCH, 64 bits
// on a 64-bit one), exactly like the width of Go's own predeclared uint,
// so no build tags are needed to pick it.
type Word = uint

// wordBits is W from the design notes: the number of bits in a Word.
const wordBits = bits.UintSize

// wordMax is the all-ones word, i.e. 2^wordBits - 1.
const wordMax = ^Word(0)

// halfBits is half the word width, used by the portable double-word
// multiply fallback.
const halfBits = wordBits / 2

// halfMask selects the low half of a word.
const halfMask = Word(1)<<halfBits - 1
