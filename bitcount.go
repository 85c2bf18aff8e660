// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package mpint

import "math/bits"

// countlZeroWord returns the number of leading zero bits in x. By
// definition countlZeroWord(0) == wordBits.
func countlZeroWord(x Word) int {
	return bits.LeadingZeros(uint(x))
}

// countlOneWord returns the number of leading one bits in x.
func countlOneWord(x Word) int {
	return countlZeroWord(^x)
}

// countrZeroWord returns the number of trailing zero bits in x. By
// definition countrZeroWord(0) == wordBits.
func countrZeroWord(x Word) int {
	return bits.TrailingZeros(uint(x))
}

// countrOneWord returns the number of trailing one bits in x.
func countrOneWord(x Word) int {
	return countrZeroWord(^x)
}

// bitWidthWord returns the position of the highest set bit in x, plus one;
// bitWidthWord(0) == 0.
func bitWidthWord(x Word) int {
	return wordBits - countlZeroWord(x)
}

// popcountWord returns the number of set bits in x.
func popcountWord(x Word) int {
	return bits.OnesCount(uint(x))
}
