// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package mpint

// popcountN returns the number of set bits across the whole magnitude a.
func popcountN(a []Word) int {
	n := 0
	for _, w := range a {
		n += popcountWord(w)
	}
	return n
}

// hasSingleBitN reports whether the magnitude a has exactly one set bit,
// i.e. is a nonzero power of two.
func hasSingleBitN(a []Word) bool {
	return popcountN(a) == 1
}

// countrZeroN returns the number of trailing zero bits in the magnitude a
// (the number of zero limbs below the lowest nonzero limb, plus the
// trailing zeros within that limb). countrZeroN of a zero magnitude is 0,
// since there is no lowest set bit to count up to.
func countrZeroN(a []Word) int {
	n := 0
	for _, w := range a {
		if w != 0 {
			return n + countrZeroWord(w)
		}
		n += wordBits
	}
	return 0
}

// countrOneN returns the number of trailing one bits in the magnitude a:
// the number of all-ones limbs below the first limb that is not all ones,
// plus the trailing ones within that limb.
func countrOneN(a []Word) int {
	n := 0
	for _, w := range a {
		if w != ^Word(0) {
			return n + countrOneWord(w)
		}
		n += wordBits
	}
	return n
}

// countlZeroN returns the number of leading zero bits within a's top limb.
// a is assumed normalized (no leading zero limb), so only the top limb can
// have leading zeros; everything above bit_width is implicitly zero but is
// not counted, matching bit_width's own convention. countlZeroN of a zero
// magnitude is 0.
func countlZeroN(a []Word) int {
	n := len(a)
	if n == 0 {
		return 0
	}
	return countlZeroWord(a[n-1])
}

// countlOneN returns the number of leading one bits within a's top limb,
// by the same convention as countlZeroN.
func countlOneN(a []Word) int {
	n := len(a)
	if n == 0 {
		return 0
	}
	return countlOneWord(a[n-1])
}
