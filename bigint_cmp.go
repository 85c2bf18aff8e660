// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package mpint

// Cmp compares z and x, returning -1, 0 or +1 as z < x, z == x, z > x.
func (z *Int) Cmp(x *Int) int {
	switch {
	case z.neg != x.neg:
		if z.neg {
			return -1
		}
		return 1
	case z.neg:
		return -cmp(z.abs, len(z.abs), x.abs, len(x.abs))
	default:
		return cmp(z.abs, len(z.abs), x.abs, len(x.abs))
	}
}

// CmpAbs compares |z| and |x|, ignoring sign.
func (z *Int) CmpAbs(x *Int) int {
	return cmp(z.abs, len(z.abs), x.abs, len(x.abs))
}

// Equal reports whether z and x hold the same value.
func (z *Int) Equal(x *Int) bool {
	return z.Cmp(x) == 0
}

// CmpInt64 compares z against the machine integer x.
func (z *Int) CmpInt64(x int64) int {
	var t Int
	t.SetInt64(x)
	return z.Cmp(&t)
}

// CmpUint64 compares z against the machine integer x.
func (z *Int) CmpUint64(x uint64) int {
	var t Int
	t.SetUint64(x)
	return z.Cmp(&t)
}

// EqualInt64 reports whether z equals the machine integer x.
func (z *Int) EqualInt64(x int64) bool {
	return z.CmpInt64(x) == 0
}

// EqualUint64 reports whether z equals the machine integer x.
func (z *Int) EqualUint64(x uint64) bool {
	return z.CmpUint64(x) == 0
}
