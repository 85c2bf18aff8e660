// Copyright (c) 2025 Mohammad Shafiee
// SPDX-License-Identifier: BSD-3-Clause

package mpint

import "encoding/binary"

// Bytes returns the big-endian byte representation of |z| with no
// leading zero byte (the empty slice for zero). The sign is not
// encoded; callers that need it should consult Sign separately, as
// math/big's Int.Bytes does.
func (z *Int) Bytes() []byte {
	n := bytesLen(z.abs, len(z.abs))
	buf := make([]byte, n)
	putBytesBigEndian(z.abs, len(z.abs), buf)
	return buf
}

// SetBytes sets z to the nonnegative value represented by buf, taken as
// a big-endian byte string, and returns z.
func (z *Int) SetBytes(buf []byte) *Int {
	n := (len(buf)*8 + wordBits - 1) / wordBits
	z.reserve(n)
	z.setLen(n)
	if n > 0 {
		setBytesBigEndian(buf, z.abs)
	}
	z.neg = false
	return z.normalize()
}

// LittleEndianBytes returns the little-endian byte representation of
// |z| with no trailing zero byte.
func (z *Int) LittleEndianBytes() []byte {
	n := bytesLen(z.abs, len(z.abs))
	buf := make([]byte, n)
	putBytesLittleEndian(z.abs, len(z.abs), buf)
	return buf
}

// SetLittleEndianBytes sets z to the nonnegative value represented by
// buf, taken as a little-endian byte string, and returns z.
func (z *Int) SetLittleEndianBytes(buf []byte) *Int {
	n := (len(buf)*8 + wordBits - 1) / wordBits
	z.reserve(n)
	z.setLen(n)
	if n > 0 {
		setBytesLittleEndian(buf, z.abs)
	}
	z.neg = false
	return z.normalize()
}

// nativeEndian is the host's byte order, used by the "native"
// endianness selector in byte I/O.
var nativeEndian = func() binary.ByteOrder {
	if isLittleEndianHost() {
		return binary.LittleEndian
	}
	return binary.BigEndian
}()

func isLittleEndianHost() bool {
	var x uint16 = 1
	buf := [2]byte{}
	buf[0] = byte(x)
	buf[1] = byte(x >> 8)
	return buf[0] == 1
}

// NativeEndianBytes returns the byte representation of |z| in the host
// machine's native endianness.
func (z *Int) NativeEndianBytes() []byte {
	if nativeEndian == binary.LittleEndian {
		return z.LittleEndianBytes()
	}
	return z.Bytes()
}

// SetNativeEndianBytes sets z to the nonnegative value represented by
// buf, taken in the host machine's native endianness.
func (z *Int) SetNativeEndianBytes(buf []byte) *Int {
	if nativeEndian == binary.LittleEndian {
		return z.SetLittleEndianBytes(buf)
	}
	return z.SetBytes(buf)
}
