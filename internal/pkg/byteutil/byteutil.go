// Package byteutil contains bit and byte helpers shared by the cipher packages.
//
// Every helper that "modifies" a slice returns a fresh copy; inputs are never
// written to.
package byteutil

import (
	"encoding/binary"
	"fmt"
)

// BitAt reports whether bit bitIndex of b[byteIndex] is set.
// Bit 0 is the least-significant bit of the byte.
func BitAt(b []byte, byteIndex, bitIndex int) bool {
	checkBitIndex(bitIndex)
	return b[byteIndex]>>uint(bitIndex)&1 == 1
}

// SetBit returns a copy of b with bit bitIndex of byte byteIndex set.
func SetBit(b []byte, byteIndex, bitIndex int) []byte {
	checkBitIndex(bitIndex)
	out := clone(b)
	out[byteIndex] |= 1 << uint(bitIndex)
	return out
}

// ClearBit returns a copy of b with bit bitIndex of byte byteIndex cleared.
func ClearBit(b []byte, byteIndex, bitIndex int) []byte {
	checkBitIndex(bitIndex)
	out := clone(b)
	out[byteIndex] &^= 1 << uint(bitIndex)
	return out
}

// Uint32ToBytes encodes n as 4 big-endian bytes.
func Uint32ToBytes(n uint32) []byte {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, n)
	return out
}

// BytesToUint32 decodes the first 4 bytes of b as a big-endian integer.
func BytesToUint32(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

func checkBitIndex(bitIndex int) {
	if bitIndex < 0 || bitIndex > 7 {
		panic(fmt.Sprintf("byteutil: bit index %d out of range [0,7]", bitIndex))
	}
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
