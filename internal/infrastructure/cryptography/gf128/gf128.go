// Package gf128 implements the fixed 16-byte block arithmetic used by GCM:
// XOR, single-bit right shift, multiplication in GF(2^128) and the 32-bit
// counter increment.
//
// Block is a value type, so every operation returns a new block and never
// touches its operands.
package gf128

import (
	"fmt"

	"github.com/vchlum/hue-lights-sub001/internal/pkg/byteutil"
)

// Size is the block size in bytes.
const Size = 16

// Block is a 128-bit GCM block. Byte 0 holds the most-significant bits.
type Block [Size]byte

// r is the GCM reduction constant for x^128 + x^7 + x^2 + x + 1.
var r = Block{0xE1}

// Zero returns the all-zero block.
func Zero() Block {
	return Block{}
}

// FromBytes converts a slice of exactly Size bytes into a Block.
func FromBytes(b []byte) (Block, error) {
	var out Block
	if len(b) != Size {
		return out, fmt.Errorf("gf128: block must be %d bytes, got %d", Size, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// Xor returns a ^ b.
func Xor(a, b Block) Block {
	var out Block
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// XorBytes returns a new slice holding a ^ b. Both operands must have the
// same length.
func XorBytes(a, b []byte) []byte {
	if len(a) != len(b) {
		panic(fmt.Sprintf("gf128: xor of unequal lengths %d and %d", len(a), len(b)))
	}
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// RightShift shifts the whole block right by one bit, carrying the low bit
// of byte i into the high bit of byte i+1. The low bit of byte 15 is dropped.
func RightShift(b Block) Block {
	var out Block
	var carry byte
	for i := 0; i < Size; i++ {
		out[i] = b[i]>>1 | carry
		carry = b[i] << 7
	}
	return out
}

// Multiply returns x·y in GF(2^128) with the GCM bit ordering
// (NIST SP 800-38D, Algorithm 1).
func Multiply(x, y Block) Block {
	z := Zero()
	v := y
	for i := 0; i < Size; i++ {
		for bit := 7; bit >= 0; bit-- {
			if byteutil.BitAt(x[:], i, bit) {
				z = Xor(z, v)
			}
			if byteutil.BitAt(v[:], Size-1, 0) {
				v = Xor(RightShift(v), r)
			} else {
				v = RightShift(v)
			}
		}
	}
	return z
}

// IncrementCounter32 adds one to the big-endian counter held in bytes 12..15,
// wrapping modulo 2^32. Bytes 0..11 are left untouched.
func IncrementCounter32(b Block) Block {
	out := b
	for i := Size - 1; i >= Size-4; i-- {
		out[i]++
		if out[i] != 0 {
			break
		}
	}
	return out
}

// ZeroPadLength returns how many zero bytes (0..15) round n up to a multiple
// of Size.
func ZeroPadLength(n int) int {
	return (Size - n%Size) % Size
}
