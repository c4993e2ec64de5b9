// Package digest provides SHA-256 (FIPS 180-4) and HMAC (RFC 2104) behind a
// small Hash interface so further hash functions can be plugged into HMAC.
package digest

import (
	"math/bits"

	"github.com/vchlum/hue-lights-sub001/internal/pkg/byteutil"
)

// Hash is a one-shot hash function usable by HMAC.
type Hash interface {
	Name() string
	// Size is the digest length in bytes.
	Size() int
	// BlockSize is the compression block length in bytes.
	BlockSize() int
	Sum(msg []byte) []byte
}

const (
	// Size256 is the SHA-256 digest length in bytes.
	Size256 = 32

	// BlockSize256 is the SHA-256 block length in bytes.
	BlockSize256 = 64
)

// SHA256 is the SHA-256 Hash.
var SHA256 Hash = sha256Hash{}

type sha256Hash struct{}

func (sha256Hash) Name() string   { return "SHA-256" }
func (sha256Hash) Size() int      { return Size256 }
func (sha256Hash) BlockSize() int { return BlockSize256 }

func (sha256Hash) Sum(msg []byte) []byte {
	sum := Sum256(msg)
	return sum[:]
}

var initialHash = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var roundConstants = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Sum256 returns the SHA-256 digest of msg.
func Sum256(msg []byte) [Size256]byte {
	h := initialHash
	padded := pad(msg)
	for off := 0; off < len(padded); off += BlockSize256 {
		compress(&h, padded[off:off+BlockSize256])
	}

	var out [Size256]byte
	for i, v := range h {
		copy(out[4*i:], byteutil.Uint32ToBytes(v))
	}
	return out
}

// pad returns msg || 0x80 || 0^k || [bitlen]_64 with the total a multiple of 64 bytes.
func pad(msg []byte) []byte {
	zeros := (BlockSize256 - (len(msg)+9)%BlockSize256) % BlockSize256
	out := make([]byte, 0, len(msg)+9+zeros)
	out = append(out, msg...)
	out = append(out, 0x80)
	out = append(out, make([]byte, zeros)...)

	bitLen := uint64(len(msg)) * 8
	out = append(out, byteutil.Uint32ToBytes(uint32(bitLen>>32))...)
	return append(out, byteutil.Uint32ToBytes(uint32(bitLen))...)
}

func compress(h *[8]uint32, block []byte) {
	var w [64]uint32
	for t := 0; t < 16; t++ {
		w[t] = byteutil.BytesToUint32(block[4*t:])
	}
	for t := 16; t < 64; t++ {
		w[t] = smallSigma1(w[t-2]) + w[t-7] + smallSigma0(w[t-15]) + w[t-16]
	}

	a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
	for t := 0; t < 64; t++ {
		t1 := hh + bigSigma1(e) + ch(e, f, g) + roundConstants[t] + w[t]
		t2 := bigSigma0(a) + maj(a, b, c)
		hh, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
	h[5] += f
	h[6] += g
	h[7] += hh
}

func ch(x, y, z uint32) uint32  { return (x & y) ^ (^x & z) }
func maj(x, y, z uint32) uint32 { return (x & y) ^ (x & z) ^ (y & z) }

func bigSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -2) ^ bits.RotateLeft32(x, -13) ^ bits.RotateLeft32(x, -22)
}

func bigSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -6) ^ bits.RotateLeft32(x, -11) ^ bits.RotateLeft32(x, -25)
}

func smallSigma0(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ x>>3
}

func smallSigma1(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ x>>10
}
