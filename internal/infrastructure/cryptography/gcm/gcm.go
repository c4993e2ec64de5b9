// Package gcm implements AES Galois/Counter Mode (NIST SP 800-38D) on top of
// aescore and gf128.
//
// Each call runs the whole construction synchronously: derive the hash
// subkey, derive the pre-counter block J0 from the IV, run GCTR from inc32(J0)
// over the data, then hash AAD and ciphertext and encrypt the result under
// J0 to form the tag. Nothing is cached between calls and caller buffers are
// never written to.
package gcm

import (
	"crypto/subtle"
	"errors"

	"github.com/vchlum/hue-lights-sub001/internal/infrastructure/cryptography/aescore"
	"github.com/vchlum/hue-lights-sub001/internal/infrastructure/cryptography/gf128"
	"github.com/vchlum/hue-lights-sub001/internal/pkg/byteutil"
)

const (
	// TagSize is the size of the authentication tag in bytes.
	TagSize = 16

	// StandardNonceSize is the IV length that takes the J0 = IV || 0^31 || 1 fast path.
	StandardNonceSize = 12
)

// ErrTagMismatch is returned by Decrypt when authentication fails.
var ErrTagMismatch = errors.New("gcm: message authentication failed")

// Sealed is the output of Encrypt.
type Sealed struct {
	Ciphertext []byte
	Tag        []byte
}

// Encrypt encrypts plaintext and authenticates it together with aad.
// The IV may have any length; 12 bytes is the recommended size.
func Encrypt(plaintext, aad, iv, key []byte) (*Sealed, error) {
	schedule, err := aescore.KeyExpand(key)
	if err != nil {
		return nil, err
	}

	h := hashSubkey(schedule)
	j0 := preCounterBlock(h, iv)

	ciphertext := GCTR(schedule, gf128.IncrementCounter32(j0), plaintext)
	tag := computeTag(schedule, h, j0, aad, ciphertext)

	return &Sealed{
		Ciphertext: ciphertext,
		Tag:        tag,
	}, nil
}

// Decrypt verifies tag over ciphertext and aad and, only if it matches,
// returns the plaintext. A failed check returns ErrTagMismatch and no data.
func Decrypt(ciphertext, aad, iv, key, tag []byte) ([]byte, error) {
	schedule, err := aescore.KeyExpand(key)
	if err != nil {
		return nil, err
	}

	h := hashSubkey(schedule)
	j0 := preCounterBlock(h, iv)

	expected := computeTag(schedule, h, j0, aad, ciphertext)
	if len(tag) != TagSize || subtle.ConstantTimeCompare(expected, tag) != 1 {
		return nil, ErrTagMismatch
	}

	return GCTR(schedule, gf128.IncrementCounter32(j0), ciphertext), nil
}

// hashSubkey returns H = E(K, 0^128).
func hashSubkey(schedule aescore.Schedule) gf128.Block {
	return schedule.EncryptBlock(gf128.Zero())
}

// preCounterBlock derives J0 from the IV.
func preCounterBlock(h gf128.Block, iv []byte) gf128.Block {
	if len(iv) == StandardNonceSize {
		var j0 gf128.Block
		copy(j0[:], iv)
		j0[gf128.Size-1] = 1
		return j0
	}

	buf := make([]byte, 0, len(iv)+gf128.ZeroPadLength(len(iv))+gf128.Size)
	buf = appendPadded(buf, iv)
	buf = append(buf, make([]byte, 8)...)
	buf = appendBitLength(buf, len(iv))
	return GHASH(h, buf)
}

// computeTag returns GCTR(J0, GHASH(A || 0^v || C || 0^u || [len(A)]_64 || [len(C)]_64)).
func computeTag(schedule aescore.Schedule, h, j0 gf128.Block, aad, ciphertext []byte) []byte {
	size := len(aad) + gf128.ZeroPadLength(len(aad)) + len(ciphertext) + gf128.ZeroPadLength(len(ciphertext)) + gf128.Size
	s := make([]byte, 0, size)
	s = appendPadded(s, aad)
	s = appendPadded(s, ciphertext)
	s = appendBitLength(s, len(aad))
	s = appendBitLength(s, len(ciphertext))

	digest := GHASH(h, s)
	return GCTR(schedule, j0, digest[:])
}

// appendPadded appends data followed by zeros up to the next block boundary.
// Empty data contributes nothing.
func appendPadded(dst, data []byte) []byte {
	dst = append(dst, data...)
	return append(dst, make([]byte, gf128.ZeroPadLength(len(data)))...)
}

// appendBitLength appends the bit length of an n-byte string as a 64-bit
// big-endian integer, written as two 32-bit halves.
func appendBitLength(dst []byte, n int) []byte {
	bits := uint64(n) * 8
	dst = append(dst, byteutil.Uint32ToBytes(uint32(bits>>32))...)
	return append(dst, byteutil.Uint32ToBytes(uint32(bits))...)
}
