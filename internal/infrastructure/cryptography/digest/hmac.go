package digest

import "crypto/subtle"

const (
	ipad = 0x36
	opad = 0x5c
)

// HMAC computes H((K0 ^ opad) || H((K0 ^ ipad) || msg)). Keys longer than the
// block size are hashed first; shorter keys are zero-padded.
func HMAC(h Hash, key, msg []byte) []byte {
	blockSize := h.BlockSize()

	k0 := make([]byte, blockSize)
	if len(key) > blockSize {
		copy(k0, h.Sum(key))
	} else {
		copy(k0, key)
	}
	defer clear(k0)

	inner := make([]byte, 0, blockSize+len(msg))
	for _, b := range k0 {
		inner = append(inner, b^ipad)
	}
	inner = append(inner, msg...)
	innerSum := h.Sum(inner)
	clear(inner[:blockSize])

	outer := make([]byte, 0, blockSize+len(innerSum))
	for _, b := range k0 {
		outer = append(outer, b^opad)
	}
	outer = append(outer, innerSum...)
	defer clear(outer[:blockSize])

	return h.Sum(outer)
}

// HMACSHA256 is HMAC instantiated with SHA-256.
func HMACSHA256(key, msg []byte) []byte {
	return HMAC(SHA256, key, msg)
}

// Equal compares two MACs in constant time for equal lengths.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
