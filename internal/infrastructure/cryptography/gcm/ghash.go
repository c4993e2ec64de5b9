package gcm

import (
	"fmt"

	"github.com/vchlum/hue-lights-sub001/internal/infrastructure/cryptography/aescore"
	"github.com/vchlum/hue-lights-sub001/internal/infrastructure/cryptography/gf128"
)

// GHASH folds data, which must be a whole number of blocks, into a single
// block under the hash subkey h: Y_i = (Y_{i-1} ^ X_i) · h with Y_0 = 0.
func GHASH(h gf128.Block, data []byte) gf128.Block {
	if len(data)%gf128.Size != 0 {
		panic(fmt.Sprintf("gcm: GHASH input of %d bytes is not block aligned", len(data)))
	}

	y := gf128.Zero()
	for off := 0; off < len(data); off += gf128.Size {
		var x gf128.Block
		copy(x[:], data[off:off+gf128.Size])
		y = gf128.Multiply(gf128.Xor(y, x), h)
	}
	return y
}

// GCTR XORs input with the keystream E(K, CB_1) || E(K, CB_2) || ... where
// CB_1 = icb and each following counter block is inc32 of the previous one.
// A short final chunk only consumes the leading keystream bytes. Empty input
// yields empty output without touching the cipher.
func GCTR(schedule aescore.Schedule, icb gf128.Block, input []byte) []byte {
	out := make([]byte, 0, len(input))
	if len(input) == 0 {
		return out
	}

	n := (len(input) + gf128.Size - 1) / gf128.Size
	cb := icb
	for i := 0; i < n; i++ {
		keystream := schedule.EncryptBlock(cb)

		end := min((i+1)*gf128.Size, len(input))
		chunk := input[i*gf128.Size : end]
		out = append(out, gf128.XorBytes(chunk, keystream[:len(chunk)])...)

		if i < n-1 {
			cb = gf128.IncrementCounter32(cb)
		}
	}
	return out
}
