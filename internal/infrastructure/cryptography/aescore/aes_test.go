//go:build unit
// +build unit

package aescore

import (
	stdaes "crypto/aes"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestEncryptBlockFIPS197(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		plaintext string
		expected  string
	}{
		{
			name:      "Appendix B",
			key:       "2b7e151628aed2a6abf7158809cf4f3c",
			plaintext: "3243f6a8885a308d313198a2e0370734",
			expected:  "3925841d02dc09fbdc118597196a0b32",
		},
		{
			name:      "Appendix C.1 AES-128",
			key:       "000102030405060708090a0b0c0d0e0f",
			plaintext: "00112233445566778899aabbccddeeff",
			expected:  "69c4e0d86a7b0430d8cdb78070b4c55a",
		},
		{
			name:      "Appendix C.2 AES-192",
			key:       "000102030405060708090a0b0c0d0e0f1011121314151617",
			plaintext: "00112233445566778899aabbccddeeff",
			expected:  "dda97ca4864cdfe06eaf70a0ec0d7191",
		},
		{
			name:      "Appendix C.3 AES-256",
			key:       "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
			plaintext: "00112233445566778899aabbccddeeff",
			expected:  "8ea2b7ca516745bfeafc49904b496089",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := mustDecodeHex(t, tt.plaintext)
			got, err := EncryptBlock(block, mustDecodeHex(t, tt.key))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, hex.EncodeToString(got))
			assert.Equal(t, tt.plaintext, hex.EncodeToString(block), "input block must not change")
		})
	}
}

func TestKeyExpand(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		rounds     int
		words      int
		firstIndex int
		first      string
		last       string
	}{
		{
			name:       "AES-128 Appendix A.1",
			key:        "2b7e151628aed2a6abf7158809cf4f3c",
			rounds:     10,
			words:      44,
			firstIndex: 4,
			first:      "a0fafe17",
			last:       "b6630ca6",
		},
		{
			name:       "AES-192 Appendix A.2",
			key:        "8e73b0f7da0e6452c810f32b809079e562f8ead2522c6b7b",
			rounds:     12,
			words:      52,
			firstIndex: 6,
			first:      "fe0c91f7",
			last:       "01002202",
		},
		{
			name:       "AES-256 Appendix A.3",
			key:        "603deb1015ca71be2b73aef0857d77811f352c073b6108d72d9810a30914dff4",
			rounds:     14,
			words:      60,
			firstIndex: 8,
			first:      "9ba35411",
			last:       "706c631e",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule, err := KeyExpand(mustDecodeHex(t, tt.key))
			require.NoError(t, err)
			require.Len(t, schedule, tt.words)
			assert.Equal(t, tt.rounds, schedule.Rounds())

			first := schedule[tt.firstIndex]
			last := schedule[len(schedule)-1]
			assert.Equal(t, tt.first, hex.EncodeToString(first[:]))
			assert.Equal(t, tt.last, hex.EncodeToString(last[:]))
		})
	}
}

func TestInvalidInput(t *testing.T) {
	t.Run("KeyLengths", func(t *testing.T) {
		for _, size := range []int{0, 1, 8, 15, 17, 20, 31, 33, 64} {
			_, err := KeyExpand(make([]byte, size))
			assert.ErrorIs(t, err, ErrInvalidKeyLength, "size %d", size)

			_, err = EncryptBlock(make([]byte, BlockSize), make([]byte, size))
			assert.ErrorIs(t, err, ErrInvalidKeyLength, "size %d", size)
		}
	})

	t.Run("BlockLength", func(t *testing.T) {
		_, err := EncryptBlock(make([]byte, 15), make([]byte, KeySize128))
		assert.ErrorIs(t, err, ErrInvalidBlockLength)
	})
}

func TestMatchesStandardLibrary(t *testing.T) {
	for _, size := range []int{KeySize128, KeySize192, KeySize256} {
		key := make([]byte, size)
		_, err := rand.Read(key)
		require.NoError(t, err)

		schedule, err := KeyExpand(key)
		require.NoError(t, err)
		reference, err := stdaes.NewCipher(key)
		require.NoError(t, err)

		for i := 0; i < 32; i++ {
			var in [BlockSize]byte
			_, err := rand.Read(in[:])
			require.NoError(t, err)

			want := make([]byte, BlockSize)
			reference.Encrypt(want, in[:])
			got := schedule.EncryptBlock(in)
			assert.Equal(t, want, got[:])
		}
	}
}

func TestGmul(t *testing.T) {
	// FIPS-197 section 4.2 example: {57} • {83} = {c1}.
	assert.Equal(t, byte(0xc1), gmul(0x57, 0x83))
	assert.Equal(t, byte(0xfe), gmul(0x57, 0x13))
	assert.Equal(t, byte(0x00), gmul(0x00, 0xff))
}

func TestShiftRows(t *testing.T) {
	var in state
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			in[r][c] = byte(r*4 + c)
		}
	}
	out := shiftRows(in)

	assert.Equal(t, [4]byte{0, 1, 2, 3}, out[0])
	assert.Equal(t, [4]byte{5, 6, 7, 4}, out[1])
	assert.Equal(t, [4]byte{10, 11, 8, 9}, out[2])
	assert.Equal(t, [4]byte{15, 12, 13, 14}, out[3])
}

func TestLoadStoreColumnMajor(t *testing.T) {
	var in [BlockSize]byte
	for i := range in {
		in[i] = byte(i)
	}
	st := load(in)

	assert.Equal(t, byte(1), st[1][0])
	assert.Equal(t, byte(4), st[0][1])
	assert.Equal(t, in, store(st))
}
