//go:build unit
// +build unit

package gcm

import (
	"bytes"
	stdaes "crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vchlum/hue-lights-sub001/internal/infrastructure/cryptography/aescore"
	"github.com/vchlum/hue-lights-sub001/internal/infrastructure/cryptography/gf128"
)

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

const (
	tc3Key       = "feffe9928665731c6d6a8f9467308308"
	tc3Plaintext = "d9313225f88406e5a55909c5aff5269a86a7a9531534f7da2e4c303d8a318a72" +
		"1c3c0c95956809532fcf0e2449a6b525b16aedf5aa0de657ba637b391aafd255"
	tc4Plaintext = "d9313225f88406e5a55909c5aff5269a86a7a9531534f7da2e4c303d8a318a72" +
		"1c3c0c95956809532fcf0e2449a6b525b16aedf5aa0de657ba637b39"
	tc4AAD = "feedfacedeadbeeffeedfacedeadbeefabaddad2"
)

type vector struct {
	name       string
	key        string
	iv         string
	plaintext  string
	aad        string
	ciphertext string
	tag        string
}

// Test cases from the GCM submission "The Galois/Counter Mode of Operation".
var vectors = []vector{
	{
		name: "TestCase1",
		key:  "00000000000000000000000000000000",
		iv:   "000000000000000000000000",
		tag:  "58e2fccefa7e3061367f1d57a4e7455a",
	},
	{
		name:       "TestCase2",
		key:        "00000000000000000000000000000000",
		iv:         "000000000000000000000000",
		plaintext:  "00000000000000000000000000000000",
		ciphertext: "0388dace60b6a392f328c2b971b2fe78",
		tag:        "ab6e47d42cec13bdf53a67b21257bddf",
	},
	{
		name:      "TestCase3",
		key:       tc3Key,
		iv:        "cafebabefacedbaddecaf888",
		plaintext: tc3Plaintext,
		ciphertext: "42831ec2217774244b7221b784d0d49ce3aa212f2c02a4e035c17e2329aca12e" +
			"21d514b25466931c7d8f6a5aac84aa051ba30b396a0aac973d58e091473f5985",
		tag: "4d5c2af327cd64a62cf35abd2ba6fab4",
	},
	{
		name:      "TestCase4",
		key:       tc3Key,
		iv:        "cafebabefacedbaddecaf888",
		plaintext: tc4Plaintext,
		aad:       tc4AAD,
		ciphertext: "42831ec2217774244b7221b784d0d49ce3aa212f2c02a4e035c17e2329aca12e" +
			"21d514b25466931c7d8f6a5aac84aa051ba30b396a0aac973d58e091",
		tag: "5bc94fbc3221a5db94fae95ae7121a47",
	},
	{
		name:      "TestCase5",
		key:       tc3Key,
		iv:        "cafebabefacedbad",
		plaintext: tc4Plaintext,
		aad:       tc4AAD,
		ciphertext: "61353b4c2806934a777ff51fa22a4755699b2a714fcdc6f83766e5f97b6c7423" +
			"73806900e49f24b22b097544d4896b424989b5e1ebac0f07c23f4598",
		tag: "3612d2e79e3b0785561be14aaca2fccb",
	},
	{
		name: "TestCase6",
		key:  tc3Key,
		iv: "9313225df88406e555909c5aff5269aa6a7a9538534f7da1e4c303d2a318a728" +
			"c3c0c95156809539fcf0e2429a6b525416aedbf5a0de6a57a637b39b",
		plaintext: tc4Plaintext,
		aad:       tc4AAD,
		ciphertext: "8ce24998625615b603a033aca13fb894be9112a5c3a211a8ba262a3cca7e2ca7" +
			"01e4a9a4fba43c90ccdcb281d48c7c6fd62875d2aca417034c34aee5",
		tag: "619cc5aefffe0bfa462af43c1699d050",
	},
	{
		name: "TestCase13",
		key:  "0000000000000000000000000000000000000000000000000000000000000000",
		iv:   "000000000000000000000000",
		tag:  "530f8afbc74536b9a963b4f1c4cb738b",
	},
	{
		name:       "TestCase14",
		key:        "0000000000000000000000000000000000000000000000000000000000000000",
		iv:         "000000000000000000000000",
		plaintext:  "00000000000000000000000000000000",
		ciphertext: "cea7403d4d606b6e074ec5d3baf39d18",
		tag:        "d0d1c8a799996bf0265b98b5d48ab919",
	},
	{
		name: "AADOnly",
		key:  tc3Key,
		iv:   "cafebabefacedbaddecaf888",
		aad:  tc4AAD,
		tag:  "346434fd51d5cd0c5887ec63e39b907a",
	},
	{
		name: "EmptyIV",
		key:  "00000000000000000000000000000000",
		tag:  "66e94bd4ef8a2c3b884cfa59ca342b2e",
	},
}

func TestEncrypt(t *testing.T) {
	for _, tt := range vectors {
		t.Run(tt.name, func(t *testing.T) {
			sealed, err := Encrypt(
				mustDecodeHex(t, tt.plaintext),
				mustDecodeHex(t, tt.aad),
				mustDecodeHex(t, tt.iv),
				mustDecodeHex(t, tt.key),
			)
			require.NoError(t, err)
			assert.Equal(t, tt.ciphertext, hex.EncodeToString(sealed.Ciphertext))
			assert.Equal(t, tt.tag, hex.EncodeToString(sealed.Tag))
		})
	}
}

func TestDecrypt(t *testing.T) {
	for _, tt := range vectors {
		t.Run(tt.name, func(t *testing.T) {
			plaintext, err := Decrypt(
				mustDecodeHex(t, tt.ciphertext),
				mustDecodeHex(t, tt.aad),
				mustDecodeHex(t, tt.iv),
				mustDecodeHex(t, tt.key),
				mustDecodeHex(t, tt.tag),
			)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, hex.EncodeToString(plaintext))
		})
	}
}

func TestDecryptRejectsTampering(t *testing.T) {
	tc := vectors[3]
	key := mustDecodeHex(t, tc.key)
	iv := mustDecodeHex(t, tc.iv)
	ciphertext := mustDecodeHex(t, tc.ciphertext)
	aad := mustDecodeHex(t, tc.aad)
	tag := mustDecodeHex(t, tc.tag)

	flipEach := func(t *testing.T, target []byte, decrypt func() ([]byte, error)) {
		for i := range target {
			for bit := 0; bit < 8; bit++ {
				target[i] ^= 1 << bit
				plaintext, err := decrypt()
				target[i] ^= 1 << bit

				require.ErrorIs(t, err, ErrTagMismatch, "byte %d bit %d", i, bit)
				require.Nil(t, plaintext)
			}
		}
	}

	decrypt := func() ([]byte, error) {
		return Decrypt(ciphertext, aad, iv, key, tag)
	}

	t.Run("Ciphertext", func(t *testing.T) { flipEach(t, ciphertext, decrypt) })
	t.Run("AAD", func(t *testing.T) { flipEach(t, aad, decrypt) })
	t.Run("Tag", func(t *testing.T) { flipEach(t, tag, decrypt) })
	t.Run("IV", func(t *testing.T) { flipEach(t, iv, decrypt) })

	t.Run("TruncatedTag", func(t *testing.T) {
		plaintext, err := Decrypt(ciphertext, aad, iv, key, tag[:12])
		assert.ErrorIs(t, err, ErrTagMismatch)
		assert.Nil(t, plaintext)
	})

	t.Run("EmptyTag", func(t *testing.T) {
		plaintext, err := Decrypt(ciphertext, aad, iv, key, nil)
		assert.ErrorIs(t, err, ErrTagMismatch)
		assert.Nil(t, plaintext)
	})

	t.Run("WrongKey", func(t *testing.T) {
		other := bytes.Clone(key)
		other[0] ^= 0x01
		plaintext, err := Decrypt(ciphertext, aad, iv, other, tag)
		assert.ErrorIs(t, err, ErrTagMismatch)
		assert.Nil(t, plaintext)
	})
}

func TestInvalidKey(t *testing.T) {
	_, err := Encrypt([]byte("payload"), nil, make([]byte, StandardNonceSize), make([]byte, 20))
	assert.ErrorIs(t, err, aescore.ErrInvalidKeyLength)

	_, err = Decrypt([]byte("payload"), nil, make([]byte, StandardNonceSize), make([]byte, 20), make([]byte, TagSize))
	assert.ErrorIs(t, err, aescore.ErrInvalidKeyLength)
}

func TestRoundTrip(t *testing.T) {
	for _, keySize := range []int{aescore.KeySize128, aescore.KeySize192, aescore.KeySize256} {
		for _, size := range []int{0, 1, 15, 16, 17, 31, 32, 33, 64, 1000} {
			key := randomBytes(t, keySize)
			iv := randomBytes(t, StandardNonceSize)
			aad := randomBytes(t, size%37)
			plaintext := randomBytes(t, size)

			sealed, err := Encrypt(plaintext, aad, iv, key)
			require.NoError(t, err)
			require.Len(t, sealed.Ciphertext, size)
			require.Len(t, sealed.Tag, TagSize)

			got, err := Decrypt(sealed.Ciphertext, aad, iv, key, sealed.Tag)
			require.NoError(t, err)
			assert.Equal(t, plaintext, got, "key %d size %d", keySize, size)
		}
	}
}

func TestMatchesStandardLibrary(t *testing.T) {
	for _, keySize := range []int{aescore.KeySize128, aescore.KeySize192, aescore.KeySize256} {
		for _, ivSize := range []int{StandardNonceSize, 8, 16, 60} {
			key := randomBytes(t, keySize)
			iv := randomBytes(t, ivSize)
			aad := randomBytes(t, 20)
			plaintext := randomBytes(t, 77)

			block, err := stdaes.NewCipher(key)
			require.NoError(t, err)
			aead, err := cipher.NewGCMWithNonceSize(block, ivSize)
			require.NoError(t, err)
			want := aead.Seal(nil, iv, plaintext, aad)

			sealed, err := Encrypt(plaintext, aad, iv, key)
			require.NoError(t, err)
			assert.Equal(t, want[:len(plaintext)], sealed.Ciphertext, "key %d iv %d", keySize, ivSize)
			assert.Equal(t, want[len(plaintext):], sealed.Tag, "key %d iv %d", keySize, ivSize)
		}
	}
}

func TestInputsAreNotModified(t *testing.T) {
	key := randomBytes(t, aescore.KeySize256)
	iv := randomBytes(t, StandardNonceSize)
	aad := randomBytes(t, 13)
	plaintext := randomBytes(t, 45)

	keyCopy, ivCopy, aadCopy, ptCopy := bytes.Clone(key), bytes.Clone(iv), bytes.Clone(aad), bytes.Clone(plaintext)

	sealed, err := Encrypt(plaintext, aad, iv, key)
	require.NoError(t, err)
	ctCopy, tagCopy := bytes.Clone(sealed.Ciphertext), bytes.Clone(sealed.Tag)

	_, err = Decrypt(sealed.Ciphertext, aad, iv, key, sealed.Tag)
	require.NoError(t, err)

	assert.Equal(t, keyCopy, key)
	assert.Equal(t, ivCopy, iv)
	assert.Equal(t, aadCopy, aad)
	assert.Equal(t, ptCopy, plaintext)
	assert.Equal(t, ctCopy, sealed.Ciphertext)
	assert.Equal(t, tagCopy, sealed.Tag)
}

func TestGHASH(t *testing.T) {
	key := make([]byte, aescore.KeySize128)
	schedule, err := aescore.KeyExpand(key)
	require.NoError(t, err)
	h := hashSubkey(schedule)
	assert.Equal(t, "66e94bd4ef8a2c3b884cfa59ca342b2e", hex.EncodeToString(h[:]))

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, gf128.Zero(), GHASH(h, nil))
	})

	t.Run("TestCase2", func(t *testing.T) {
		data := mustDecodeHex(t, "0388dace60b6a392f328c2b971b2fe78"+"00000000000000000000000000000080")
		got := GHASH(h, data)
		assert.Equal(t, "f38cbb1ad69223dcc3457ae5b6b0f885", hex.EncodeToString(got[:]))
	})

	t.Run("Unaligned", func(t *testing.T) {
		assert.Panics(t, func() { GHASH(h, make([]byte, 17)) })
	})
}

func TestGCTR(t *testing.T) {
	schedule, err := aescore.KeyExpand(make([]byte, aescore.KeySize128))
	require.NoError(t, err)

	var j0 gf128.Block
	j0[gf128.Size-1] = 1

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, GCTR(schedule, j0, nil))
	})

	t.Run("Keystream", func(t *testing.T) {
		got := GCTR(schedule, j0, make([]byte, gf128.Size))
		assert.Equal(t, "58e2fccefa7e3061367f1d57a4e7455a", hex.EncodeToString(got))
	})

	t.Run("PartialFinalBlock", func(t *testing.T) {
		full := GCTR(schedule, j0, make([]byte, 2*gf128.Size))
		partial := GCTR(schedule, j0, make([]byte, gf128.Size+5))
		assert.Equal(t, full[:gf128.Size+5], partial)
	})

	t.Run("Involution", func(t *testing.T) {
		input := randomBytes(t, 50)
		assert.Equal(t, input, GCTR(schedule, j0, GCTR(schedule, j0, input)))
	})
}

func TestPreCounterBlock(t *testing.T) {
	schedule, err := aescore.KeyExpand(mustDecodeHex(t, tc3Key))
	require.NoError(t, err)
	h := hashSubkey(schedule)

	t.Run("StandardNonce", func(t *testing.T) {
		j0 := preCounterBlock(h, mustDecodeHex(t, "cafebabefacedbaddecaf888"))
		assert.Equal(t, "cafebabefacedbaddecaf88800000001", hex.EncodeToString(j0[:]))
	})

	t.Run("ShortNonce", func(t *testing.T) {
		j0 := preCounterBlock(h, mustDecodeHex(t, "cafebabefacedbad"))
		assert.Equal(t, "c43a83c4c4badec4354ca984db252f7d", hex.EncodeToString(j0[:]))
	})
}

func TestAppendBitLength(t *testing.T) {
	assert.Equal(t, "0000000000000000", hex.EncodeToString(appendBitLength(nil, 0)))
	assert.Equal(t, "00000000000001e0", hex.EncodeToString(appendBitLength(nil, 60)))
	assert.Equal(t, "0000000100000000", hex.EncodeToString(appendBitLength(nil, 1<<29)))
}
