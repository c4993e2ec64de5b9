// Package aescore implements the AES-128/192/256 forward cipher (FIPS-197).
//
// Only encryption is provided: GCM runs AES exclusively in the forward
// direction to produce its keystream and hash subkey.
package aescore

import (
	"errors"
	"fmt"
)

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// Supported key sizes in bytes.
const (
	KeySize128 = 16
	KeySize192 = 24
	KeySize256 = 32
)

var (
	// ErrInvalidKeyLength is returned when a key is not 16, 24 or 32 bytes long.
	ErrInvalidKeyLength = errors.New("aes: invalid key length")

	// ErrInvalidBlockLength is returned when a block is not exactly 16 bytes.
	ErrInvalidBlockLength = errors.New("aes: invalid block length")
)

// Word is one 4-byte column of the key schedule.
type Word [4]byte

// Schedule is the expanded key: 4 words per round key, 11/13/15 round keys
// for 128/192/256-bit keys. It is read-only once built.
type Schedule []Word

// state is the 4x4 cipher state, addressed state[row][column].
type state [4][4]byte

// Rounds returns the number of cipher rounds (10, 12 or 14).
func (s Schedule) Rounds() int {
	return len(s)/4 - 1
}

// KeyExpand derives the round key schedule for key.
func KeyExpand(key []byte) (Schedule, error) {
	nk := len(key) / 4
	switch len(key) {
	case KeySize128, KeySize192, KeySize256:
	default:
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidKeyLength, len(key))
	}

	roundLimit := nk + 7
	w := make(Schedule, 4*roundLimit)
	for i := 0; i < nk; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}

	for i := nk; i < len(w); i++ {
		tmp := w[i-1]
		switch {
		case i%nk == 0:
			tmp = xorWord(subWord(rotWord(tmp)), roundConstants[i/nk-1])
		case nk > 6 && i%nk == 4:
			tmp = subWord(tmp)
		}
		w[i] = xorWord(w[i-nk], tmp)
	}
	return w, nil
}

// EncryptBlock encrypts a single 16-byte block with the schedule.
func (s Schedule) EncryptBlock(in [BlockSize]byte) [BlockSize]byte {
	st := load(in)
	rounds := s.Rounds()

	st = addRoundKey(st, s[0:4])
	for round := 1; round < rounds; round++ {
		st = subBytes(st)
		st = shiftRows(st)
		st = mixColumns(st)
		st = addRoundKey(st, s[4*round:4*round+4])
	}
	st = subBytes(st)
	st = shiftRows(st)
	st = addRoundKey(st, s[4*rounds:4*rounds+4])

	return store(st)
}

// EncryptBlock expands key and encrypts one 16-byte block.
func EncryptBlock(block, key []byte) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidBlockLength, len(block))
	}
	schedule, err := KeyExpand(key)
	if err != nil {
		return nil, err
	}

	var in [BlockSize]byte
	copy(in[:], block)
	out := schedule.EncryptBlock(in)
	return out[:], nil
}

// load fills the state column by column from the flat block.
func load(in [BlockSize]byte) state {
	var st state
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			st[r][c] = in[c*4+r]
		}
	}
	return st
}

func store(st state) [BlockSize]byte {
	var out [BlockSize]byte
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c*4+r] = st[r][c]
		}
	}
	return out
}

func subByte(b byte) byte {
	return sBox[b>>4][b&0x0f]
}

func subBytes(st state) state {
	for r := range st {
		for c := range st[r] {
			st[r][c] = subByte(st[r][c])
		}
	}
	return st
}

// shiftRows rotates row r left by r positions.
func shiftRows(st state) state {
	var out state
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = st[r][(c+r)%4]
		}
	}
	return out
}

func mixColumns(st state) state {
	var out state
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var acc byte
			for k := 0; k < 4; k++ {
				acc ^= gmul(mixMatrix[r][k], st[k][c])
			}
			out[r][c] = acc
		}
	}
	return out
}

// addRoundKey XORs round key word c into state column c.
func addRoundKey(st state, roundKey []Word) state {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			st[r][c] ^= roundKey[c][r]
		}
	}
	return st
}

// gmul multiplies two bytes in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1.
func gmul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1b
		}
		b >>= 1
	}
	return p
}

func rotWord(w Word) Word {
	return Word{w[1], w[2], w[3], w[0]}
}

func subWord(w Word) Word {
	return Word{subByte(w[0]), subByte(w[1]), subByte(w[2]), subByte(w[3])}
}

func xorWord(a, b Word) Word {
	return Word{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}
