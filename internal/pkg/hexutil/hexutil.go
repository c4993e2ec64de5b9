// Package hexutil converts between byte slices and lowercase hex strings.
package hexutil

import (
	"errors"
	"fmt"
	"strings"
)

const hexDigits = "0123456789abcdef"

// ErrMalformedHex is returned for odd-length input or non-hex characters.
var ErrMalformedHex = errors.New("malformed hex")

// ToHex encodes b as lowercase hex, most-significant nibble first.
func ToHex(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b) * 2)
	for _, v := range b {
		sb.WriteByte(hexDigits[v>>4])
		sb.WriteByte(hexDigits[v&0x0f])
	}
	return sb.String()
}

// FromHex decodes s. Both cases are accepted.
func FromHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrMalformedHex, len(s))
	}

	out := make([]byte, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok := nibble(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: invalid character %q at offset %d", ErrMalformedHex, s[i], i)
		}
		lo, ok := nibble(s[i+1])
		if !ok {
			return nil, fmt.Errorf("%w: invalid character %q at offset %d", ErrMalformedHex, s[i+1], i+1)
		}
		out[i/2] = hi<<4 | lo
	}
	return out, nil
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
