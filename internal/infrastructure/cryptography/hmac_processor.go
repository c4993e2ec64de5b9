package cryptography

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/vchlum/hue-lights-sub001/internal/domain/crypto"
	"github.com/vchlum/hue-lights-sub001/internal/infrastructure/cryptography/digest"
	"github.com/vchlum/hue-lights-sub001/internal/pkg/logger"
)

// ErrEmptyKey is returned when a MAC operation is given no key.
var ErrEmptyKey = errors.New("key cannot be empty")

// hmacProcessor struct that implements the MACProcessor interface
type hmacProcessor struct {
	logger logger.Logger
	hash   digest.Hash
}

// NewHMACProcessor creates and returns a new instance of hmacProcessor over SHA-256
func NewHMACProcessor(logger logger.Logger) (crypto.MACProcessor, error) {
	return &hmacProcessor{
		logger: logger,
		hash:   digest.SHA256,
	}, nil
}

// GenerateKey generates a random HMAC key of the specified size in bytes.
func (h *hmacProcessor) GenerateKey(keySize int) ([]byte, error) {
	if keySize <= 0 {
		return nil, fmt.Errorf("invalid key size: %d", keySize)
	}

	spec := crypto.NewKeySpec(crypto.AlgorithmHMACSHA256, uint32(keySize)*8)
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid key size %d: %w", keySize, err)
	}

	key := make([]byte, spec.KeyBytes())
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate HMAC key: %w", err)
	}

	h.logger.Info("Generated HMAC key ", spec.ID, " of ", spec.KeySize, " bits")
	return key, nil
}

// Sign computes HMAC(key, message).
func (h *hmacProcessor) Sign(message, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	mac := digest.HMAC(h.hash, key, message)

	h.logger.Info(h.hash.Name(), " HMAC signing succeeded")
	return mac, nil
}

// Verify recomputes the MAC and compares it in constant time.
func (h *hmacProcessor) Verify(message, mac, key []byte) (bool, error) {
	if len(key) == 0 {
		return false, ErrEmptyKey
	}
	if len(mac) != h.hash.Size() {
		return false, fmt.Errorf("invalid MAC length: got %d, want %d", len(mac), h.hash.Size())
	}

	expected := digest.HMAC(h.hash, key, message)
	valid := digest.Equal(expected, mac)

	if valid {
		h.logger.Info(h.hash.Name(), " HMAC verification succeeded")
	} else {
		h.logger.Warn(h.hash.Name(), " HMAC verification failed")
	}
	return valid, nil
}
