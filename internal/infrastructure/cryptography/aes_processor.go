package cryptography

import (
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/vchlum/hue-lights-sub001/internal/domain/crypto"
	"github.com/vchlum/hue-lights-sub001/internal/infrastructure/cryptography/gcm"
	"github.com/vchlum/hue-lights-sub001/internal/pkg/logger"
)

// ErrEnvelopeTooShort is returned when a ciphertext cannot hold a nonce and a tag.
var ErrEnvelopeTooShort = errors.New("ciphertext too short")

// aesProcessor struct that implements the AESProcessor interface
type aesProcessor struct {
	logger logger.Logger
}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor(logger logger.Logger) (crypto.AESProcessor, error) {
	return &aesProcessor{
		logger: logger,
	}, nil
}

// GenerateKey generates a random AES key of the specified size in bytes.
func (a *aesProcessor) GenerateKey(keySize int) ([]byte, error) {
	if keySize <= 0 {
		return nil, fmt.Errorf("invalid key size: %d", keySize)
	}

	spec := crypto.NewKeySpec(crypto.AlgorithmAES, uint32(keySize)*8)
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid key size %d: %w", keySize, err)
	}

	key := make([]byte, spec.KeyBytes())
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}

	a.logger.Info("Generated AES key ", spec.ID, " of ", spec.KeySize, " bits")
	return key, nil
}

// Encrypt encrypts data under a fresh random nonce and returns nonce || ciphertext || tag.
func (a *aesProcessor) Encrypt(data, key []byte) ([]byte, error) {
	return a.EncryptWithAAD(data, nil, key)
}

// Decrypt authenticates and decrypts an envelope produced by Encrypt.
func (a *aesProcessor) Decrypt(ciphertext, key []byte) ([]byte, error) {
	return a.DecryptWithAAD(ciphertext, nil, key)
}

// EncryptWithAAD encrypts data and binds aad into the authentication tag.
func (a *aesProcessor) EncryptWithAAD(data, aad, key []byte) ([]byte, error) {
	nonce := make([]byte, crypto.NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed, err := gcm.Encrypt(data, aad, nonce, key)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt: %w", err)
	}

	envelope := make([]byte, 0, len(nonce)+len(sealed.Ciphertext)+len(sealed.Tag))
	envelope = append(envelope, nonce...)
	envelope = append(envelope, sealed.Ciphertext...)
	envelope = append(envelope, sealed.Tag...)

	a.logger.Info("AES-GCM encryption succeeded")
	return envelope, nil
}

// DecryptWithAAD authenticates the envelope together with aad and returns the plaintext.
func (a *aesProcessor) DecryptWithAAD(ciphertext, aad, key []byte) ([]byte, error) {
	if len(ciphertext) < crypto.MinEnvelopeSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrEnvelopeTooShort, len(ciphertext), crypto.MinEnvelopeSize)
	}

	nonce := ciphertext[:crypto.NonceSize]
	body := ciphertext[crypto.NonceSize : len(ciphertext)-crypto.TagSize]
	tag := ciphertext[len(ciphertext)-crypto.TagSize:]

	plaintext, err := gcm.Decrypt(body, aad, nonce, key, tag)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}

	a.logger.Info("AES-GCM decryption succeeded")
	return plaintext, nil
}
