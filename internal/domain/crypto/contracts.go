package crypto

// AESProcessor handles AES-GCM authenticated encryption.
// Ciphertexts are self-contained envelopes: nonce (12 bytes) || ciphertext || tag (16 bytes).
type AESProcessor interface {
	// GenerateKey generates a random AES key of the specified size.
	// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
	GenerateKey(keySize int) ([]byte, error)

	// Encrypt encrypts plaintext data with the provided symmetric key under a fresh random nonce.
	// Returns the envelope or an error if encryption fails.
	Encrypt(data, key []byte) ([]byte, error)

	// Decrypt authenticates and decrypts an envelope produced by Encrypt.
	// Returns the original plaintext or an error if the envelope is malformed or was tampered with.
	Decrypt(ciphertext, key []byte) ([]byte, error)

	// EncryptWithAAD works like Encrypt and additionally binds aad, which is authenticated but not encrypted.
	EncryptWithAAD(data, aad, key []byte) ([]byte, error)

	// DecryptWithAAD works like Decrypt; aad must match the value given to EncryptWithAAD.
	DecryptWithAAD(ciphertext, aad, key []byte) ([]byte, error)
}

// MACProcessor handles HMAC-SHA256 message authentication.
type MACProcessor interface {
	// GenerateKey generates a random HMAC key of the specified size in bytes.
	GenerateKey(keySize int) ([]byte, error)

	// Sign computes the MAC of message under key.
	Sign(message, key []byte) ([]byte, error)

	// Verify recomputes the MAC of message and compares it to mac in constant time.
	// Returns true if the MAC is valid, false otherwise.
	Verify(message, mac, key []byte) (bool, error)
}
