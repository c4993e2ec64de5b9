package crypto

// OperationEncryption represents the encryption operation type
const OperationEncryption = "encryption"

// OperationSigning represents the MAC signing operation type
const OperationSigning = "signing"

// AlgorithmAES represents the AES-GCM authenticated encryption algorithm
const AlgorithmAES = "AES"

// AlgorithmHMACSHA256 represents the HMAC-SHA256 message authentication algorithm
const AlgorithmHMACSHA256 = "HMAC-SHA256"

// KeyTypeSymmetric represents a symmetric key
const KeyTypeSymmetric = "symmetric"

// AESKeySize128 is the 128-bit AES key size in bytes
const AESKeySize128 = 16

// AESKeySize192 is the 192-bit AES key size in bytes
const AESKeySize192 = 24

// AESKeySize256 is the 256-bit AES key size in bytes
const AESKeySize256 = 32

// HMACKeySize is the recommended HMAC-SHA256 key size in bytes (one digest length)
const HMACKeySize = 32

// NonceSize is the size of the random GCM nonce prepended to every envelope
const NonceSize = 12

// TagSize is the size of the GCM authentication tag appended to every envelope
const TagSize = 16

// MinEnvelopeSize is the size of an envelope carrying an empty plaintext
const MinEnvelopeSize = NonceSize + TagSize
