// Package crypto defines the interfaces and models for symmetric cryptographic operations
// on streaming control messages: AES-GCM envelope encryption, HMAC-SHA256 message authentication
// and the key specifications both rely on.

package crypto
