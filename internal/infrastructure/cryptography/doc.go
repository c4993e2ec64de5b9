// Package cryptography wires the from-scratch cipher packages (aescore, gcm, digest)
// into the processor interfaces of the crypto domain: key generation, envelope
// encryption and message authentication, with logging at the operation boundary.
package cryptography
