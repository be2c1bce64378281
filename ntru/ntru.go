// Package ntru implements the NTRUEncrypt public-key cryptosystem over the
// truncated polynomial ring Z[x]/(x^N - 1).
//
// A private key is a sparse trinary polynomial f together with its inverses
// f_p modulo the small modulus p and f_q modulo the large modulus q; the
// public key is h = p*f_q*g mod q for a second trinary polynomial g. A
// message is encoded as a trinary polynomial m and encrypted as
// c = r*h + m mod q with a fresh trinary blinding polynomial r. Decryption
// evaluates f_p*(f*c mod q mod p) mod p and decodes the result.
//
// The implementation is purely functional: parameters and keys are immutable
// after construction and no component holds mutable shared state, so
// independent operations can run concurrently without locking. It does not
// attempt side-channel resistance or constant-time arithmetic.
package ntru

import (
	"errors"

	"github.com/sv512/ntru/utils/sampling"
)

// ErrMessageTooLong is the error returned when a message exceeds the
// plaintext capacity of the parameter set.
var ErrMessageTooLong = errors.New("ntru: message too long for parameter set")

// ErrDecryption is the error returned when decryption does not yield a valid
// encoding. It is deliberately vague: the scheme cannot distinguish a
// corrupted or foreign ciphertext from its own inherent small-probability
// decryption failure.
var ErrDecryption = errors.New("ntru: decryption error")

// ErrKeyGenExhausted is the error returned when key generation fails to draw
// an invertible f within its retry budget. It indicates a misconfigured
// parameter set rather than bad luck.
var ErrKeyGenExhausted = errors.New("ntru: key generation retry budget exhausted")

// GenerateKeyPair generates a private and public key pair under the given
// parameters, drawing randomness from prng.
func GenerateKeyPair(params Parameters, prng sampling.PRNG) (*PrivateKey, *PublicKey, error) {
	return NewKeyGenerator(params, prng).GenKeyPair()
}

// Encrypt encodes and encrypts msg under the public key pk, drawing the
// blinding polynomial from prng.
func Encrypt(params Parameters, pk *PublicKey, msg []byte, prng sampling.PRNG) (*Ciphertext, error) {
	return NewEncryptor(params, pk, prng).Encrypt(msg)
}

// Decrypt decrypts ct under the private key sk and decodes the plaintext.
func Decrypt(params Parameters, sk *PrivateKey, ct *Ciphertext) ([]byte, error) {
	return NewDecryptor(params, sk).Decrypt(ct)
}
