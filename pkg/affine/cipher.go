package affine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is returned when a key falls outside a ∈ [1,25] coprime
	// to 26 and b ∈ [0,25].
	ErrInvalidKey = errors.New("invalid key")

	// ErrNoInverse is returned when a has no multiplicative inverse mod 26,
	// which makes decryption undefined.
	ErrNoInverse = errors.New("a has no modular inverse modulo 26")
)

// Key is an affine cipher key. Letter index i encrypts to (A*i + B) mod 26.
type Key struct {
	A int
	B int
}

// Validate checks that the key is usable for both encryption and decryption.
func (k Key) Validate() error {
	if k.A < 1 || k.A >= Modulus {
		return fmt.Errorf("%w: a=%d must be between 1 and %d", ErrInvalidKey, k.A, Modulus-1)
	}
	if !Coprime(k.A, Modulus) {
		return fmt.Errorf("%w: gcd(%d, %d) must be 1", ErrInvalidKey, k.A, Modulus)
	}
	if k.B < 0 || k.B >= Modulus {
		return fmt.Errorf("%w: b=%d must be between 0 and %d", ErrInvalidKey, k.B, Modulus-1)
	}
	return nil
}

// String renders the key as "a=A, b=B".
func (k Key) String() string {
	return fmt.Sprintf("a=%d, b=%d", k.A, k.B)
}

// Encrypt maps every letter index i of text to (a*i + b) mod 26, keeping the
// case of each letter and copying all other characters unchanged.
//
// Encrypt never fails. A key whose a is not invertible still produces output,
// it just cannot be decrypted again.
func Encrypt(text string, k Key) string {
	return mapLetters(text, func(i int) int {
		return k.A*i + k.B
	})
}

// Decrypt inverts Encrypt: every letter index i maps to a⁻¹*(i - b) mod 26.
// It returns ErrNoInverse when a is not coprime to 26.
func Decrypt(text string, k Key) (string, error) {
	inv, ok := ModInverse(k.A, Modulus)
	if !ok {
		return "", fmt.Errorf("failed to decrypt with %s: %w", k, ErrNoInverse)
	}
	return decryptWithInverse(text, inv, k.B), nil
}

func decryptWithInverse(text string, inv, b int) string {
	return mapLetters(text, func(i int) int {
		return inv * Mod(i-b, Modulus)
	})
}

// Cipher is an affine cipher bound to a validated key.
type Cipher struct {
	key Key
	inv int
}

// NewCipher validates k and precomputes the inverse of its multiplier.
func NewCipher(k Key) (*Cipher, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	inv, _ := ModInverse(k.A, Modulus)
	return &Cipher{key: k, inv: inv}, nil
}

// Key returns the key the cipher was built with.
func (c *Cipher) Key() Key {
	return c.key
}

// Encrypt encrypts text with the cipher's key.
func (c *Cipher) Encrypt(text string) string {
	return Encrypt(text, c.key)
}

// Decrypt decrypts text with the cipher's key.
func (c *Cipher) Decrypt(text string) string {
	return decryptWithInverse(text, c.inv, c.key.B)
}
