package service

import (
	"fmt"

	"github.com/allisson/ciphers/internal/cipher/domain"
)

type affineCipher struct {
	kind    domain.Kind
	a       int
	b       int
	inverse int
}

// NewAffineCipher creates the affine cipher E(x) = (a*x + b) mod 26.
// Returns ErrInvalidKeyConstraint when a is not coprime with 26. Any b is accepted and
// reduced modulo 26.
func NewAffineCipher(a, b int) (Cipher, error) {
	return newAffineCipher(domain.Affine, a, b)
}

// NewCaesarCipher creates a Caesar cipher, the affine cipher with a = 1.
func NewCaesarCipher(shift int) Cipher {
	// a = 1 is always invertible.
	c, _ := newAffineCipher(domain.Caesar, 1, shift)
	return c
}

func newAffineCipher(kind domain.Kind, a, b int) (*affineCipher, error) {
	if GCD(a, domain.AlphabetSize) != 1 {
		return nil, fmt.Errorf(
			"%w: a=%d must be coprime with %d",
			domain.ErrInvalidKeyConstraint,
			a,
			domain.AlphabetSize,
		)
	}

	inverse, err := ModInverse(a, domain.AlphabetSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKeyConstraint, err)
	}

	return &affineCipher{
		kind:    kind,
		a:       a,
		b:       mod(b, domain.AlphabetSize),
		inverse: inverse,
	}, nil
}

func (c *affineCipher) Kind() domain.Kind {
	return c.kind
}

// Encrypt maps each letter offset x to (a*x + b) mod 26.
func (c *affineCipher) Encrypt(text string) (string, error) {
	return mapLetters(text, func(x, _ int) int {
		return c.a*x + c.b
	}), nil
}

// Decrypt maps each letter offset y to a⁻¹*(y - b) mod 26.
func (c *affineCipher) Decrypt(text string) (string, error) {
	return mapLetters(text, func(y, _ int) int {
		return c.inverse * (y - c.b)
	}), nil
}
