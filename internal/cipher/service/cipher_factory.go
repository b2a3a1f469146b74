package service

import (
	"github.com/allisson/ciphers/internal/cipher/domain"
)

// NewCipher creates the cipher selected by key.Kind from a validated key.
func NewCipher(key domain.Key) (Cipher, error) {
	switch key.Kind {
	case domain.Caesar:
		return NewCaesarCipher(key.Shift), nil
	case domain.Affine:
		return NewAffineCipher(key.A, key.B)
	case domain.Monoalphabetic:
		return NewMonoalphabeticCipher(key.Alphabet), nil
	case domain.Substitution:
		return NewSubstitutionCipher(key.Alphabet)
	case domain.Vigenere:
		return NewVigenereCipher(key.Word)
	case domain.Playfair:
		return NewPlayfairCipher(key.Word), nil
	case domain.RailFence:
		return NewRailFenceCipher(key.Count), nil
	case domain.Transposition:
		return NewTranspositionCipher(key.Count)
	default:
		return nil, key.Kind.Validate()
	}
}

// Encrypt validates rawKey for kind and encrypts text with it.
func Encrypt(kind domain.Kind, rawKey, text string) (string, error) {
	c, err := newCipherFromRaw(kind, rawKey)
	if err != nil {
		return "", err
	}
	return c.Encrypt(text)
}

// Decrypt validates rawKey for kind and decrypts text with it.
func Decrypt(kind domain.Kind, rawKey, text string) (string, error) {
	c, err := newCipherFromRaw(kind, rawKey)
	if err != nil {
		return "", err
	}
	return c.Decrypt(text)
}

func newCipherFromRaw(kind domain.Kind, rawKey string) (Cipher, error) {
	key, err := ValidateKey(kind, rawKey)
	if err != nil {
		return nil, err
	}
	return NewCipher(key)
}
