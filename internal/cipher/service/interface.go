// Package service implements the classical cipher engine: number theory helpers, key
// derivation, the eight transforms and the per-kind key validator.
package service

import (
	"github.com/allisson/ciphers/internal/cipher/domain"
)

// Cipher is a keyed, deterministic and invertible text transform.
//
// Implementations hold only the immutable key material built by their constructor, so a
// Cipher may be shared between goroutines.
type Cipher interface {
	Kind() domain.Kind
	Encrypt(text string) (string, error)
	Decrypt(text string) (string, error)
}
