package service

import (
	"github.com/allisson/ciphers/internal/cipher/domain"
)

// Engine bundles key validation and cipher construction behind a value so callers can
// depend on an interface instead of package functions.
type Engine struct{}

// NewEngine creates an Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// ValidateKey delegates to the package-level ValidateKey.
func (e *Engine) ValidateKey(kind domain.Kind, raw string) (domain.Key, error) {
	return ValidateKey(kind, raw)
}

// NewCipher delegates to the package-level NewCipher.
func (e *Engine) NewCipher(key domain.Key) (Cipher, error) {
	return NewCipher(key)
}
