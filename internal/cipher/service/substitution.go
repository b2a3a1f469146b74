package service

import (
	"github.com/allisson/ciphers/internal/cipher/domain"
)

type substitutionCipher struct {
	kind    domain.Kind
	table   SubstitutionTable
	inverse SubstitutionTable
}

// NewMonoalphabeticCipher creates a monoalphabetic cipher whose table is derived from key
// by BuildSubstitutionTable. An empty key selects domain.DefaultMonoalphabeticKey.
func NewMonoalphabeticCipher(key string) Cipher {
	if key == "" {
		key = domain.DefaultMonoalphabeticKey
	}
	table := BuildSubstitutionTable(key)
	return &substitutionCipher{
		kind:    domain.Monoalphabetic,
		table:   table,
		inverse: table.Inverse(),
	}
}

// NewSubstitutionCipher creates a keyed substitution cipher from a full 26-letter
// permutation, mapped positionally with no padding.
func NewSubstitutionCipher(alphabet string) (Cipher, error) {
	table, err := DirectSubstitutionTable(alphabet)
	if err != nil {
		return nil, err
	}
	return &substitutionCipher{
		kind:    domain.Substitution,
		table:   table,
		inverse: table.Inverse(),
	}, nil
}

func (c *substitutionCipher) Kind() domain.Kind {
	return c.kind
}

func (c *substitutionCipher) Encrypt(text string) (string, error) {
	return c.table.Apply(text), nil
}

func (c *substitutionCipher) Decrypt(text string) (string, error) {
	return c.inverse.Apply(text), nil
}
