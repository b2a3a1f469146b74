package domain

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported classical ciphers. The set is closed: Validate
// rejects anything not declared below.
type Kind string

const (
	Caesar         Kind = "caesar"
	Affine         Kind = "affine"
	Monoalphabetic Kind = "monoalphabetic"
	Substitution   Kind = "substitution"
	Vigenere       Kind = "vigenere"
	Playfair       Kind = "playfair"
	RailFence      Kind = "rail-fence"
	Transposition  Kind = "transposition"
)

var allKinds = []Kind{
	Caesar,
	Affine,
	Monoalphabetic,
	Substitution,
	Vigenere,
	Playfair,
	RailFence,
	Transposition,
}

var kindAliases = map[string]Kind{
	"vigenère":               Vigenere,
	"railfence":              RailFence,
	"rail_fence":             RailFence,
	"columnar":               Transposition,
	"columnar-transposition": Transposition,
}

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind {
	kinds := make([]Kind, len(allKinds))
	copy(kinds, allKinds)
	return kinds
}

// Validate checks that k is a supported kind.
func (k Kind) Validate() error {
	for _, known := range allKinds {
		if k == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedCipher, string(k))
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// ParseKind converts a user supplied name into a Kind. Matching is case-insensitive and
// a few common spellings are accepted.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := kindAliases[normalized]; ok {
		return alias, nil
	}

	kind := Kind(normalized)
	if err := kind.Validate(); err != nil {
		return "", err
	}
	return kind, nil
}

// DefaultRawKey returns the raw key a caller may fall back to when none is given.
// The boolean is false for kinds that always require an explicit key.
func DefaultRawKey(kind Kind) (string, bool) {
	switch kind {
	case Caesar:
		return "3", true
	case Vigenere, Playfair:
		return "KEY", true
	case Monoalphabetic:
		return "", true
	default:
		return "", false
	}
}

// KeyDescription documents the key shape a kind expects.
func KeyDescription(kind Kind) string {
	switch kind {
	case Caesar:
		return "integer shift in [-25, 25]"
	case Affine:
		return "pair 'a,b' with a coprime to 26 (1,3,5,7,9,11,15,17,19,21,23,25)"
	case Monoalphabetic:
		return "empty for the default permutation, or 26 unique letters"
	case Substitution:
		return "26 unique letters"
	case Vigenere, Playfair:
		return "non-empty word of letters A-Z"
	case RailFence:
		return "integer rail count >= 2"
	case Transposition:
		return "integer column count >= 2"
	default:
		return ""
	}
}
