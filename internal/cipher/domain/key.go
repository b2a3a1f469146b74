package domain

import (
	"fmt"
	"strconv"
)

// Key is a validated, canonical cipher key. Only the fields used by Kind are meaningful:
//
//   - Caesar: Shift
//   - Affine: A, B
//   - Monoalphabetic, Substitution: Alphabet (26 upper-case letters)
//   - Vigenere, Playfair: Word
//   - RailFence, Transposition: Count
//
// Raw always holds the key exactly as the caller supplied it.
type Key struct {
	Kind     Kind
	Raw      string
	Shift    int
	A        int
	B        int
	Alphabet string
	Word     string
	Count    int
}

// String renders the canonical form of the key.
func (k Key) String() string {
	switch k.Kind {
	case Caesar:
		return strconv.Itoa(k.Shift)
	case Affine:
		return fmt.Sprintf("%d,%d", k.A, k.B)
	case Monoalphabetic, Substitution:
		return k.Alphabet
	case Vigenere, Playfair:
		return k.Word
	case RailFence, Transposition:
		return strconv.Itoa(k.Count)
	default:
		return k.Raw
	}
}
