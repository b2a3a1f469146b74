package service

import (
	"strings"

	"github.com/allisson/ciphers/internal/cipher/domain"
)

// letterOffset maps A-Z and a-z to 0..25 and reports the case base of r.
// Any other rune, including non-ASCII letters, is not a letter for the engine.
func letterOffset(r rune) (offset int, base rune, ok bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), 'A', true
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), 'a', true
	default:
		return 0, 0, false
	}
}

// mod returns n modulo m in [0, m).
func mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

// mapLetters rewrites each letter of text through fn, keeping the letter's case.
// fn receives the letter offset and the character position in text (counted in runes,
// letters and non-letters alike). Non-letters are copied verbatim.
func mapLetters(text string, fn func(offset, position int) int) string {
	var b strings.Builder
	b.Grow(len(text))

	position := 0
	for _, r := range text {
		if offset, base, ok := letterOffset(r); ok {
			b.WriteRune(base + rune(mod(fn(offset, position), domain.AlphabetSize)))
		} else {
			b.WriteRune(r)
		}
		position++
	}

	return b.String()
}
