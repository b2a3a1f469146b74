package service

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/allisson/ciphers/internal/cipher/domain"
)

// SubstitutionTable is a permutation of A-Z: letter i of the plain alphabet maps to
// forward[i]. Tables are values and are never mutated after construction.
type SubstitutionTable struct {
	forward [domain.AlphabetSize]byte
}

// BuildSubstitutionTable derives a table from an arbitrary key: the key's letters,
// upper-cased and deduplicated in first-occurrence order, followed by the rest of the
// alphabet in A-Z order. Characters of key outside A-Z/a-z are ignored.
func BuildSubstitutionTable(key string) SubstitutionTable {
	var (
		table SubstitutionTable
		used  [domain.AlphabetSize]bool
	)

	n := 0
	for _, r := range key {
		offset, _, ok := letterOffset(r)
		if !ok || used[offset] {
			continue
		}
		used[offset] = true
		table.forward[n] = byte('A' + offset)
		n++
	}

	for offset := 0; offset < domain.AlphabetSize; offset++ {
		if used[offset] {
			continue
		}
		table.forward[n] = byte('A' + offset)
		n++
	}

	return table
}

// DirectSubstitutionTable maps position i of A-Z to position i of alphabet.
// alphabet must hold 26 distinct letters (case-insensitive).
func DirectSubstitutionTable(alphabet string) (SubstitutionTable, error) {
	var (
		table SubstitutionTable
		used  [domain.AlphabetSize]bool
	)

	letters := []rune(alphabet)
	if len(letters) != domain.AlphabetSize {
		return SubstitutionTable{}, fmt.Errorf(
			"%w: substitution alphabet must have %d letters, got %d",
			domain.ErrInvalidKeyFormat,
			domain.AlphabetSize,
			len(letters),
		)
	}

	for i, r := range letters {
		offset, _, ok := letterOffset(r)
		if !ok {
			return SubstitutionTable{}, fmt.Errorf(
				"%w: %q is not a letter",
				domain.ErrInvalidKeyFormat,
				r,
			)
		}
		if used[offset] {
			return SubstitutionTable{}, fmt.Errorf(
				"%w: letter %q repeats",
				domain.ErrInvalidKeyFormat,
				unicode.ToUpper(r),
			)
		}
		used[offset] = true
		table.forward[i] = byte('A' + offset)
	}

	return table, nil
}

// Inverse returns the table that undoes t.
func (t SubstitutionTable) Inverse() SubstitutionTable {
	var inverse SubstitutionTable
	for i, image := range t.forward {
		inverse.forward[image-'A'] = byte('A' + i)
	}
	return inverse
}

// String returns the 26 images of A-Z.
func (t SubstitutionTable) String() string {
	return string(t.forward[:])
}

// Apply substitutes every letter of text, keeping the case of the source letter.
func (t SubstitutionTable) Apply(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		offset, base, ok := letterOffset(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		image := rune(t.forward[offset])
		if base == 'a' {
			image = unicode.ToLower(image)
		}
		b.WriteRune(image)
	}

	return b.String()
}
