package service

import (
	"fmt"
	"strings"

	"github.com/allisson/ciphers/internal/cipher/domain"
)

const (
	keyTableSize = 5
	fillerRepeat = 'x'
	fillerOdd    = 'z'
)

// KeyTable is the 5x5 Playfair grid: 25 distinct lower-case letters a-z without j.
type KeyTable struct {
	cells [keyTableSize * keyTableSize]rune
}

// NewKeyTable builds the grid for key: the key's letters lower-cased with j merged into i,
// deduplicated in first-occurrence order, then the remaining alphabet without j.
// Characters of key outside a-z are skipped.
func NewKeyTable(key string) KeyTable {
	var (
		table KeyTable
		seen  [domain.AlphabetSize]bool
	)
	seen['j'-'a'] = true

	n := 0
	add := func(r rune) {
		if seen[r-'a'] {
			return
		}
		seen[r-'a'] = true
		table.cells[n] = r
		n++
	}

	for _, r := range strings.ToLower(key) {
		if r == 'j' {
			r = 'i'
		}
		if r < 'a' || r > 'z' {
			continue
		}
		add(r)
	}
	for r := 'a'; r <= 'z'; r++ {
		add(r)
	}

	return table
}

// At returns the letter at row, col.
func (t KeyTable) At(row, col int) rune {
	return t.cells[row*keyTableSize+col]
}

// Locate returns the row and column of r, or ErrCharacterNotInTable.
func (t KeyTable) Locate(r rune) (row, col int, err error) {
	for i, cell := range t.cells {
		if cell == r {
			return i / keyTableSize, i % keyTableSize, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %q", domain.ErrCharacterNotInTable, r)
}

// String renders the grid as five lines of five letters.
func (t KeyTable) String() string {
	var b strings.Builder
	for row := 0; row < keyTableSize; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(t.cells[row*keyTableSize : (row+1)*keyTableSize]))
	}
	return b.String()
}

type playfairCipher struct {
	table KeyTable
}

// NewPlayfairCipher creates a Playfair cipher over the key table of key.
func NewPlayfairCipher(key string) Cipher {
	return &playfairCipher{table: NewKeyTable(key)}
}

// PreparePlayfairText lower-cases text, removes spaces and merges j into i.
func PreparePlayfairText(text string) string {
	text = strings.ToLower(text)
	text = strings.ReplaceAll(text, " ", "")
	return strings.ReplaceAll(text, "j", "i")
}

// Digraphs splits prepared text into letter pairs. A pair of equal letters becomes the
// letter followed by 'x' and the second letter starts the next pair; a final single
// letter is padded with 'z'.
func Digraphs(text string) []string {
	runes := []rune(text)
	pairs := make([]string, 0, len(runes)/2+1)

	for i := 0; i < len(runes); {
		switch {
		case i+1 >= len(runes):
			pairs = append(pairs, string([]rune{runes[i], fillerOdd}))
			i++
		case runes[i] == runes[i+1]:
			pairs = append(pairs, string([]rune{runes[i], fillerRepeat}))
			i++
		default:
			pairs = append(pairs, string(runes[i:i+2]))
			i += 2
		}
	}

	return pairs
}

func (c *playfairCipher) Kind() domain.Kind {
	return domain.Playfair
}

// Encrypt prepares text, splits it into digraphs and substitutes each pair.
func (c *playfairCipher) Encrypt(text string) (string, error) {
	pairs := Digraphs(PreparePlayfairText(text))

	var b strings.Builder
	b.Grow(len(pairs) * 2)
	for _, pair := range pairs {
		p := []rune(pair)
		out, err := c.substitute(p[0], p[1], 1)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

// Decrypt substitutes each ciphertext pair back. The text is used as is: it must be an
// even-length sequence of letters from the key table.
func (c *playfairCipher) Decrypt(text string) (string, error) {
	runes := []rune(text)
	if len(runes)%2 != 0 {
		return "", fmt.Errorf("%w: got %d characters", domain.ErrOddCiphertext, len(runes))
	}

	var b strings.Builder
	b.Grow(len(runes))
	for i := 0; i < len(runes); i += 2 {
		out, err := c.substitute(runes[i], runes[i+1], -1)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

// substitute applies the Playfair rules to one pair. step is +1 to encrypt (right/below)
// and -1 to decrypt (left/above); the rectangle rule is its own inverse.
func (c *playfairCipher) substitute(first, second rune, step int) (string, error) {
	r1, c1, err := c.table.Locate(first)
	if err != nil {
		return "", err
	}
	r2, c2, err := c.table.Locate(second)
	if err != nil {
		return "", err
	}

	switch {
	case r1 == r2:
		c1, c2 = mod(c1+step, keyTableSize), mod(c2+step, keyTableSize)
	case c1 == c2:
		r1, r2 = mod(r1+step, keyTableSize), mod(r2+step, keyTableSize)
	default:
		c1, c2 = c2, c1
	}

	return string([]rune{c.table.At(r1, c1), c.table.At(r2, c2)}), nil
}
