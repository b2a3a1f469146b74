package service

import (
	"fmt"
	"strings"

	"github.com/allisson/ciphers/internal/cipher/domain"
)

type transpositionCipher struct {
	columns int
}

// NewTranspositionCipher creates a columnar transposition cipher over columns columns.
func NewTranspositionCipher(columns int) (Cipher, error) {
	if columns < 1 {
		return nil, fmt.Errorf(
			"%w: column count must be positive, got %d",
			domain.ErrInvalidKeyConstraint,
			columns,
		)
	}
	return &transpositionCipher{columns: columns}, nil
}

// ColumnHeights returns how many characters each column holds when length characters are
// laid out row by row over columns columns: the first length%columns columns get one
// more row than the rest. Columns past length would stay empty and are left out.
func ColumnHeights(length, columns int) []int {
	columns = effectiveColumns(length, columns)
	if columns == 0 {
		return []int{}
	}

	rows := length / columns
	extra := length % columns
	if extra > 0 {
		rows++
	}

	heights := make([]int, columns)
	for col := range heights {
		if extra == 0 || col < extra {
			heights[col] = rows
		} else {
			heights[col] = rows - 1
		}
	}
	return heights
}

// effectiveColumns caps columns at length. Extra columns hold nothing, so the layout of
// the non-empty ones is the same.
func effectiveColumns(length, columns int) int {
	if columns > length {
		return length
	}
	return columns
}

func (c *transpositionCipher) Kind() domain.Kind {
	return domain.Transposition
}

// Encrypt strips whitespace, writes the rest row by row and reads it column by column.
// Text with nothing left after stripping is returned unchanged.
func (c *transpositionCipher) Encrypt(text string) (string, error) {
	clean := []rune(strings.Join(strings.Fields(text), ""))
	if len(clean) == 0 {
		return text, nil
	}

	columns := effectiveColumns(len(clean), c.columns)
	out := make([]rune, 0, len(clean))
	for col := 0; col < columns; col++ {
		for i := col; i < len(clean); i += columns {
			out = append(out, clean[i])
		}
	}
	return string(out), nil
}

// Decrypt fills the grid column by column following ColumnHeights and reads it row by row.
func (c *transpositionCipher) Decrypt(text string) (string, error) {
	runes := []rune(text)
	if len(runes) == 0 {
		return text, nil
	}

	columns := effectiveColumns(len(runes), c.columns)
	out := make([]rune, len(runes))
	next := 0
	for col, height := range ColumnHeights(len(runes), columns) {
		for row := 0; row < height; row++ {
			out[row*columns+col] = runes[next]
			next++
		}
	}
	return string(out), nil
}
