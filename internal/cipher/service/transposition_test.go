package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/ciphers/internal/cipher/domain"
)

func TestColumnHeights(t *testing.T) {
	t.Run("Success_EvenGrid", func(t *testing.T) {
		assert.Equal(t, []int{3, 3, 3, 3}, ColumnHeights(12, 4))
	})

	t.Run("Success_IrregularRemainder", func(t *testing.T) {
		assert.Equal(t, []int{3, 3, 2, 2, 2}, ColumnHeights(12, 5))
	})

	t.Run("Success_MoreColumnsThanText", func(t *testing.T) {
		assert.Equal(t, []int{1, 1, 1}, ColumnHeights(3, 5))
	})

	t.Run("Success_HugeColumnCount", func(t *testing.T) {
		assert.Equal(t, []int{1, 1}, ColumnHeights(2, math.MaxInt))
		assert.Empty(t, ColumnHeights(0, math.MaxInt))
	})
}

func TestTranspositionCipher(t *testing.T) {
	tests := []struct {
		name     string
		columns  int
		text     string
		expected string
	}{
		{
			name:     "Success_EvenGrid",
			columns:  4,
			text:     "ATTACKATDAWN",
			expected: "ACDTKATAWATN",
		},
		{
			name:     "Success_IrregularGrid",
			columns:  5,
			text:     "ATTACKATDAWN",
			expected: "AKWTANTTADCA",
		},
		{
			name:     "Success_SingleColumn",
			columns:  1,
			text:     "ABC",
			expected: "ABC",
		},
		{
			name:     "Success_Unicode",
			columns:  2,
			text:     "ñandú",
			expected: "ñnúad",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewTranspositionCipher(tt.columns)
			require.NoError(t, err)
			assert.Equal(t, domain.Transposition, c.Kind())

			got, err := c.Encrypt(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)

			back, err := c.Decrypt(got)
			require.NoError(t, err)
			assert.Equal(t, tt.text, back)
		})
	}
}

func TestTranspositionCipher_Whitespace(t *testing.T) {
	c, err := NewTranspositionCipher(3)
	require.NoError(t, err)

	t.Run("Success_StripsWhitespace", func(t *testing.T) {
		got, err := c.Encrypt("attack at\tdawn\n")
		require.NoError(t, err)
		assert.Equal(t, "aaaatctwtkdn", got)

		back, err := c.Decrypt(got)
		require.NoError(t, err)
		assert.Equal(t, "attackatdawn", back)
	})

	t.Run("Success_BlankTextUnchanged", func(t *testing.T) {
		got, err := c.Encrypt("  \n ")
		require.NoError(t, err)
		assert.Equal(t, "  \n ", got)

		got, err = c.Decrypt("")
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})
}

func TestTranspositionCipher_RoundTrip(t *testing.T) {
	text := "THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG"
	for columns := 2; columns <= len(text)+2; columns++ {
		c, err := NewTranspositionCipher(columns)
		require.NoError(t, err)

		encrypted, err := c.Encrypt(text)
		require.NoError(t, err)
		decrypted, err := c.Decrypt(encrypted)
		require.NoError(t, err)
		assert.Equal(t, text, decrypted, "columns=%d", columns)
	}
}

func TestTranspositionCipher_MoreColumnsThanText(t *testing.T) {
	tests := []struct {
		name    string
		columns int
	}{
		{"Success_OneMoreThanText", 6},
		{"Success_Large", 2_000_000_000},
		{"Success_MaxInt", math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewTranspositionCipher(tt.columns)
			require.NoError(t, err)

			got, err := c.Encrypt("HEL LO")
			require.NoError(t, err)
			assert.Equal(t, "HELLO", got)

			back, err := c.Decrypt("HELLO")
			require.NoError(t, err)
			assert.Equal(t, "HELLO", back)
		})
	}
}

func TestTranspositionCipher_MaxIntKeyFromValidator(t *testing.T) {
	key, err := ValidateKey(domain.Transposition, "9223372036854775807")
	require.NoError(t, err)

	c, err := NewCipher(key)
	require.NoError(t, err)

	got, err := c.Decrypt("HELLO")
	require.NoError(t, err)
	assert.Equal(t, "HELLO", got)
}

func TestNewTranspositionCipher_Error(t *testing.T) {
	c, err := NewTranspositionCipher(0)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, domain.ErrInvalidKeyConstraint)
}
