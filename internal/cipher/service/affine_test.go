package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/ciphers/internal/cipher/domain"
)

func TestAffineCipher_Encrypt(t *testing.T) {
	tests := []struct {
		name     string
		a, b     int
		text     string
		expected string
	}{
		{
			name:     "Success_ClassicVector",
			a:        5,
			b:        8,
			text:     "AFFINE CIPHER",
			expected: "IHHWVC SWFRCP",
		},
		{
			name:     "Success_PreservesCaseAndPunctuation",
			a:        7,
			b:        3,
			text:     "Attack at Dawn!",
			expected: "Dggdrv dg Ydbq!",
		},
		{
			name:     "Success_LargeBIsReduced",
			a:        5,
			b:        34,
			text:     "AFFINE CIPHER",
			expected: "IHHWVC SWFRCP",
		},
		{
			name:     "Success_EmptyText",
			a:        3,
			b:        1,
			text:     "",
			expected: "",
		},
		{
			name:     "Success_NonASCIIPassesThrough",
			a:        1,
			b:        1,
			text:     "café ñ",
			expected: "dbgé ñ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewAffineCipher(tt.a, tt.b)
			require.NoError(t, err)

			got, err := c.Encrypt(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)

			back, err := c.Decrypt(got)
			require.NoError(t, err)
			assert.Equal(t, tt.text, back)
		})
	}
}

func TestAffineCipher_Multipliers(t *testing.T) {
	text := "The Quick Brown Fox, 42 jumps!"

	t.Run("Success_ValidMultipliers", func(t *testing.T) {
		for _, a := range domain.ValidAffineMultipliers {
			c, err := NewAffineCipher(a, 11)
			require.NoError(t, err, "a=%d", a)
			assert.Equal(t, domain.Affine, c.Kind())

			encrypted, err := c.Encrypt(text)
			require.NoError(t, err)
			decrypted, err := c.Decrypt(encrypted)
			require.NoError(t, err)
			assert.Equal(t, text, decrypted, "a=%d", a)
		}
	})

	t.Run("Error_NotCoprime", func(t *testing.T) {
		for _, a := range []int{0, 2, 4, 6, 8, 10, 12, 13, 14, 16, 18, 20, 22, 24, 26} {
			c, err := NewAffineCipher(a, 1)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, domain.ErrInvalidKeyConstraint, "a=%d", a)
		}
	})
}

func TestCaesarCipher(t *testing.T) {
	t.Run("Success_ShiftThree", func(t *testing.T) {
		c := NewCaesarCipher(3)
		assert.Equal(t, domain.Caesar, c.Kind())

		got, err := c.Encrypt("Hello, World!")
		require.NoError(t, err)
		assert.Equal(t, "Khoor, Zruog!", got)

		back, err := c.Decrypt(got)
		require.NoError(t, err)
		assert.Equal(t, "Hello, World!", back)
	})

	t.Run("Success_WrapsAround", func(t *testing.T) {
		c := NewCaesarCipher(3)

		got, err := c.Encrypt("xyz XYZ")
		require.NoError(t, err)
		assert.Equal(t, "abc ABC", got)

		back, err := c.Decrypt("abc ABC")
		require.NoError(t, err)
		assert.Equal(t, "xyz XYZ", back)
	})

	t.Run("Success_NegativeShift", func(t *testing.T) {
		c := NewCaesarCipher(-1)

		got, err := c.Encrypt("Abc")
		require.NoError(t, err)
		assert.Equal(t, "Zab", got)
	})

	t.Run("Success_RoundTripEveryShift", func(t *testing.T) {
		text := "Pack my box with five dozen liquor jugs. 123"
		for shift := -25; shift <= 25; shift++ {
			c := NewCaesarCipher(shift)
			encrypted, err := c.Encrypt(text)
			require.NoError(t, err)
			decrypted, err := c.Decrypt(encrypted)
			require.NoError(t, err)
			assert.Equal(t, text, decrypted, "shift=%d", shift)
		}
	})
}
