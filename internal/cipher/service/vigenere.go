package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/allisson/ciphers/internal/cipher/domain"
)

type vigenereCipher struct {
	key string
}

// NewVigenereCipher creates a Vigenère cipher. key must be a non-empty word of A-Z/a-z.
func NewVigenereCipher(key string) (Cipher, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: vigenere key must not be empty", domain.ErrInvalidKeyFormat)
	}
	for _, r := range key {
		if _, _, ok := letterOffset(r); !ok {
			return nil, fmt.Errorf("%w: %q is not a letter", domain.ErrInvalidKeyFormat, r)
		}
	}
	return &vigenereCipher{key: strings.ToUpper(key)}, nil
}

// KeyStream repeats the upper-cased key until it is exactly as long as text, counted in
// characters. The stream advances on every character of text, including non-letters.
func KeyStream(text, key string) string {
	key = strings.ToUpper(key)
	size := utf8.RuneCountInString(text)
	if key == "" || size == 0 {
		return ""
	}

	keyRunes := []rune(key)
	stream := make([]rune, size)
	for i := range stream {
		stream[i] = keyRunes[i%len(keyRunes)]
	}
	return string(stream)
}

func (c *vigenereCipher) Kind() domain.Kind {
	return domain.Vigenere
}

// Encrypt shifts each letter by its key stream letter: (x + k) mod 26.
func (c *vigenereCipher) Encrypt(text string) (string, error) {
	stream := []rune(KeyStream(text, c.key))
	return mapLetters(text, func(x, position int) int {
		return x + int(stream[position]-'A')
	}), nil
}

// Decrypt undoes Encrypt: (x - k + 26) mod 26.
func (c *vigenereCipher) Decrypt(text string) (string, error) {
	stream := []rune(KeyStream(text, c.key))
	return mapLetters(text, func(x, position int) int {
		return x - int(stream[position]-'A') + domain.AlphabetSize
	}), nil
}
