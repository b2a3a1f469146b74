package service

import (
	"github.com/allisson/ciphers/internal/cipher/domain"
)

type railFenceCipher struct {
	rails int
}

// NewRailFenceCipher creates a rail fence cipher. With rails <= 1 both directions return
// the text unchanged.
func NewRailFenceCipher(rails int) Cipher {
	return &railFenceCipher{rails: rails}
}

// Zigzag returns the rail of each of length positions: starting on rail 0 moving down and
// turning around on rail 0 and rail rails-1.
func Zigzag(length, rails int) []int {
	path := make([]int, length)
	if rails <= 1 {
		return path
	}

	rail, step := 0, 1
	for i := range path {
		path[i] = rail
		if rail == 0 {
			step = 1
		} else if rail == rails-1 {
			step = -1
		}
		rail += step
	}
	return path
}

func (c *railFenceCipher) Kind() domain.Kind {
	return domain.RailFence
}

// railStarts returns, for each rail, the index in the ciphertext where that rail begins.
// Only rails the path visits are counted, so the slice never exceeds the text length.
func railStarts(path []int) []int {
	rails := 0
	for _, rail := range path {
		if rail+1 > rails {
			rails = rail + 1
		}
	}

	starts := make([]int, rails)
	for _, rail := range path {
		if rail+1 < rails {
			starts[rail+1]++
		}
	}
	for rail := 1; rail < rails; rail++ {
		starts[rail] += starts[rail-1]
	}
	return starts
}

// Encrypt writes the text along the zigzag and reads it rail by rail.
func (c *railFenceCipher) Encrypt(text string) (string, error) {
	runes := []rune(text)
	if len(runes) == 0 || c.rails <= 1 {
		return text, nil
	}

	path := Zigzag(len(runes), c.rails)
	next := railStarts(path)
	out := make([]rune, len(runes))
	for i, r := range runes {
		out[next[path[i]]] = r
		next[path[i]]++
	}
	return string(out), nil
}

// Decrypt splits the ciphertext into rails by the zigzag counts and reads them back along
// the zigzag.
func (c *railFenceCipher) Decrypt(text string) (string, error) {
	runes := []rune(text)
	if len(runes) == 0 || c.rails <= 1 {
		return text, nil
	}

	path := Zigzag(len(runes), c.rails)
	next := railStarts(path)
	out := make([]rune, len(runes))
	for i := range path {
		out[i] = runes[next[path[i]]]
		next[path[i]]++
	}
	return string(out), nil
}
