package service

import (
	"fmt"

	"github.com/allisson/ciphers/internal/errors"
)

// ErrNoInverse indicates that a has no multiplicative inverse modulo m.
var ErrNoInverse = errors.Wrap(errors.ErrInvalidInput, "no modular inverse")

// GCD returns the greatest common divisor of a and b. The result is never negative.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// ModInverse returns the x in [0, m) with (a*x) mod m == 1.
func ModInverse(a, m int) (int, error) {
	if m <= 0 {
		return 0, fmt.Errorf("%w: modulus %d must be positive", ErrNoInverse, m)
	}

	a = mod(a, m)
	g, x, _ := extendedGCD(a, m)
	if g != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNoInverse, a, m, g)
	}
	return mod(x, m), nil
}

// extendedGCD returns g = gcd(a, b) and Bézout coefficients with a*x + b*y = g.
func extendedGCD(a, b int) (g, x, y int) {
	oldR, r := a, b
	oldS, s := 1, 0
	oldT, t := 0, 1

	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}

	return oldR, oldS, oldT
}
