// Package domain defines the classical cipher domain: cipher kinds, validated keys,
// results and the errors the engine reports.
package domain

const (
	// AlphabetSize is the number of letters every alphabet-based cipher works over.
	AlphabetSize = 26

	// DefaultMonoalphabeticKey is the permutation used when a monoalphabetic key is left empty.
	DefaultMonoalphabeticKey = "QWERTYUIOPLKJHGFDSAZXCVBNM"

	// MaxCaesarShift bounds a Caesar shift to [-MaxCaesarShift, MaxCaesarShift].
	MaxCaesarShift = 25

	// MinRails is the smallest rail count accepted for the rail fence cipher.
	MinRails = 2

	// MinColumns is the smallest column count accepted for columnar transposition.
	MinColumns = 2

	// MaxTextSize is the largest text (in bytes) accepted by the use case layer.
	MaxTextSize = 65536 // 64 KB
)

// ValidAffineMultipliers lists the values of a that are coprime with 26.
var ValidAffineMultipliers = []int{1, 3, 5, 7, 9, 11, 15, 17, 19, 21, 23, 25}

// IsValidAffineMultiplier reports whether a is one of ValidAffineMultipliers.
func IsValidAffineMultiplier(a int) bool {
	for _, m := range ValidAffineMultipliers {
		if m == a {
			return true
		}
	}
	return false
}
