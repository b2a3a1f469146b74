// Package validation provides the shared validation rules used by request DTOs and the
// cipher key validator.
package validation

import (
	"regexp"
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/ciphers/internal/errors"
)

var (
	lettersRegex      = regexp.MustCompile(`^[A-Za-z]+$`)
	integerRegex      = regexp.MustCompile(`^[+-]?\d+$`)
	unsignedPairRegex = regexp.MustCompile(`^\d+,\d+$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// LettersOnly validates that a string contains only the ASCII letters A-Z and a-z.
var LettersOnly = validation.NewStringRuleWithError(
	lettersRegex.MatchString,
	validation.NewError("validation_letters_only", "must contain only letters A-Z"),
)

// IntegerString validates that a string is a base 10 integer with an optional sign.
var IntegerString = validation.NewStringRuleWithError(
	func(s string) bool {
		return integerRegex.MatchString(strings.TrimSpace(s))
	},
	validation.NewError("validation_integer", "must be an integer"),
)

// UnsignedPair validates the "digits,digits" shape.
var UnsignedPair = validation.NewStringRuleWithError(
	unsignedPairRegex.MatchString,
	validation.NewError("validation_unsigned_pair", "must be two non-negative integers separated by a comma"),
)

// UniqueLetters validates that no letter repeats, ignoring case.
var UniqueLetters = validation.NewStringRuleWithError(
	func(s string) bool {
		seen := make(map[rune]bool, len(s))
		for _, r := range s {
			if !unicode.IsLetter(r) {
				continue
			}
			upper := unicode.ToUpper(r)
			if seen[upper] {
				return false
			}
			seen[upper] = true
		}
		return true
	},
	validation.NewError("validation_unique_letters", "must not repeat a letter"),
)
