package service

import (
	"fmt"
	"strconv"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/ciphers/internal/cipher/domain"
	customValidation "github.com/allisson/ciphers/internal/validation"
)

// ValidateKey checks raw against the key rules of kind and returns the canonical key.
//
// Shape and charset failures return ErrInvalidKeyFormat; well-formed keys that break a
// numeric rule return ErrInvalidKeyConstraint. Validation never touches any text.
func ValidateKey(kind domain.Kind, raw string) (domain.Key, error) {
	if err := kind.Validate(); err != nil {
		return domain.Key{}, err
	}

	key := domain.Key{Kind: kind, Raw: raw}

	switch kind {
	case domain.Caesar:
		shift, err := parseIntegerKey(raw)
		if err != nil {
			return domain.Key{}, err
		}
		if shift < -domain.MaxCaesarShift || shift > domain.MaxCaesarShift {
			return domain.Key{}, fmt.Errorf(
				"%w: shift %d must be within [%d, %d]",
				domain.ErrInvalidKeyConstraint,
				shift,
				-domain.MaxCaesarShift,
				domain.MaxCaesarShift,
			)
		}
		key.Shift = shift

	case domain.Affine:
		a, b, err := parseAffineKey(raw)
		if err != nil {
			return domain.Key{}, err
		}
		if !domain.IsValidAffineMultiplier(a) {
			return domain.Key{}, fmt.Errorf(
				"%w: a=%d must be one of %v",
				domain.ErrInvalidKeyConstraint,
				a,
				domain.ValidAffineMultipliers,
			)
		}
		key.A, key.B = a, b

	case domain.Monoalphabetic:
		if raw == "" {
			key.Alphabet = domain.DefaultMonoalphabeticKey
			break
		}
		alphabet, err := parseAlphabetKey(raw)
		if err != nil {
			return domain.Key{}, err
		}
		key.Alphabet = alphabet

	case domain.Substitution:
		alphabet, err := parseAlphabetKey(raw)
		if err != nil {
			return domain.Key{}, err
		}
		key.Alphabet = alphabet

	case domain.Vigenere, domain.Playfair:
		if err := validation.Validate(
			raw,
			validation.Required,
			customValidation.LettersOnly,
		); err != nil {
			return domain.Key{}, formatError(err)
		}
		key.Word = raw

	case domain.RailFence, domain.Transposition:
		count, err := parseIntegerKey(raw)
		if err != nil {
			return domain.Key{}, err
		}
		minimum := domain.MinRails
		if kind == domain.Transposition {
			minimum = domain.MinColumns
		}
		if count < minimum {
			return domain.Key{}, fmt.Errorf(
				"%w: %s needs at least %d, got %d",
				domain.ErrInvalidKeyConstraint,
				kind,
				minimum,
				count,
			)
		}
		key.Count = count
	}

	return key, nil
}

func parseIntegerKey(raw string) (int, error) {
	if err := validation.Validate(
		raw,
		validation.Required,
		customValidation.IntegerString,
	); err != nil {
		return 0, formatError(err)
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, formatError(err)
	}
	return n, nil
}

func parseAffineKey(raw string) (int, int, error) {
	if err := validation.Validate(
		raw,
		validation.Required,
		customValidation.UnsignedPair,
	); err != nil {
		return 0, 0, formatError(err)
	}

	parts := strings.Split(raw, ",")
	a, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, formatError(err)
	}
	b, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, formatError(err)
	}
	return a, b, nil
}

func parseAlphabetKey(raw string) (string, error) {
	if err := validation.Validate(
		raw,
		validation.Required,
		customValidation.LettersOnly,
		validation.Length(domain.AlphabetSize, domain.AlphabetSize),
		customValidation.UniqueLetters,
	); err != nil {
		return "", formatError(err)
	}
	return strings.ToUpper(raw), nil
}

func formatError(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrInvalidKeyFormat, err)
}
