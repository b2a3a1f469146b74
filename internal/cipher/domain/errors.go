package domain

import (
	"github.com/allisson/ciphers/internal/errors"
)

// Cipher engine errors.
//
// Every engine error wraps errors.ErrInvalidInput: the failure is always caused by the
// caller's key or text and is deterministic for a given (text, key) pair.
var (
	// ErrInvalidKeyFormat indicates the key fails its cipher's shape or charset rule.
	ErrInvalidKeyFormat = errors.Wrap(errors.ErrInvalidInput, "invalid key format")

	// ErrInvalidKeyConstraint indicates a well-formed key that violates a numeric constraint,
	// such as an affine multiplier sharing a factor with 26 or fewer than two rails.
	ErrInvalidKeyConstraint = errors.Wrap(errors.ErrInvalidInput, "invalid key constraint")

	// ErrEmptyInput indicates blank text where text is required.
	ErrEmptyInput = errors.Wrap(errors.ErrInvalidInput, "empty input")

	// ErrCharacterNotInTable indicates a Playfair lookup of a character missing from the key table.
	ErrCharacterNotInTable = errors.Wrap(errors.ErrInvalidInput, "character not in key table")

	// ErrOddCiphertext indicates a Playfair ciphertext that cannot be split into digraphs.
	ErrOddCiphertext = errors.Wrap(errors.ErrInvalidInput, "ciphertext length must be even")

	// ErrUnsupportedCipher indicates an unknown cipher kind.
	ErrUnsupportedCipher = errors.Wrap(errors.ErrInvalidInput, "unsupported cipher")

	// ErrUnsupportedOperation indicates an operation other than encrypt or decrypt.
	ErrUnsupportedOperation = errors.Wrap(errors.ErrInvalidInput, "unsupported operation")

	// ErrTextTooLong indicates the text exceeds MaxTextSize.
	ErrTextTooLong = errors.Wrap(errors.ErrTooLarge, "text exceeds maximum size")

	// ErrEmptyBatch indicates a batch request without items.
	ErrEmptyBatch = errors.Wrap(errors.ErrInvalidInput, "batch must contain at least one item")

	// ErrBatchTooLarge indicates a batch with more items than the configured limit.
	ErrBatchTooLarge = errors.Wrap(errors.ErrTooLarge, "batch exceeds maximum items")
)
