package commands

import (
	"context"
	"fmt"

	"github.com/allisson/ciphers/internal/cipher/domain"
	"github.com/allisson/ciphers/internal/cipher/http/dto"
	cipherUseCase "github.com/allisson/ciphers/internal/cipher/usecase"
)

// RunValidateKey checks a key for a cipher and prints its canonical form.
// An invalid key is returned as an error so the process exits non-zero.
func RunValidateKey(
	ctx context.Context,
	useCase cipherUseCase.CipherUseCase,
	streams IOTuple,
	cipher, key, format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	kind, err := domain.ParseKind(cipher)
	if err != nil {
		return err
	}

	parsed, err := useCase.ValidateKey(ctx, kind, key)
	if err != nil {
		return fmt.Errorf("invalid %s key: %w", kind, err)
	}

	if format == "json" {
		return writeJSON(streams.Writer, dto.MapKeyToResponse(parsed))
	}

	_, err = fmt.Fprintf(streams.Writer, "Valid %s key: %s\n", kind, parsed.String())
	return err
}
