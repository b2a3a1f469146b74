package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/allisson/ciphers/internal/cipher/domain"
	"github.com/allisson/ciphers/internal/cipher/http/dto"
	cipherUseCase "github.com/allisson/ciphers/internal/cipher/usecase"
)

// TransformOptions holds the flags shared by the encrypt and decrypt commands.
type TransformOptions struct {
	Cipher string
	Key    string // Empty selects the cipher's default key when it has one
	Text   string
	// TextSet reports whether --text was given. Otherwise the text is read from the reader
	// minus one trailing line ending, so `app encrypt ... | app decrypt ...` round-trips.
	TextSet bool
	Format  string
}

// RunTransform encrypts or decrypts one text and writes the result.
//
// Text output writes the transformed text followed by a newline. JSON output has the same
// shape as the HTTP API response.
func RunTransform(
	ctx context.Context,
	useCase cipherUseCase.CipherUseCase,
	logger *slog.Logger,
	streams IOTuple,
	op domain.Operation,
	opts TransformOptions,
) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	kind, err := domain.ParseKind(opts.Cipher)
	if err != nil {
		return err
	}

	text := opts.Text
	if !opts.TextSet {
		input, err := io.ReadAll(streams.Reader)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		text = trimLineEnding(string(input))
	}

	logger.Debug("running cipher",
		slog.String("cipher", kind.String()),
		slog.String("operation", string(op)),
		slog.Int("text_size", len(text)),
	)

	var result *domain.Result
	switch op {
	case domain.OperationEncrypt:
		result, err = useCase.Encrypt(ctx, kind, opts.Key, text)
	case domain.OperationDecrypt:
		result, err = useCase.Decrypt(ctx, kind, opts.Key, text)
	default:
		return op.Validate()
	}
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	if opts.Format == "json" {
		return writeJSON(streams.Writer, dto.MapResultToResponse(result))
	}

	_, err = io.WriteString(streams.Writer, result.Text+"\n")
	return err
}

// trimLineEnding drops one trailing "\n" or "\r\n". Grid ciphers would otherwise treat
// the newline added by the previous command as text.
func trimLineEnding(text string) string {
	if trimmed, ok := strings.CutSuffix(text, "\n"); ok {
		return strings.TrimSuffix(trimmed, "\r")
	}
	return text
}
