// Package usecase implements the business logic orchestration for classical cipher operations.
//
// The use case layer sits between the HTTP handlers or CLI commands and the cipher engine.
// It resolves keys, enforces text limits and fans batches out over a bounded worker group.
//
// # Key Components
//
// CipherUseCase: Encrypts and decrypts text, validates keys, lists supported ciphers and
// processes batches of independent transforms.
//
// CipherEngine: Validates raw keys and builds ciphers. The default implementation is
// service.Engine.
//
// # Request Flow
//
//  1. Check the cipher kind
//  2. Validate and parse the raw key (an empty key falls back to the cipher's default when
//     one exists)
//  3. Reject empty text and text larger than domain.MaxTextSize
//  4. Build the cipher and apply the transform
//
// # Batches
//
// Batch items run concurrently with at most the configured number of workers. Results keep
// input order and a failing item never stops the others. Cancelling the context aborts
// items that have not started yet and makes Batch return the context error.
package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/allisson/ciphers/internal/cipher/domain"
	"github.com/allisson/ciphers/internal/errors"
)

const (
	// DefaultBatchMaxItems is used when a non-positive batch limit is configured.
	DefaultBatchMaxItems = 100

	// DefaultBatchConcurrency is used when a non-positive concurrency is configured.
	DefaultBatchConcurrency = 4
)

// cipherUseCase implements CipherUseCase.
type cipherUseCase struct {
	engine           CipherEngine
	batchMaxItems    int
	batchConcurrency int
}

// resolveKey applies the cipher's default key when rawKey is empty and validates it.
func (c *cipherUseCase) resolveKey(kind domain.Kind, rawKey string) (domain.Key, error) {
	if err := kind.Validate(); err != nil {
		return domain.Key{}, err
	}

	if rawKey == "" {
		if def, ok := domain.DefaultRawKey(kind); ok {
			rawKey = def
		}
	}

	return c.engine.ValidateKey(kind, rawKey)
}

// transform runs a single encrypt or decrypt request.
func (c *cipherUseCase) transform(
	ctx context.Context,
	op domain.Operation,
	kind domain.Kind,
	rawKey, text string,
) (*domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := op.Validate(); err != nil {
		return nil, err
	}

	key, err := c.resolveKey(kind, rawKey)
	if err != nil {
		return nil, err
	}

	if text == "" {
		return nil, domain.ErrEmptyInput
	}
	if len(text) > domain.MaxTextSize {
		return nil, domain.ErrTextTooLong
	}

	cipher, err := c.engine.NewCipher(key)
	if err != nil {
		return nil, err
	}

	var out string
	switch op {
	case domain.OperationEncrypt:
		out, err = cipher.Encrypt(text)
	default:
		out, err = cipher.Decrypt(text)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", kind, op)
	}

	return &domain.Result{
		Kind:      kind,
		Operation: op,
		Key:       key,
		Text:      out,
	}, nil
}

// Encrypt encrypts text with the cipher selected by kind.
//
// An empty rawKey selects the cipher's default key when it has one (Caesar 3, Vigenère and
// Playfair "KEY", the built-in monoalphabetic permutation).
//
// Returns domain.ErrUnsupportedCipher, domain.ErrInvalidKeyFormat,
// domain.ErrInvalidKeyConstraint, domain.ErrEmptyInput or domain.ErrTextTooLong.
func (c *cipherUseCase) Encrypt(
	ctx context.Context,
	kind domain.Kind,
	rawKey, text string,
) (*domain.Result, error) {
	return c.transform(ctx, domain.OperationEncrypt, kind, rawKey, text)
}

// Decrypt decrypts text with the cipher selected by kind.
//
// Besides the Encrypt errors, Playfair decryption may return domain.ErrOddCiphertext or
// domain.ErrCharacterNotInTable.
func (c *cipherUseCase) Decrypt(
	ctx context.Context,
	kind domain.Kind,
	rawKey, text string,
) (*domain.Result, error) {
	return c.transform(ctx, domain.OperationDecrypt, kind, rawKey, text)
}

// ValidateKey validates rawKey for kind and returns the parsed key.
func (c *cipherUseCase) ValidateKey(ctx context.Context, kind domain.Kind, rawKey string) (*domain.Key, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := c.resolveKey(kind, rawKey)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// Batch processes items concurrently and returns their results in input order.
func (c *cipherUseCase) Batch(ctx context.Context, items []domain.BatchItem) ([]domain.BatchResult, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	if len(items) > c.batchMaxItems {
		return nil, errors.Wrapf(domain.ErrBatchTooLarge, "%d items, limit %d", len(items), c.batchMaxItems)
	}

	results := make([]domain.BatchResult, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.batchConcurrency)

	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result, err := c.transform(gctx, item.Operation, item.Kind, item.RawKey, item.Text)
			results[i] = domain.BatchResult{Index: i, Result: result, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// Kinds lists every supported cipher with its key description and default key.
func (c *cipherUseCase) Kinds(_ context.Context) []domain.CipherInfo {
	kinds := domain.Kinds()
	infos := make([]domain.CipherInfo, 0, len(kinds))
	for _, kind := range kinds {
		def, ok := domain.DefaultRawKey(kind)
		infos = append(infos, domain.CipherInfo{
			Kind:           kind,
			KeyDescription: domain.KeyDescription(kind),
			DefaultKey:     def,
			HasDefaultKey:  ok,
		})
	}
	return infos
}

// NewCipherUseCase creates a new CipherUseCase.
//
// Non-positive batchMaxItems or batchConcurrency fall back to DefaultBatchMaxItems and
// DefaultBatchConcurrency.
func NewCipherUseCase(engine CipherEngine, batchMaxItems, batchConcurrency int) CipherUseCase {
	if batchMaxItems <= 0 {
		batchMaxItems = DefaultBatchMaxItems
	}
	if batchConcurrency <= 0 {
		batchConcurrency = DefaultBatchConcurrency
	}
	return &cipherUseCase{
		engine:           engine,
		batchMaxItems:    batchMaxItems,
		batchConcurrency: batchConcurrency,
	}
}
