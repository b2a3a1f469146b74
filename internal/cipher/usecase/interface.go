package usecase

import (
	"context"

	"github.com/allisson/ciphers/internal/cipher/domain"
	"github.com/allisson/ciphers/internal/cipher/service"
)

// CipherEngine defines key validation and cipher construction.
type CipherEngine interface {
	ValidateKey(kind domain.Kind, raw string) (domain.Key, error)
	NewCipher(key domain.Key) (service.Cipher, error)
}

// CipherUseCase defines the interface for classical cipher operations.
type CipherUseCase interface {
	Encrypt(ctx context.Context, kind domain.Kind, rawKey, text string) (*domain.Result, error)
	Decrypt(ctx context.Context, kind domain.Kind, rawKey, text string) (*domain.Result, error)
	ValidateKey(ctx context.Context, kind domain.Kind, rawKey string) (*domain.Key, error)
	// Batch runs every item concurrently and returns one BatchResult per item in input
	// order. Per-item failures are reported in BatchResult.Err; the returned error is only
	// set when the batch itself is rejected or the context is cancelled.
	Batch(ctx context.Context, items []domain.BatchItem) ([]domain.BatchResult, error)
	Kinds(ctx context.Context) []domain.CipherInfo
}
