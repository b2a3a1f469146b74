package usecase

import (
	"context"
	"time"

	"github.com/allisson/ciphers/internal/cipher/domain"
	"github.com/allisson/ciphers/internal/metrics"
)

// cipherUseCaseWithMetrics decorates CipherUseCase with metrics instrumentation.
type cipherUseCaseWithMetrics struct {
	next    CipherUseCase
	metrics metrics.BusinessMetrics
}

// NewCipherUseCaseWithMetrics wraps a CipherUseCase with metrics recording.
func NewCipherUseCaseWithMetrics(useCase CipherUseCase, m metrics.BusinessMetrics) CipherUseCase {
	return &cipherUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (c *cipherUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	c.metrics.RecordOperation(ctx, "cipher", operation, status)
	c.metrics.RecordDuration(ctx, "cipher", operation, time.Since(start), status)
}

// Encrypt records metrics and the input size for encrypt operations.
func (c *cipherUseCaseWithMetrics) Encrypt(
	ctx context.Context,
	kind domain.Kind,
	rawKey, text string,
) (*domain.Result, error) {
	start := time.Now()
	result, err := c.next.Encrypt(ctx, kind, rawKey, text)
	c.record(ctx, "cipher_encrypt", start, err)
	c.metrics.RecordTextSize(ctx, "cipher", "cipher_encrypt", len(text))
	return result, err
}

// Decrypt records metrics and the input size for decrypt operations.
func (c *cipherUseCaseWithMetrics) Decrypt(
	ctx context.Context,
	kind domain.Kind,
	rawKey, text string,
) (*domain.Result, error) {
	start := time.Now()
	result, err := c.next.Decrypt(ctx, kind, rawKey, text)
	c.record(ctx, "cipher_decrypt", start, err)
	c.metrics.RecordTextSize(ctx, "cipher", "cipher_decrypt", len(text))
	return result, err
}

// ValidateKey records metrics for key validation operations.
func (c *cipherUseCaseWithMetrics) ValidateKey(
	ctx context.Context,
	kind domain.Kind,
	rawKey string,
) (*domain.Key, error) {
	start := time.Now()
	key, err := c.next.ValidateKey(ctx, kind, rawKey)
	c.record(ctx, "cipher_validate_key", start, err)
	return key, err
}

// Batch records metrics for batch operations. Per-item failures do not mark the batch as
// failed.
func (c *cipherUseCaseWithMetrics) Batch(
	ctx context.Context,
	items []domain.BatchItem,
) ([]domain.BatchResult, error) {
	start := time.Now()
	results, err := c.next.Batch(ctx, items)
	c.record(ctx, "cipher_batch", start, err)
	return results, err
}

// Kinds is not instrumented.
func (c *cipherUseCaseWithMetrics) Kinds(ctx context.Context) []domain.CipherInfo {
	return c.next.Kinds(ctx)
}
