package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics records cipher operation outcomes.
type BusinessMetrics interface {
	// RecordOperation counts an operation. Domain is "cipher"; operations are
	// "cipher_encrypt", "cipher_decrypt", "cipher_validate_key" and "cipher_batch";
	// status is "success" or "error".
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records the operation duration in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordTextSize records the size in bytes of the text an operation received.
	RecordTextSize(ctx context.Context, domain, operation string, size int)
}

type businessMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
	textSizeHisto    metric.Int64Histogram
}

// NewBusinessMetrics creates the business instruments on a meter named after namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of cipher operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of cipher operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	textSizeHisto, err := meter.Int64Histogram(
		fmt.Sprintf("%s_text_size_bytes", namespace),
		metric.WithDescription("Size of the text received by cipher operations"),
		metric.WithUnit("By"),
		metric.WithExplicitBucketBoundaries(16, 64, 256, 1024, 4096, 16384, 65536),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create text size histogram: %w", err)
	}

	return &businessMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
		textSizeHisto:    textSizeHisto,
	}, nil
}

func operationAttributes(domain, operation string, extra ...attribute.KeyValue) metric.MeasurementOption {
	attrs := append([]attribute.KeyValue{
		attribute.String("domain", domain),
		attribute.String("operation", operation),
	}, extra...)
	return metric.WithAttributes(attrs...)
}

// RecordOperation increments the operation counter.
func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1, operationAttributes(domain, operation, attribute.String("status", status)))
}

// RecordDuration records the duration in seconds.
func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(
		ctx,
		duration.Seconds(),
		operationAttributes(domain, operation, attribute.String("status", status)),
	)
}

// RecordTextSize records the text size in bytes.
func (b *businessMetrics) RecordTextSize(ctx context.Context, domain, operation string, size int) {
	b.textSizeHisto.Record(ctx, int64(size), operationAttributes(domain, operation))
}

// NoOpBusinessMetrics is used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

// RecordOperation does nothing.
func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

// RecordDuration does nothing.
func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

// RecordTextSize does nothing.
func (n *NoOpBusinessMetrics) RecordTextSize(ctx context.Context, domain, operation string, size int) {}
