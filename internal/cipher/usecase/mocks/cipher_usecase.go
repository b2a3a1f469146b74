// Package mocks provides mock implementations of the cipher use case for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/ciphers/internal/cipher/domain"
)

// MockCipherUseCase is a mock implementation of CipherUseCase for testing.
type MockCipherUseCase struct {
	mock.Mock
}

// NewMockCipherUseCase creates a MockCipherUseCase and asserts its expectations on cleanup.
func NewMockCipherUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCipherUseCase {
	m := &MockCipherUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Encrypt mocks the Encrypt method of CipherUseCase.
func (m *MockCipherUseCase) Encrypt(
	ctx context.Context,
	kind domain.Kind,
	rawKey, text string,
) (*domain.Result, error) {
	args := m.Called(ctx, kind, rawKey, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Result), args.Error(1)
}

// Decrypt mocks the Decrypt method of CipherUseCase.
func (m *MockCipherUseCase) Decrypt(
	ctx context.Context,
	kind domain.Kind,
	rawKey, text string,
) (*domain.Result, error) {
	args := m.Called(ctx, kind, rawKey, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Result), args.Error(1)
}

// ValidateKey mocks the ValidateKey method of CipherUseCase.
func (m *MockCipherUseCase) ValidateKey(ctx context.Context, kind domain.Kind, rawKey string) (*domain.Key, error) {
	args := m.Called(ctx, kind, rawKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Key), args.Error(1)
}

// Batch mocks the Batch method of CipherUseCase.
func (m *MockCipherUseCase) Batch(ctx context.Context, items []domain.BatchItem) ([]domain.BatchResult, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BatchResult), args.Error(1)
}

// Kinds mocks the Kinds method of CipherUseCase.
func (m *MockCipherUseCase) Kinds(ctx context.Context) []domain.CipherInfo {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.CipherInfo)
}
