package domain

import (
	"fmt"
)

// Operation is the direction of a transform.
type Operation string

const (
	OperationEncrypt Operation = "encrypt"
	OperationDecrypt Operation = "decrypt"
)

// Validate checks that the operation is encrypt or decrypt.
func (o Operation) Validate() error {
	switch o {
	case OperationEncrypt, OperationDecrypt:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOperation, string(o))
	}
}

// Result is the outcome of a single encrypt or decrypt call.
type Result struct {
	Kind      Kind
	Operation Operation
	Key       Key
	Text      string
}

// BatchItem is one transform request inside a batch.
type BatchItem struct {
	Kind      Kind
	Operation Operation
	RawKey    string
	Text      string
}

// BatchResult pairs a batch item with its outcome. Exactly one of Result and Err is set.
type BatchResult struct {
	Index  int
	Result *Result
	Err    error
}

// CipherInfo describes a supported cipher for listings.
type CipherInfo struct {
	Kind           Kind
	KeyDescription string
	DefaultKey     string
	HasDefaultKey  bool
}
