// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/ciphers/internal/cipher/domain"
	customValidation "github.com/allisson/ciphers/internal/validation"
)

// maxKeyLength bounds raw keys accepted over HTTP.
const maxKeyLength = 1024

// TransformRequest contains the parameters for encrypting or decrypting text.
type TransformRequest struct {
	Key  string `json:"key"` // Optional for ciphers with a default key
	Text string `json:"text"`
}

// Validate checks if the transform request is valid.
func (r *TransformRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Key,
			validation.Length(0, maxKeyLength),
		),
		validation.Field(&r.Text,
			validation.Required,
		),
	)
}

// ValidateKeyRequest contains the key to validate.
type ValidateKeyRequest struct {
	Key string `json:"key"`
}

// Validate checks if the validate key request is valid.
func (r *ValidateKeyRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Key,
			validation.Length(0, maxKeyLength),
		),
	)
}

// BatchItemRequest is one transform inside a batch request.
type BatchItemRequest struct {
	Kind      string `json:"kind"`
	Operation string `json:"operation"` // "encrypt" or "decrypt"
	Key       string `json:"key"`
	Text      string `json:"text"`
}

// Validate checks the shape of a batch item. Cipher, key and text errors are reported per
// item in the response instead.
func (r BatchItemRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Kind,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Operation,
			validation.Required,
			validation.In(string(domain.OperationEncrypt), string(domain.OperationDecrypt)),
		),
		validation.Field(&r.Key,
			validation.Length(0, maxKeyLength),
		),
	)
}

// ToDomain converts the item into a domain batch item. Unknown kind names are passed
// through so the use case reports them on the item.
func (r BatchItemRequest) ToDomain() domain.BatchItem {
	kind, err := domain.ParseKind(r.Kind)
	if err != nil {
		kind = domain.Kind(r.Kind)
	}
	return domain.BatchItem{
		Kind:      kind,
		Operation: domain.Operation(r.Operation),
		RawKey:    r.Key,
		Text:      r.Text,
	}
}

// BatchRequest contains a list of independent transforms.
type BatchRequest struct {
	Items []BatchItemRequest `json:"items"`
}

// Validate checks if the batch request is valid.
func (r *BatchRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Items,
			validation.Required,
		),
	)
}

// ToDomain converts the request items into domain batch items.
func (r *BatchRequest) ToDomain() []domain.BatchItem {
	items := make([]domain.BatchItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, item.ToDomain())
	}
	return items
}
