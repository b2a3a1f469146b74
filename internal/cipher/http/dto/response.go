package dto

import (
	"github.com/allisson/ciphers/internal/cipher/domain"
	"github.com/allisson/ciphers/internal/httputil"
)

// TransformResponse contains the result of an encrypt or decrypt operation.
type TransformResponse struct {
	Kind      string `json:"kind"`
	Operation string `json:"operation"`
	Key       string `json:"key"` // Canonical key form
	Text      string `json:"text"`
}

// MapResultToResponse converts a domain result to an API response.
func MapResultToResponse(result *domain.Result) TransformResponse {
	return TransformResponse{
		Kind:      result.Kind.String(),
		Operation: string(result.Operation),
		Key:       result.Key.String(),
		Text:      result.Text,
	}
}

// ValidateKeyResponse reports a valid key in canonical form.
type ValidateKeyResponse struct {
	Kind  string `json:"kind"`
	Key   string `json:"key"`
	Valid bool   `json:"valid"`
}

// MapKeyToResponse converts a validated key to an API response.
func MapKeyToResponse(key *domain.Key) ValidateKeyResponse {
	return ValidateKeyResponse{
		Kind:  key.Kind.String(),
		Key:   key.String(),
		Valid: true,
	}
}

// CipherInfoResponse describes one supported cipher.
type CipherInfoResponse struct {
	Kind           string  `json:"kind"`
	KeyDescription string  `json:"key_description"`
	DefaultKey     *string `json:"default_key,omitempty"`
}

// ListCiphersResponse contains every supported cipher.
type ListCiphersResponse struct {
	Data []CipherInfoResponse `json:"data"`
}

// MapCipherInfosToListResponse converts cipher infos to an API response.
func MapCipherInfosToListResponse(infos []domain.CipherInfo) ListCiphersResponse {
	data := make([]CipherInfoResponse, 0, len(infos))
	for _, info := range infos {
		item := CipherInfoResponse{
			Kind:           info.Kind.String(),
			KeyDescription: info.KeyDescription,
		}
		if info.HasDefaultKey {
			def := info.DefaultKey
			item.DefaultKey = &def
		}
		data = append(data, item)
	}
	return ListCiphersResponse{Data: data}
}

// BatchItemResponse is the outcome of one batch item. Exactly one of Text and Error is set.
type BatchItemResponse struct {
	Index     int                     `json:"index"`
	Kind      string                  `json:"kind"`
	Operation string                  `json:"operation"`
	Key       string                  `json:"key,omitempty"`
	Text      *string                 `json:"text,omitempty"`
	Error     *httputil.ErrorResponse `json:"error,omitempty"`
}

// BatchResponse contains the batch results in request order.
type BatchResponse struct {
	Results []BatchItemResponse `json:"results"`
}

// MapBatchResultsToResponse converts batch results to an API response. Item errors use the
// same codes as whole-request errors.
func MapBatchResultsToResponse(items []domain.BatchItem, results []domain.BatchResult) BatchResponse {
	out := make([]BatchItemResponse, 0, len(results))
	for _, r := range results {
		item := BatchItemResponse{
			Index:     r.Index,
			Kind:      items[r.Index].Kind.String(),
			Operation: string(items[r.Index].Operation),
		}
		if r.Err != nil {
			_, errResp := httputil.MapError(r.Err)
			item.Error = &errResp
		} else {
			text := r.Result.Text
			item.Key = r.Result.Key.String()
			item.Text = &text
		}
		out = append(out, item)
	}
	return BatchResponse{Results: out}
}
