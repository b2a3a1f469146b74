package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/ciphers/internal/cipher/domain"
	"github.com/allisson/ciphers/internal/cipher/http/dto"
	"github.com/allisson/ciphers/internal/cipher/service"
	"github.com/allisson/ciphers/internal/cipher/usecase"
	"github.com/allisson/ciphers/internal/cipher/usecase/mocks"
	"github.com/allisson/ciphers/internal/httputil"
)

// setupTestCipherHandler creates a test cipher handler with mocked dependencies.
func setupTestCipherHandler(t *testing.T) (*CipherHandler, *mocks.MockCipherUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := mocks.NewMockCipherUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewCipherHandler(mockUseCase, logger), mockUseCase
}

func TestCipherHandler_EncryptHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestCipherHandler(t)

		result := &domain.Result{
			Kind:      domain.Caesar,
			Operation: domain.OperationEncrypt,
			Key:       domain.Key{Kind: domain.Caesar, Raw: "3", Shift: 3},
			Text:      "Khoor",
		}
		mockUseCase.On("Encrypt", mock.Anything, domain.Caesar, "3", "Hello").Return(result, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/ciphers/caesar/encrypt", dto.TransformRequest{Key: "3", Text: "Hello"})
		c.Params = gin.Params{gin.Param{Key: "kind", Value: "Caesar"}}

		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.TransformResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Khoor", response.Text)
		assert.Equal(t, "caesar", response.Kind)
		assert.Equal(t, "3", response.Key)
		assert.Equal(t, "encrypt", response.Operation)
	})

	t.Run("Error_UnknownCipher", func(t *testing.T) {
		handler, _ := setupTestCipherHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/ciphers/enigma/encrypt", dto.TransformRequest{Text: "Hello"})
		c.Params = gin.Params{gin.Param{Key: "kind", Value: "enigma"}}

		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestCipherHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/ciphers/caesar/encrypt", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))
		c.Params = gin.Params{gin.Param{Key: "kind", Value: "caesar"}}

		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_EmptyText", func(t *testing.T) {
		handler, _ := setupTestCipherHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/ciphers/caesar/encrypt", dto.TransformRequest{Key: "3"})
		c.Params = gin.Params{gin.Param{Key: "kind", Value: "caesar"}}

		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "validation_error", response.Error)
	})

	t.Run("Error_InvalidKey", func(t *testing.T) {
		handler, mockUseCase := setupTestCipherHandler(t)

		mockUseCase.On("Encrypt", mock.Anything, domain.Affine, "13,1", "abc").
			Return(nil, domain.ErrInvalidKeyConstraint).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/ciphers/affine/encrypt", dto.TransformRequest{Key: "13,1", Text: "abc"})
		c.Params = gin.Params{gin.Param{Key: "kind", Value: "affine"}}

		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var response httputil.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "invalid_input", response.Error)
	})

	t.Run("Error_TextTooLong", func(t *testing.T) {
		handler, mockUseCase := setupTestCipherHandler(t)

		mockUseCase.On("Encrypt", mock.Anything, domain.Vigenere, "KEY", "abc").
			Return(nil, domain.ErrTextTooLong).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/ciphers/vigenere/encrypt", dto.TransformRequest{Key: "KEY", Text: "abc"})
		c.Params = gin.Params{gin.Param{Key: "kind", Value: "vigenere"}}

		handler.EncryptHandler(c)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestCipherHandler_DecryptHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestCipherHandler(t)

		result := &domain.Result{
			Kind:      domain.Vigenere,
			Operation: domain.OperationDecrypt,
			Key:       domain.Key{Kind: domain.Vigenere, Raw: "LEMON", Word: "LEMON"},
			Text:      "ATTACKATDAWN",
		}
		mockUseCase.On("Decrypt", mock.Anything, domain.Vigenere, "LEMON", "LXFOPVEFRNHR").Return(result, nil).Once()

		c, w := createTestContext(
			http.MethodPost,
			"/v1/ciphers/vigenere/decrypt",
			dto.TransformRequest{Key: "LEMON", Text: "LXFOPVEFRNHR"},
		)
		c.Params = gin.Params{gin.Param{Key: "kind", Value: "vigenère"}}

		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.TransformResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "ATTACKATDAWN", response.Text)
		assert.Equal(t, "decrypt", response.Operation)
	})

	t.Run("Error_OddCiphertext", func(t *testing.T) {
		handler, mockUseCase := setupTestCipherHandler(t)

		mockUseCase.On("Decrypt", mock.Anything, domain.Playfair, "monarchy", "abc").
			Return(nil, domain.ErrOddCiphertext).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/ciphers/playfair/decrypt", dto.TransformRequest{Key: "monarchy", Text: "abc"})
		c.Params = gin.Params{gin.Param{Key: "kind", Value: "playfair"}}

		handler.DecryptHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCipherHandler_ValidateKeyHandler(t *testing.T) {
	t.Run("Success_ValidKey", func(t *testing.T) {
		handler, mockUseCase := setupTestCipherHandler(t)

		key := &domain.Key{Kind: domain.Affine, Raw: "5,8", A: 5, B: 8}
		mockUseCase.On("ValidateKey", mock.Anything, domain.Affine, "5,8").Return(key, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/ciphers/affine/validate", dto.ValidateKeyRequest{Key: "5,8"})
		c.Params = gin.Params{gin.Param{Key: "kind", Value: "affine"}}

		handler.ValidateKeyHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ValidateKeyResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Valid)
		assert.Equal(t, "5,8", response.Key)
	})

	t.Run("Error_InvalidKey", func(t *testing.T) {
		handler, mockUseCase := setupTestCipherHandler(t)

		mockUseCase.On("ValidateKey", mock.Anything, domain.RailFence, "1").
			Return(nil, domain.ErrInvalidKeyConstraint).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/ciphers/rail-fence/validate", dto.ValidateKeyRequest{Key: "1"})
		c.Params = gin.Params{gin.Param{Key: "kind", Value: "rail-fence"}}

		handler.ValidateKeyHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestCipherHandler_ListHandler(t *testing.T) {
	handler, mockUseCase := setupTestCipherHandler(t)

	mockUseCase.On("Kinds", mock.Anything).Return([]domain.CipherInfo{
		{Kind: domain.Caesar, KeyDescription: "shift", DefaultKey: "3", HasDefaultKey: true},
	}).Once()

	c, w := createTestContext(http.MethodGet, "/v1/ciphers", nil)

	handler.ListHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ListCiphersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 1)
	assert.Equal(t, "caesar", response.Data[0].Kind)
}

func TestCipherHandler_BatchHandler(t *testing.T) {
	t.Run("Success_MixedResults", func(t *testing.T) {
		handler, mockUseCase := setupTestCipherHandler(t)

		items := []domain.BatchItem{
			{Kind: domain.Caesar, Operation: domain.OperationEncrypt, RawKey: "3", Text: "abc"},
			{Kind: domain.Kind("enigma"), Operation: domain.OperationEncrypt, RawKey: "1", Text: "abc"},
		}
		results := []domain.BatchResult{
			{Index: 0, Result: &domain.Result{Kind: domain.Caesar, Key: domain.Key{Kind: domain.Caesar, Shift: 3}, Text: "def"}},
			{Index: 1, Err: domain.ErrUnsupportedCipher},
		}
		mockUseCase.On("Batch", mock.Anything, items).Return(results, nil).Once()

		request := dto.BatchRequest{Items: []dto.BatchItemRequest{
			{Kind: "caesar", Operation: "encrypt", Key: "3", Text: "abc"},
			{Kind: "enigma", Operation: "encrypt", Key: "1", Text: "abc"},
		}}
		c, w := createTestContext(http.MethodPost, "/v1/ciphers/batch", request)

		handler.BatchHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.BatchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Results, 2)
		require.NotNil(t, response.Results[0].Text)
		assert.Equal(t, "def", *response.Results[0].Text)
		require.NotNil(t, response.Results[1].Error)
		assert.Equal(t, "invalid_input", response.Results[1].Error.Error)
	})

	t.Run("Error_EmptyItems", func(t *testing.T) {
		handler, _ := setupTestCipherHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/ciphers/batch", dto.BatchRequest{})

		handler.BatchHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_TooLarge", func(t *testing.T) {
		handler, mockUseCase := setupTestCipherHandler(t)

		mockUseCase.On("Batch", mock.Anything, mock.Anything).Return(nil, domain.ErrBatchTooLarge).Once()

		request := dto.BatchRequest{Items: []dto.BatchItemRequest{
			{Kind: "caesar", Operation: "encrypt", Text: "abc"},
		}}
		c, w := createTestContext(http.MethodPost, "/v1/ciphers/batch", request)

		handler.BatchHandler(c)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestCipherHandler_RegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uc := usecase.NewCipherUseCase(service.NewEngine(), 10, 2)
	handler := NewCipherHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	router := gin.New()
	handler.RegisterRoutes(router.Group("/v1"))

	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		expectedCode int
		expectedText string
	}{
		{
			name:         "encrypt",
			method:       http.MethodPost,
			path:         "/v1/ciphers/caesar/encrypt",
			body:         `{"key":"3","text":"Hello, World!"}`,
			expectedCode: http.StatusOK,
			expectedText: "Khoor, Zruog!",
		},
		{
			name:         "decrypt with default key",
			method:       http.MethodPost,
			path:         "/v1/ciphers/caesar/decrypt",
			body:         `{"text":"Khoor, Zruog!"}`,
			expectedCode: http.StatusOK,
			expectedText: "Hello, World!",
		},
		{
			name:         "rail fence alias",
			method:       http.MethodPost,
			path:         "/v1/ciphers/railfence/encrypt",
			body:         `{"key":"3","text":"WEAREDISCOVEREDFLEEATONCE"}`,
			expectedCode: http.StatusOK,
			expectedText: "WECRLTEERDSOEEFEAOCAIVDEN",
		},
		{
			name:         "validate",
			method:       http.MethodPost,
			path:         "/v1/ciphers/affine/validate",
			body:         `{"key":"4,1"}`,
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "list",
			method:       http.MethodGet,
			path:         "/v1/ciphers",
			expectedCode: http.StatusOK,
		},
		{
			name:         "batch",
			method:       http.MethodPost,
			path:         "/v1/ciphers/batch",
			body:         `{"items":[{"kind":"playfair","operation":"encrypt","key":"monarchy","text":"hello"}]}`,
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedText != "" {
				var response dto.TransformResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedText, response.Text)
			}
		})
	}
}
