// Package http provides HTTP handlers for classical cipher operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/ciphers/internal/cipher/domain"
	"github.com/allisson/ciphers/internal/cipher/http/dto"
	cipherUseCase "github.com/allisson/ciphers/internal/cipher/usecase"
	"github.com/allisson/ciphers/internal/httputil"
	customValidation "github.com/allisson/ciphers/internal/validation"
)

// CipherHandler handles HTTP requests for encrypting, decrypting and validating keys.
type CipherHandler struct {
	cipherUseCase cipherUseCase.CipherUseCase // Business logic for cipher operations
	logger        *slog.Logger                // Structured logger for request handling and error reporting
}

// NewCipherHandler creates a new cipher handler with required dependencies.
func NewCipherHandler(cipherUseCase cipherUseCase.CipherUseCase, logger *slog.Logger) *CipherHandler {
	return &CipherHandler{
		cipherUseCase: cipherUseCase,
		logger:        logger,
	}
}

// RegisterRoutes mounts the cipher endpoints on the given router group.
func (h *CipherHandler) RegisterRoutes(group *gin.RouterGroup) {
	ciphers := group.Group("/ciphers")
	{
		ciphers.GET("", h.ListHandler)
		ciphers.POST("/batch", h.BatchHandler)
		ciphers.POST("/:kind/encrypt", h.EncryptHandler)
		ciphers.POST("/:kind/decrypt", h.DecryptHandler)
		ciphers.POST("/:kind/validate", h.ValidateKeyHandler)
	}
}

// ListHandler lists the supported ciphers.
// GET /v1/ciphers - Returns 200 OK with each cipher's key description and default key.
func (h *CipherHandler) ListHandler(c *gin.Context) {
	infos := h.cipherUseCase.Kinds(c.Request.Context())
	c.JSON(http.StatusOK, dto.MapCipherInfosToListResponse(infos))
}

// EncryptHandler encrypts text with the cipher named in the path.
// POST /v1/ciphers/:kind/encrypt - Returns 200 OK with the ciphertext and canonical key.
func (h *CipherHandler) EncryptHandler(c *gin.Context) {
	h.transform(c, domain.OperationEncrypt)
}

// DecryptHandler decrypts text with the cipher named in the path.
// POST /v1/ciphers/:kind/decrypt - Returns 200 OK with the plaintext and canonical key.
func (h *CipherHandler) DecryptHandler(c *gin.Context) {
	h.transform(c, domain.OperationDecrypt)
}

func (h *CipherHandler) transform(c *gin.Context, op domain.Operation) {
	kind, err := domain.ParseKind(c.Param("kind"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.TransformRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	var result *domain.Result
	if op == domain.OperationEncrypt {
		result, err = h.cipherUseCase.Encrypt(c.Request.Context(), kind, req.Key, req.Text)
	} else {
		result, err = h.cipherUseCase.Decrypt(c.Request.Context(), kind, req.Key, req.Text)
	}
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapResultToResponse(result))
}

// ValidateKeyHandler checks a key against the cipher named in the path.
// POST /v1/ciphers/:kind/validate - Returns 200 OK with the canonical key, or 422 when the
// key is invalid.
func (h *CipherHandler) ValidateKeyHandler(c *gin.Context) {
	kind, err := domain.ParseKind(c.Param("kind"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	var req dto.ValidateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	key, err := h.cipherUseCase.ValidateKey(c.Request.Context(), kind, req.Key)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapKeyToResponse(key))
}

// BatchHandler runs several independent transforms.
// POST /v1/ciphers/batch - Returns 200 OK with one result per item in request order.
// Item failures are reported inside the item; the request fails only when the batch itself
// is malformed or too large.
func (h *CipherHandler) BatchHandler(c *gin.Context) {
	var req dto.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	items := req.ToDomain()
	results, err := h.cipherUseCase.Batch(c.Request.Context(), items)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapBatchResultsToResponse(items, results))
}
