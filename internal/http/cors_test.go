package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCreateCORSMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		enabled bool
		origins string
		wantNil bool
	}{
		{name: "disabled", enabled: false, origins: "https://app.example.com", wantNil: true},
		{name: "enabled without origins", enabled: true, origins: "", wantNil: true},
		{name: "enabled with only separators", enabled: true, origins: " , ,", wantNil: true},
		{name: "enabled with only invalid origins", enabled: true, origins: "app.example.com,ftp://files.example.com", wantNil: true},
		{name: "enabled with origins", enabled: true, origins: "https://app.example.com,https://admin.example.com"},
		{name: "enabled with wildcard", enabled: true, origins: "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			middleware := createCORSMiddleware(tt.enabled, tt.origins, logger)
			if tt.wantNil {
				assert.Nil(t, middleware)
				return
			}
			assert.NotNil(t, middleware)
		})
	}
}

func TestParseOrigins(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name         string
		input        string
		wantOrigins  []string
		wantAllowAll bool
	}{
		{name: "Success_Empty", input: ""},
		{
			name:        "Success_TrimsAndDedupes",
			input:       " https://app.example.com , https://admin.example.com/,https://app.example.com",
			wantOrigins: []string{"https://app.example.com", "https://admin.example.com"},
		},
		{
			name:        "Success_KeepsPort",
			input:       "http://localhost:3000",
			wantOrigins: []string{"http://localhost:3000"},
		},
		{
			name:         "Success_Wildcard",
			input:        "*, https://app.example.com",
			wantOrigins:  []string{"https://app.example.com"},
			wantAllowAll: true,
		},
		{
			name:        "Success_SkipsMalformed",
			input:       "app.example.com,ftp://files.example.com,https://app.example.com/path,https://ok.example.com",
			wantOrigins: []string{"https://ok.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origins, allowAll := parseOrigins(tt.input, logger)
			assert.Equal(t, tt.wantOrigins, origins)
			assert.Equal(t, tt.wantAllowAll, allowAll)
		})
	}
}

func TestCORSIntegration(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	newRouter := func(enabled bool, origins string) *gin.Engine {
		router := gin.New()
		if middleware := createCORSMiddleware(enabled, origins, logger); middleware != nil {
			router.Use(middleware)
		}
		router.POST("/v1/ciphers/:kind/encrypt", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"text": "ok"})
		})
		return router
	}

	t.Run("Success_PreflightAllowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/v1/ciphers/caesar/encrypt", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")
		newRouter(true, "https://app.example.com").ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("Success_WildcardOrigin", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/ciphers/caesar/encrypt", nil)
		req.Header.Set("Origin", "https://anywhere.example.org")
		newRouter(true, "*").ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Retry-After")
	})

	t.Run("Error_UnlistedOriginRejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/ciphers/caesar/encrypt", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		newRouter(true, "https://app.example.com").ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Success_NoHeadersWhenDisabled", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/ciphers/caesar/encrypt", nil)
		req.Header.Set("Origin", "https://app.example.com")
		newRouter(false, "https://app.example.com").ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
