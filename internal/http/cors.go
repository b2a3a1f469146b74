package http

import (
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// The cipher API only reads (GET) and transforms (POST). Browsers may read the request id
// and the rate limiter's Retry-After hint.
var (
	corsAllowedMethods = []string{"GET", "POST", "OPTIONS"}
	corsAllowedHeaders = []string{"Content-Type", "X-Request-Id"}
	corsExposedHeaders = []string{"X-Request-Id", "Retry-After"}
)

const corsPreflightMaxAge = 12 * time.Hour

// createCORSMiddleware returns a CORS middleware for the cipher API, or nil when CORS is
// disabled or allowOriginsStr holds no usable origin.
//
// allowOriginsStr is a comma-separated list of origins such as "https://app.example.com".
// A single "*" allows every origin. Entries that are not http(s) origins are skipped with
// a warning. Requests never carry credentials, so wildcard origins are safe to serve.
func createCORSMiddleware(enabled bool, allowOriginsStr string, logger *slog.Logger) gin.HandlerFunc {
	if !enabled {
		return nil
	}

	origins, allowAll := parseOrigins(allowOriginsStr, logger)
	if !allowAll && len(origins) == 0 {
		logger.Warn("CORS enabled but no valid origins configured, skipping CORS middleware")
		return nil
	}

	config := cors.Config{
		AllowMethods:  corsAllowedMethods,
		AllowHeaders:  corsAllowedHeaders,
		ExposeHeaders: corsExposedHeaders,
		MaxAge:        corsPreflightMaxAge,
	}
	if allowAll {
		config.AllowAllOrigins = true
		logger.Info("CORS enabled for all origins")
	} else {
		config.AllowOrigins = origins
		logger.Info("CORS enabled", slog.Any("origins", origins))
	}

	return cors.New(config)
}

// parseOrigins splits the origin list, dropping blanks, duplicates and malformed
// entries. allowAll reports a "*" entry.
func parseOrigins(originsStr string, logger *slog.Logger) (origins []string, allowAll bool) {
	seen := make(map[string]bool)
	for _, part := range strings.Split(originsStr, ",") {
		origin := strings.TrimRight(strings.TrimSpace(part), "/")
		switch {
		case origin == "":
			continue
		case origin == "*":
			allowAll = true
			continue
		case !isHTTPOrigin(origin):
			logger.Warn("ignoring invalid CORS origin", slog.String("origin", origin))
			continue
		case seen[origin]:
			continue
		}
		seen[origin] = true
		origins = append(origins, origin)
	}
	return origins, allowAll
}

// isHTTPOrigin accepts scheme://host[:port] with an http or https scheme and no path.
func isHTTPOrigin(origin string) bool {
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" && u.Path == "" &&
		u.RawQuery == "" && u.Fragment == ""
}
