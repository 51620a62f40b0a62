package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ojekdriver/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"

	// ContextCaller holds the name of the service whose key matched
	ContextCaller = "caller_service"
)

// ValidateAPIKey accepts requests carrying the key of any service in keys.
// Services configured with an empty key are never accepted.
func ValidateAPIKey(keys map[string]string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			for service, key := range keys {
				if key != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
					c.Set(ContextCaller, service)
					return next(c)
				}
			}

			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
		}
	}
}
