package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yuanzh/recruit-portal/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// RequireAPIKey validates the staff API key on admin routes. An empty
// configured key locks the admin surface entirely rather than opening it.
func RequireAPIKey(configuredKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			if configuredKey == "" ||
				subtle.ConstantTimeCompare([]byte(apiKey), []byte(configuredKey)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
