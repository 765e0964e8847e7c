package middleware

import (
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
)

// CORSConfig holds configuration for the CORS middleware.
type CORSConfig struct {
	AllowOrigins []string
	AllowMethods []string
	AllowHeaders []string
}

// DefaultCORSConfig returns a CORSConfig with sensible defaults.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders: []string{"Content-Type", "Authorization", RequestIDHeader},
	}
}

// CORS returns a middleware handling cross-origin requests.
func CORS(config CORSConfig) echo.MiddlewareFunc {
	allowAll := slices.Contains(config.AllowOrigins, "*")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get("Origin")
			res := c.Response().Header()

			if origin != "" && (allowAll || slices.Contains(config.AllowOrigins, origin)) {
				if allowAll {
					res.Set("Access-Control-Allow-Origin", "*")
				} else {
					res.Set("Access-Control-Allow-Origin", origin)
					res.Add("Vary", "Origin")
				}
				res.Set("Access-Control-Allow-Methods", strings.Join(config.AllowMethods, ", "))
				res.Set("Access-Control-Allow-Headers", strings.Join(config.AllowHeaders, ", "))
			}

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}
