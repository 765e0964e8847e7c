package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
)

// RecoveryConfig holds configuration for the recovery middleware.
type RecoveryConfig struct {
	Logger       *slog.Logger
	LogStack     bool
	StackSizeMax int
}

// DefaultRecoveryConfig returns a RecoveryConfig with sensible defaults.
func DefaultRecoveryConfig() RecoveryConfig {
	return RecoveryConfig{
		Logger:   slog.Default(),
		LogStack: true,
	}
}

// Recovery returns a middleware that recovers from panics and responds 500.
func Recovery(config RecoveryConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					attrs := []any{
						slog.String("panic", fmt.Sprintf("%v", r)),
						slog.String("path", c.Request().URL.Path),
					}
					if config.LogStack {
						attrs = append(attrs, slog.String("stack", string(debug.Stack())))
					}
					config.Logger.ErrorContext(c.Request().Context(), "panic recovered", attrs...)
					err = echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
				}
			}()
			return next(c)
		}
	}
}
