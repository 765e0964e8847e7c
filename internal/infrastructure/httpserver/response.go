package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/psychosledge/squickr-life/internal/application/appcore"
	"github.com/psychosledge/squickr-life/internal/domain/errs"
)

// ErrorResponse is the JSON body every failed request carries.
type ErrorResponse struct {
	Error    string `json:"error"`
	Children int    `json:"children,omitempty"`
}

// WriteError maps a domain error onto an HTTP response.
func WriteError(c echo.Context, err error) error {
	if nc, ok := appcore.AsNeedsConfirmation(err); ok {
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error:    nc.Error(),
			Children: nc.Children,
		})
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, appcore.ErrValidationFailed), errors.Is(err, errs.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, appcore.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrAlreadyMigrated),
		errors.Is(err, errs.ErrDepthExceeded),
		errors.Is(err, errs.ErrCollectionDeleted):
		status = http.StatusConflict
	}
	return c.JSON(status, ErrorResponse{Error: err.Error()})
}
