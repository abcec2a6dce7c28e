package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
)

// statusFromError maps domain errors to HTTP status codes.
//
//   - missing or invalid values -> 400
//   - unknown objects -> 404
//   - role or ownership violations -> 403
//   - illegal state transitions and lost races -> 409
//   - everything else -> 500
func statusFromError(err error) int {
	var validationErrors validator.ValidationErrors

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.As(err, &validationErrors):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse writes the uniform error body for the given error.
// Internal errors are not echoed back to the client.
func errorResponse(ctx echo.Context, err error) error {
	code := statusFromError(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
