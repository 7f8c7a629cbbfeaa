package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	// ErrNotFound marks lookups that matched nothing, such as an unknown
	// criteria code or a missing anchor form.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation marks rejected input. The wrapped message is safe to
	// show to callers.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicate marks append-only submissions that collide with an
	// existing row on their natural key.
	ErrDuplicate = errors.New("duplicate entry")

	ErrUnauthorized = errors.New("unauthorized")
)

// Validationf wraps ErrValidation with a caller-facing message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}

// NotFoundf wraps ErrNotFound with a caller-facing message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...)
}

// Duplicatef wraps ErrDuplicate with a caller-facing message.
func Duplicatef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrDuplicate}, args...)...)
}

// RespondError maps a service error to the HTTP status of its sentinel.
// Unrecognized errors become a logged 500.
func RespondError(c *gin.Context, err error) {
	status := StatusForError(err)
	if status == http.StatusInternalServerError {
		LogInternalError(c, "internal server error", err)
		return
	}
	Error(c, status, err.Error())
}

// StatusForError resolves the HTTP status of an error's sentinel.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
