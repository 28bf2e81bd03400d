// Package apperr holds the error taxonomy shared by the rebld domain packages.
//
// Domain packages declare their own sentinels wrapping one of the base errors
// below, so callers can match either the specific or the general kind with errors.Is.
package apperr

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"
)

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// Validation wraps ErrValidation with a field level message.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// RateLimitError is returned when a (user, action) pair exhausted its window.
type RateLimitError struct {
	Action     string
	Message    string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	minutes := e.MinutesRemaining()
	suffix := "s"
	if minutes == 1 {
		suffix = ""
	}
	return fmt.Sprintf("%s Try again in %d minute%s.", e.Message, minutes, suffix)
}

// MinutesRemaining is RetryAfter rounded up to whole minutes.
func (e *RateLimitError) MinutesRemaining() int {
	return int(math.Ceil(e.RetryAfter.Minutes()))
}

func IsRateLimit(err error) bool {
	var rlErr *RateLimitError
	return errors.As(err, &rlErr)
}

// HTTPStatus maps an error from the domain packages to a response status code.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case IsRateLimit(err):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
