package seatsaero

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured = errors.New("api key not configured")
	ErrUnauthorized  = errors.New("invalid api key")
	ErrRateLimited   = errors.New("rate limit exceeded")
	ErrNotFound      = errors.New("not found")
)

// APIError is a failed Partner API call, carrying the operation and the
// HTTP status so callers can classify auth and rate-limit failures.
type APIError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("seatsaero: %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("seatsaero: %s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func newStatusError(op string, status int) *APIError {
	var err error
	switch status {
	case 401, 403:
		err = ErrUnauthorized
	case 404:
		err = ErrNotFound
	case 429:
		err = ErrRateLimited
	default:
		err = fmt.Errorf("unexpected response status")
	}
	return &APIError{Op: op, StatusCode: status, Err: err}
}
