package services

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstreamNotFound means the provider has no data for the requested year.
	ErrUpstreamNotFound = errors.New("upstream: no holiday data for year")
	// ErrUpstreamUnavailable covers network failures, timeouts and non-404 statuses.
	ErrUpstreamUnavailable = errors.New("upstream: provider unavailable")
	// ErrMalformedPayload is returned when the provider answers with something that is not a holiday list.
	ErrMalformedPayload = errors.New("upstream: malformed holiday payload")
)

// Mã lỗi validation
const (
	InvalidYear  = "InvalidYear"
	InvalidMonth = "InvalidMonth"
	InvalidDate  = "InvalidDate"
	InvalidCount = "InvalidCount"
	InvalidQuery = "InvalidQuery"
)

// ValidationError là lỗi do client gửi tham số sai, luôn trả về 400
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newValidationError(code, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// AsValidationError reports whether err carries a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
