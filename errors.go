package promptlab

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed provider call by the provider-reported
// category. No automatic recovery is attempted for any kind; callers
// decide whether a manual retry makes sense.
type ErrorKind string

const (
	// ErrKindAuthentication means the credential was rejected.
	ErrKindAuthentication ErrorKind = "authentication"
	// ErrKindRateLimit means the provider throttled the request.
	ErrKindRateLimit ErrorKind = "rate_limit"
	// ErrKindInvalidRequest means the provider rejected the request payload.
	ErrKindInvalidRequest ErrorKind = "invalid_request"
	// ErrKindNetwork covers transport failures and any server-side error
	// that does not fit a more specific kind.
	ErrKindNetwork ErrorKind = "network"
)

// ProviderError is the error type returned for failed completion calls.
type ProviderError struct {
	// Kind is the provider-reported error category.
	Kind ErrorKind
	// StatusCode is the HTTP status from the provider, 0 for transport
	// failures that never produced a response.
	StatusCode int
	// Message is a human-readable description suitable for display.
	Message string
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// classifyStatus maps an HTTP status code from a completion provider to
// an ErrorKind.
func classifyStatus(statusCode int) ErrorKind {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrKindAuthentication
	case http.StatusTooManyRequests:
		return ErrKindRateLimit
	case http.StatusBadRequest, http.StatusNotFound, http.StatusUnprocessableEntity:
		return ErrKindInvalidRequest
	default:
		return ErrKindNetwork
	}
}

// IsAuthenticationError reports whether err is a ProviderError with the
// authentication kind.
func IsAuthenticationError(err error) bool { return hasKind(err, ErrKindAuthentication) }

// IsRateLimitError reports whether err is a ProviderError with the rate
// limit kind.
func IsRateLimitError(err error) bool { return hasKind(err, ErrKindRateLimit) }

// IsInvalidRequestError reports whether err is a ProviderError with the
// invalid request kind.
func IsInvalidRequestError(err error) bool { return hasKind(err, ErrKindInvalidRequest) }

// IsNetworkError reports whether err is a ProviderError with the network
// kind.
func IsNetworkError(err error) bool { return hasKind(err, ErrKindNetwork) }

func hasKind(err error, kind ErrorKind) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr) && providerErr.Kind == kind
}

// ValidationError reports a request that failed local validation before
// any network call was attempted.
type ValidationError struct {
	// Field names the offending parameter or template field.
	Field string
	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
