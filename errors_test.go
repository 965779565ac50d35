package promptlab

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		statusCode int
		expected   ErrorKind
	}{
		{http.StatusUnauthorized, ErrKindAuthentication},
		{http.StatusForbidden, ErrKindAuthentication},
		{http.StatusTooManyRequests, ErrKindRateLimit},
		{http.StatusBadRequest, ErrKindInvalidRequest},
		{http.StatusNotFound, ErrKindInvalidRequest},
		{http.StatusUnprocessableEntity, ErrKindInvalidRequest},
		{http.StatusInternalServerError, ErrKindNetwork},
		{http.StatusBadGateway, ErrKindNetwork},
		{0, ErrKindNetwork},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.statusCode), func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyStatus(tt.statusCode))
		})
	}
}

func TestProviderError_Error(t *testing.T) {
	withStatus := &ProviderError{Kind: ErrKindRateLimit, StatusCode: 429, Message: "slow down"}
	assert.Equal(t, "rate_limit error (status 429): slow down", withStatus.Error())

	withoutStatus := &ProviderError{Kind: ErrKindNetwork, Message: "connection refused"}
	assert.Equal(t, "network error: connection refused", withoutStatus.Error())
}

func TestErrorKindPredicates(t *testing.T) {
	authErr := &ProviderError{Kind: ErrKindAuthentication, StatusCode: 401, Message: "bad key"}
	wrapped := fmt.Errorf("call failed: %w", authErr)

	assert.True(t, IsAuthenticationError(authErr))
	assert.True(t, IsAuthenticationError(wrapped))
	assert.False(t, IsRateLimitError(authErr))
	assert.False(t, IsInvalidRequestError(authErr))
	assert.False(t, IsNetworkError(authErr))

	assert.True(t, IsRateLimitError(&ProviderError{Kind: ErrKindRateLimit}))
	assert.True(t, IsInvalidRequestError(&ProviderError{Kind: ErrKindInvalidRequest}))
	assert.True(t, IsNetworkError(&ProviderError{Kind: ErrKindNetwork}))

	assert.False(t, IsAuthenticationError(errors.New("plain error")))
	assert.False(t, IsAuthenticationError(nil))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "temperature", Message: "out of range"}
	assert.Equal(t, "invalid temperature: out of range", err.Error())
	assert.True(t, IsValidationError(err))
	assert.True(t, IsValidationError(fmt.Errorf("build: %w", err)))
	assert.False(t, IsValidationError(errors.New("other")))
}
