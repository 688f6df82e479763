package errors

import (
	"net/http"
	"testing"
	"time"

	"authhub/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	detailed := ErrInvalidCredentials.WithDetails("user 42")
	wrapped := errors.Wrap(detailed, "login failed")

	assert.True(t, errors.Is(wrapped, ErrInvalidCredentials))
	assert.False(t, errors.Is(wrapped, ErrEmailNotVerified))
	assert.Equal(t, "user 42", detailed.Details())
	assert.Empty(t, ErrInvalidCredentials.Details())
}

func TestRateLimitError(t *testing.T) {
	err := NewRateLimitError(1500*time.Millisecond, 0)

	assert.Equal(t, http.StatusTooManyRequests, err.HTTPCode())
	assert.Equal(t, CodeRateLimitExceeded, err.ErrorCode())
	assert.Equal(t, "Too many attempts. Please try again in 2 seconds.", err.Message())

	var appErr AppError = err
	assert.NotEmpty(t, appErr.Error())
	assert.Equal(t, "Too many attempts. Please try again later.", NewRateLimitError(0, -1).Message())
}

func TestNetworkError_Unwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := errors.Wrap(NewNetworkError("POST /token", cause), "login")

	netErr, ok := errors.AsType[*NetworkError](err)
	assert.True(t, ok)
	assert.Equal(t, CodeNetworkError, netErr.ErrorCode())
	assert.True(t, errors.Is(err, cause))
}

func TestProviderError_DefaultsCode(t *testing.T) {
	assert.Equal(t, CodeProviderError, NewProviderError(0, "", "boom").ErrorCode())
	assert.Equal(t, http.StatusBadGateway, NewProviderError(0, "", "boom").HTTPCode())
	assert.Equal(t, "weak_password: too short", NewProviderError(422, "weak_password", "too short").Error())
}
