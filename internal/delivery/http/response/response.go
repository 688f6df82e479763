// Package response writes the JSON envelope shared by every endpoint.
package response

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/errors"
	"authhub/internal/util"

	"github.com/labstack/echo/v4"
)

const (
	HeaderRetryAfter         = "Retry-After"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "INVALID_CREDENTIALS"
	Details string `json:"details,omitempty"` // Detailed error description
}

// statusByCode is the HTTP status of result codes reported without an error value.
var statusByCode = map[string]int{
	domainerrors.CodeValidationFailed:    http.StatusBadRequest,
	domainerrors.CodeInvalidCredentials:  http.StatusUnauthorized,
	domainerrors.CodeEmailNotVerified:    http.StatusForbidden,
	domainerrors.CodeUserAlreadyExists:   http.StatusConflict,
	domainerrors.CodeUserNotFound:        http.StatusNotFound,
	domainerrors.CodePasswordStrength:    http.StatusBadRequest,
	domainerrors.CodeRateLimitExceeded:   http.StatusTooManyRequests,
	domainerrors.CodeRefreshTokenInvalid: http.StatusUnauthorized,
	domainerrors.CodeSessionExpired:      http.StatusUnauthorized,
	domainerrors.CodeNotAuthenticated:    http.StatusUnauthorized,
	domainerrors.CodeMFAInvalidCode:      http.StatusUnauthorized,
	domainerrors.CodeMFANotEnabled:       http.StatusBadRequest,
	domainerrors.CodeMFAAlreadyEnabled:   http.StatusConflict,
	domainerrors.CodeTokenInvalid:        http.StatusBadRequest,
	domainerrors.CodeOAuthFailed:         http.StatusUnauthorized,
	domainerrors.CodeOAuthNotSupported:   http.StatusNotImplemented,
	domainerrors.CodeNetworkError:        http.StatusServiceUnavailable,
	domainerrors.CodeProviderError:       http.StatusBadGateway,
	domainerrors.CodeNotFound:            http.StatusNotFound,
	domainerrors.CodeConflict:            http.StatusConflict,
}

// StatusForCode maps a business error code onto an HTTP status.
func StatusForCode(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response. Details are dropped for server errors.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if statusCode >= http.StatusInternalServerError {
		details = ""
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// Failure writes a failed operation result carrying only a code and message.
func Failure(c echo.Context, errorCode, message string) error {
	return Error(c, StatusForCode(errorCode), errorCode, message, "")
}

// RateLimited writes a 429 with the retry hints. remaining is omitted when unknown.
func RateLimited(c echo.Context, message string, retryAfter time.Duration, remaining *int) error {
	SetRateLimitHeaders(c, retryAfter, remaining)

	return Error(c, http.StatusTooManyRequests, domainerrors.CodeRateLimitExceeded, message, "")
}

// SetRateLimitHeaders sets Retry-After in whole seconds and X-RateLimit-Remaining.
func SetRateLimitHeaders(c echo.Context, retryAfter time.Duration, remaining *int) {
	header := c.Response().Header()
	header.Set(HeaderRetryAfter, strconv.Itoa(util.CeilSeconds(retryAfter)))
	if remaining != nil && *remaining >= 0 {
		header.Set(HeaderRateLimitRemaining, strconv.Itoa(*remaining))
	}
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// ValidationError reports a request body that failed validation.
func ValidationError(c echo.Context, details string) error {
	return Error(c, http.StatusBadRequest, domainerrors.CodeValidationFailed, domainerrors.ErrValidationFailed.Message(), details)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// HandleAppError writes err when it is an AppError and returns any other
// error for the central error handler.
func HandleAppError(c echo.Context, err error) error {
	if rl, ok := errors.AsType[*domainerrors.RateLimitError](err); ok {
		return RateLimited(c, rl.Message(), rl.RetryAfter, &rl.Remaining)
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
