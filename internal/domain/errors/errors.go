package errors

import (
	"fmt"
	"net/http"
	"time"

	"authhub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// Is matches any BaseError carrying the same code, so copies made by
// WithDetails or WithMessage still match the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WithDetails returns a copy with detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy with a different display message
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Stable error codes.
const (
	CodeValidationFailed    = "VALIDATION_FAILED"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeEmailNotVerified    = "EMAIL_NOT_VERIFIED"
	CodeUserAlreadyExists   = "USER_ALREADY_EXISTS"
	CodeRateLimitExceeded   = "RATE_LIMIT_EXCEEDED"
	CodeRefreshTokenInvalid = "REFRESH_TOKEN_INVALID"
	CodeSessionExpired      = "SESSION_EXPIRED"
	CodeNotAuthenticated    = "NOT_AUTHENTICATED"
	CodeMFAInvalidCode      = "MFA_INVALID_CODE"
	CodeMFANotEnabled       = "MFA_NOT_ENABLED"
	CodeMFAAlreadyEnabled   = "MFA_ALREADY_ENABLED"
	CodeTokenInvalid        = "TOKEN_INVALID"
	CodeOAuthFailed         = "OAUTH_FAILED"
	CodeOAuthNotSupported   = "OAUTH_NOT_SUPPORTED"
	CodeNetworkError        = "NETWORK_ERROR"
	CodeProviderError       = "PROVIDER_ERROR"
	CodeInternalError       = "INTERNAL_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodePasswordStrength    = "PASSWORD_STRENGTH"
)

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		CodeValidationFailed,
		"Please check the submitted information and try again.",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		CodeInvalidCredentials,
		"Invalid email or password.",
		"",
	)

	ErrEmailNotVerified = NewBaseError(
		http.StatusForbidden,
		CodeEmailNotVerified,
		"Please verify your email address before signing in.",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		CodeUserAlreadyExists,
		"An account with this email already exists.",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		CodeUserNotFound,
		"User not found.",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		CodePasswordStrength,
		"Password does not meet the strength requirements.",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		CodeRefreshTokenInvalid,
		"Your session could not be renewed. Please sign in again.",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		CodeSessionExpired,
		"Your session has expired. Please sign in again.",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		CodeNotAuthenticated,
		"You need to sign in to continue.",
		"",
	)

	ErrMFAInvalidCode = NewBaseError(
		http.StatusUnauthorized,
		CodeMFAInvalidCode,
		"The verification code is invalid or has expired.",
		"",
	)

	ErrMFANotEnabled = NewBaseError(
		http.StatusBadRequest,
		CodeMFANotEnabled,
		"Two-factor authentication is not enabled.",
		"",
	)

	ErrMFAAlreadyEnabled = NewBaseError(
		http.StatusConflict,
		CodeMFAAlreadyEnabled,
		"Two-factor authentication is already enabled.",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		CodeTokenInvalid,
		"This link is invalid or has expired.",
		"",
	)

	ErrOAuthFailed = NewBaseError(
		http.StatusUnauthorized,
		CodeOAuthFailed,
		"Sign in with the external provider failed. Please try again.",
		"",
	)

	ErrOAuthNotSupported = NewBaseError(
		http.StatusNotImplemented,
		CodeOAuthNotSupported,
		"This sign-in method is not available.",
		"",
	)

	ErrProvider = NewBaseError(
		http.StatusBadGateway,
		CodeProviderError,
		"The authentication service could not complete the request.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		CodeInternalError,
		"An unexpected error occurred. Please try again.",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"The requested resource was not found.",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		CodeConflict,
		"The request conflicts with the current state.",
		"",
	)
)

// RateLimitError reports throttling by the identity backend.
type RateLimitError struct {
	RetryAfter time.Duration
	// Remaining attempts in the current window, -1 when unknown.
	Remaining int
}

// NewRateLimitError creates a rate limit error
func NewRateLimitError(retryAfter time.Duration, remaining int) *RateLimitError {
	return &RateLimitError{RetryAfter: retryAfter, Remaining: remaining}
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

func (e *RateLimitError) HTTPCode() int {
	return http.StatusTooManyRequests
}

func (e *RateLimitError) ErrorCode() string {
	return CodeRateLimitExceeded
}

func (e *RateLimitError) Message() string {
	seconds := int((e.RetryAfter + time.Second - 1) / time.Second)
	if seconds <= 0 {
		return "Too many attempts. Please try again later."
	}

	return fmt.Sprintf("Too many attempts. Please try again in %d seconds.", seconds)
}

func (e *RateLimitError) Details() string {
	return ""
}

// NetworkError marks a transient transport failure talking to the identity backend.
type NetworkError struct {
	Op  string
	Err error
}

// NewNetworkError wraps a transport failure
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return e.Op + ": network error"
	}

	return e.Op + ": " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

func (e *NetworkError) ErrorCode() string {
	return CodeNetworkError
}

func (e *NetworkError) Message() string {
	return "Unable to reach the authentication service. Please check your connection and try again."
}

func (e *NetworkError) Details() string {
	return e.Op
}

// ProviderError carries an error returned by the identity backend as-is.
type ProviderError struct {
	Status int
	Code   string
	Msg    string
}

// NewProviderError creates a provider error
func NewProviderError(status int, code, message string) *ProviderError {
	return &ProviderError{Status: status, Code: code, Msg: message}
}

func (e *ProviderError) Error() string {
	if e.Code == "" {
		return e.Msg
	}

	return e.Code + ": " + e.Msg
}

func (e *ProviderError) HTTPCode() int {
	if e.Status == 0 {
		return http.StatusBadGateway
	}

	return e.Status
}

func (e *ProviderError) ErrorCode() string {
	if e.Code == "" {
		return CodeProviderError
	}

	return e.Code
}

func (e *ProviderError) Message() string {
	return e.Msg
}

func (e *ProviderError) Details() string {
	return ""
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "An unexpected error occurred. Please try again."
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
