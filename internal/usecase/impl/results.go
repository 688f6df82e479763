package impl

import (
	"strings"

	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/errors"
)

// messageRules map provider messages onto stable codes when the backend
// does not return a typed error.
var messageRules = []struct {
	markers []string
	err     *domainerrors.BaseError
}{
	{markers: []string{"invalid login credentials", "invalid credentials", "invalid email or password"}, err: domainerrors.ErrInvalidCredentials},
	{markers: []string{"email not confirmed", "not verified"}, err: domainerrors.ErrEmailNotVerified},
	{markers: []string{"user already registered", "already exists", "already been registered"}, err: domainerrors.ErrUserAlreadyExists},
	{markers: []string{"invalid refresh token", "refresh token not found"}, err: domainerrors.ErrRefreshTokenInvalid},
	{markers: []string{"token has expired or is invalid", "otp has expired", "invalid token"}, err: domainerrors.ErrTokenInvalid},
	{markers: []string{"invalid totp code", "invalid mfa code", "invalid verification code"}, err: domainerrors.ErrMFAInvalidCode},
	{markers: []string{"password should be", "weak password", "password is too weak"}, err: domainerrors.ErrPasswordStrength},
}

// toAppError turns any provider failure into an error with a display-safe message.
func toAppError(err error) domainerrors.AppError {
	if rl, ok := errors.AsType[*domainerrors.RateLimitError](err); ok {
		return rl
	}
	if netErr, ok := errors.AsType[*domainerrors.NetworkError](err); ok {
		return netErr
	}
	if base, ok := errors.AsType[*domainerrors.BaseError](err); ok {
		return base
	}

	msg := strings.ToLower(err.Error())
	for _, rule := range messageRules {
		for _, marker := range rule.markers {
			if strings.Contains(msg, marker) {
				return rule.err
			}
		}
	}

	if provErr, ok := errors.AsType[*domainerrors.ProviderError](err); ok && provErr.Msg != "" {
		return provErr
	}
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return appErr
	}

	return domainerrors.ErrInternalError
}

func authFailure(err error) *entity.AuthResult {
	appErr := toAppError(err)

	result := &entity.AuthResult{
		Success: false,
		Error:   appErr.Message(),
		Code:    appErr.ErrorCode(),
	}
	if rl, ok := appErr.(*domainerrors.RateLimitError); ok {
		result.RetryAfter = rl.RetryAfter
		if rl.Remaining >= 0 {
			remaining := rl.Remaining
			result.RemainingAttempts = &remaining
		}
	}

	return result
}

func validationFailure(message string) *entity.AuthResult {
	return &entity.AuthResult{
		Success: false,
		Error:   message,
		Code:    domainerrors.CodeValidationFailed,
	}
}

func operationFailure(err error) *entity.OperationResult {
	appErr := toAppError(err)

	return &entity.OperationResult{Success: false, Error: appErr.Message(), Code: appErr.ErrorCode()}
}

func operationValidationFailure(message string) *entity.OperationResult {
	return &entity.OperationResult{Success: false, Error: message, Code: domainerrors.CodeValidationFailed}
}

func operationSuccess() *entity.OperationResult {
	return &entity.OperationResult{Success: true}
}
