package impl

import (
	"context"
	"regexp"

	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/service"
	"authhub/internal/errors"
)

// TOTP codes are 6 digits; backup codes may be longer and contain dashes.
var mfaCodePattern = regexp.MustCompile(`^[A-Za-z0-9-]{6,8}$`)

func validMFACode(code string) bool {
	return mfaCodePattern.MatchString(code)
}

// mfaHandler is a stateless pass-through to the provider's TOTP operations.
// It never retries: a replayed code would be rejected anyway.
type mfaHandler struct {
	provider service.AuthDataProvider
}

func newMFAHandler(provider service.AuthDataProvider) *mfaHandler {
	return &mfaHandler{provider: provider}
}

func (h *mfaHandler) Setup(ctx context.Context, accessToken string) (*entity.MFASetup, error) {
	setup, err := h.provider.SetupMFA(ctx, accessToken)
	if err != nil {
		return nil, errors.Wrap(err, "setup mfa")
	}

	return setup, nil
}

func (h *mfaHandler) Verify(ctx context.Context, token, code string) (*service.MFAVerification, error) {
	if !validMFACode(code) {
		return nil, errors.WithStack(domainerrors.ErrMFAInvalidCode)
	}

	verification, err := h.provider.VerifyMFA(ctx, token, code)
	if err != nil {
		return nil, errors.Wrap(err, "verify mfa")
	}

	return verification, nil
}

func (h *mfaHandler) Disable(ctx context.Context, accessToken, code string) error {
	if !validMFACode(code) {
		return errors.WithStack(domainerrors.ErrMFAInvalidCode)
	}

	return errors.Wrap(h.provider.DisableMFA(ctx, accessToken, code), "disable mfa")
}
