package supabase

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/service"
	"authhub/internal/errors"
)

const factorFriendlyName = "authenticator"

// SetupMFA enrols a new TOTP factor. Stale unverified factors from an
// abandoned enrolment are removed first. GoTrue has no backup codes.
func (p *Provider) SetupMFA(ctx context.Context, accessToken string) (*entity.MFASetup, error) {
	u, err := p.currentUser(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	if _, ok := u.totpFactor(factorVerified); ok {
		return nil, errors.WithStack(domainerrors.ErrMFAAlreadyEnabled)
	}

	for _, f := range u.Factors {
		if f.FactorType != factorTypeTOTP || f.Status != factorUnverified {
			continue
		}
		if err := p.unenroll(ctx, accessToken, f.ID); err != nil {
			return nil, err
		}
	}

	var resp enrollResponse
	err = p.do(ctx, "enroll factor", request{
		method: http.MethodPost,
		path:   "/factors",
		bearer: accessToken,
		body:   map[string]string{"factor_type": factorTypeTOTP, "friendly_name": factorFriendlyName},
	}, &resp)
	if err != nil {
		return nil, err
	}

	setup := &entity.MFASetup{
		FactorID:   resp.ID,
		Secret:     resp.TOTP.Secret,
		OTPAuthURL: resp.TOTP.URI,
		QRCode:     resp.TOTP.QRCode,
	}

	// Render our own PNG so both backends hand out the same image format.
	if p.qrcode != nil && resp.TOTP.URI != "" {
		dataURL, err := p.qrcode.GenerateDataURL(resp.TOTP.URI)
		if err != nil {
			p.logger.WarnContext(ctx, "Failed to render TOTP QR code", slog.Any("error", err))
		} else {
			setup.QRCode = dataURL
		}
	}

	return setup, nil
}

// VerifyMFA checks code against the verified factor (login challenge or
// step-up), or the pending one (enrolment).
func (p *Provider) VerifyMFA(ctx context.Context, token, code string) (*service.MFAVerification, error) {
	u, err := p.currentUser(ctx, token)
	if err != nil {
		return nil, err
	}

	factor, enrolling := u.totpFactor(factorUnverified)
	if verified, ok := u.totpFactor(factorVerified); ok {
		factor, enrolling = verified, false
	} else if !enrolling {
		return nil, errors.WithStack(domainerrors.ErrMFANotEnabled)
	}

	resp, err := p.challengeAndVerify(ctx, token, factor.ID, code)
	if err != nil {
		return nil, err
	}

	sess := p.toSession(resp)
	if sess.User == nil {
		sess.User = toUser(u)
	}
	if enrolling {
		sess.User.MFAEnabled = true
	}

	return &service.MFAVerification{User: sess.User, Session: sess, Enabled: enrolling}, nil
}

// DisableMFA proves possession of the factor, then removes it with the
// resulting aal2 session as GoTrue requires for verified factors.
func (p *Provider) DisableMFA(ctx context.Context, accessToken, code string) error {
	u, err := p.currentUser(ctx, accessToken)
	if err != nil {
		return err
	}

	factor, ok := u.totpFactor(factorVerified)
	if !ok {
		return errors.WithStack(domainerrors.ErrMFANotEnabled)
	}

	resp, err := p.challengeAndVerify(ctx, accessToken, factor.ID, code)
	if err != nil {
		return err
	}

	return p.unenroll(ctx, resp.AccessToken, factor.ID)
}

func (p *Provider) challengeAndVerify(ctx context.Context, accessToken, factorID, code string) (*tokenResponse, error) {
	factorPath := "/factors/" + url.PathEscape(factorID)

	var challenge challengeResponse
	err := p.do(ctx, "mfa challenge", request{
		method: http.MethodPost,
		path:   factorPath + "/challenge",
		bearer: accessToken,
	}, &challenge)
	if err != nil {
		return nil, err
	}

	var resp tokenResponse
	err = p.do(ctx, "mfa verify", request{
		method: http.MethodPost,
		path:   factorPath + "/verify",
		bearer: accessToken,
		body:   map[string]string{"challenge_id": challenge.ID, "code": code},
	}, &resp)
	if err != nil {
		if provErr, ok := errors.AsType[*domainerrors.ProviderError](err); ok && provErr.Status < http.StatusInternalServerError {
			return nil, errors.WithStack(domainerrors.ErrMFAInvalidCode.WithDetails(provErr.Msg))
		}

		return nil, err
	}

	return &resp, nil
}

func (p *Provider) unenroll(ctx context.Context, accessToken, factorID string) error {
	return p.do(ctx, "unenroll factor", request{
		method: http.MethodDelete,
		path:   "/factors/" + url.PathEscape(factorID),
		bearer: accessToken,
	}, nil)
}
