package local

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"

	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/repository"
	"authhub/internal/domain/service"
	"authhub/internal/errors"
	"authhub/internal/util"

	"github.com/google/uuid"
)

const backupCodeBytes = 5

// SetupMFA starts TOTP enrolment. The factor stays inactive until a first
// code is verified through VerifyMFA.
func (p *Provider) SetupMFA(ctx context.Context, accessToken string) (*entity.MFASetup, error) {
	claims, err := p.authenticate(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	user, err := p.loadUser(ctx, p.users, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user.MFAEnabled {
		return nil, errors.WithStack(domainerrors.ErrMFAAlreadyEnabled)
	}

	key, err := p.totp.Generate(user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate totp secret")
	}

	codes, hashed, err := p.newBackupCodes(user.ID)
	if err != nil {
		return nil, err
	}

	secret := &entity.MFASecret{
		UserID:   user.ID,
		FactorID: uuid.New(),
		Secret:   key.Secret,
	}
	err = p.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		mfa := factory.NewMFARepository()
		if err := mfa.UpsertSecret(ctx, secret); err != nil {
			return errors.Wrap(err, "failed to store mfa secret")
		}

		return mfa.ReplaceBackupCodes(ctx, user.ID, hashed)
	})
	if err != nil {
		return nil, err
	}

	qr, err := p.qrcode.GenerateDataURL(key.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render qr code")
	}

	return &entity.MFASetup{
		FactorID:    secret.FactorID.String(),
		Secret:      key.Secret,
		OTPAuthURL:  key.URL,
		QRCode:      qr,
		BackupCodes: codes,
	}, nil
}

// VerifyMFA accepts either the pending MFA token of a login or the access
// token of a session. With an MFA token it completes the login; with an
// access token it confirms enrolment or performs a step-up check.
func (p *Provider) VerifyMFA(ctx context.Context, token, code string) (*service.MFAVerification, error) {
	claims, err := p.tokens.ValidateToken(token, service.TokenTypeMFA)
	switch {
	case err == nil:
		return p.completeMFALogin(ctx, claims.UserID, code)
	case errors.Is(err, domainerrors.ErrSessionExpired):
		return nil, err
	}

	claims, err = p.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	secret, err := p.findSecret(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	user, err := p.loadUser(ctx, p.users, claims.UserID)
	if err != nil {
		return nil, err
	}

	if !secret.Enabled {
		if !p.totp.Validate(code, secret.Secret) {
			return nil, errors.WithStack(domainerrors.ErrMFAInvalidCode)
		}
		if err := p.mfa.EnableSecret(ctx, user.ID); err != nil {
			return nil, errors.Wrap(err, "failed to enable mfa")
		}
		user.MFAEnabled = true
		p.log(ctx).Info("MFA enabled", slog.String("user_id", user.ID.String()))

		return &service.MFAVerification{User: user, Enabled: true}, nil
	}

	if err := p.checkSecondFactor(ctx, secret, code); err != nil {
		return nil, err
	}

	return &service.MFAVerification{User: user}, nil
}

func (p *Provider) completeMFALogin(ctx context.Context, userID uuid.UUID, code string) (*service.MFAVerification, error) {
	if err := p.limiter.Allow(rateLimitKey("mfa", userID.String())); err != nil {
		return nil, errors.WithStack(err)
	}

	secret, err := p.findSecret(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !secret.Enabled {
		return nil, errors.WithStack(domainerrors.ErrMFANotEnabled)
	}

	if err := p.checkSecondFactor(ctx, secret, code); err != nil {
		return nil, err
	}

	user, err := p.loadUser(ctx, p.users, userID)
	if err != nil {
		return nil, err
	}

	session, err := p.issueSession(ctx, p.refreshTokens, user)
	if err != nil {
		return nil, err
	}
	p.limiter.Reset(rateLimitKey("mfa", userID.String()))

	return &service.MFAVerification{User: user, Session: session}, nil
}

// DisableMFA removes the factor and its backup codes after checking a code.
func (p *Provider) DisableMFA(ctx context.Context, accessToken, code string) error {
	claims, err := p.authenticate(ctx, accessToken)
	if err != nil {
		return err
	}

	secret, err := p.findSecret(ctx, claims.UserID)
	if err != nil {
		return err
	}
	if !secret.Enabled {
		return errors.WithStack(domainerrors.ErrMFANotEnabled)
	}

	if err := p.checkSecondFactor(ctx, secret, code); err != nil {
		return err
	}

	if err := p.mfa.DeleteSecret(ctx, claims.UserID); err != nil {
		return errors.Wrap(err, "failed to delete mfa secret")
	}

	p.log(ctx).Info("MFA disabled", slog.String("user_id", claims.UserID.String()))

	return nil
}

func (p *Provider) findSecret(ctx context.Context, userID uuid.UUID) (*entity.MFASecret, error) {
	secret, err := p.mfa.FindSecret(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMFASecretNotFound) {
			return nil, errors.WithStack(domainerrors.ErrMFANotEnabled)
		}

		return nil, errors.Wrap(err, "failed to find mfa secret")
	}

	return secret, nil
}

// checkSecondFactor accepts a current TOTP code or an unused backup code.
func (p *Provider) checkSecondFactor(ctx context.Context, secret *entity.MFASecret, code string) error {
	if p.totp.Validate(code, secret.Secret) {
		return nil
	}

	normalized := normalizeBackupCode(code)
	if normalized == "" {
		return errors.WithStack(domainerrors.ErrMFAInvalidCode)
	}

	consumed, err := p.mfa.ConsumeBackupCode(ctx, secret.UserID, util.HashToken(normalized))
	if err != nil {
		return errors.Wrap(err, "failed to consume backup code")
	}
	if !consumed {
		return errors.WithStack(domainerrors.ErrMFAInvalidCode)
	}

	p.log(ctx).Info("Backup code used", slog.String("user_id", secret.UserID.String()))

	return nil
}

// newBackupCodes returns the codes shown to the user once and their hashed
// records.
func (p *Provider) newBackupCodes(userID uuid.UUID) ([]string, []*entity.BackupCode, error) {
	codes := make([]string, p.backupCodeCount)
	hashed := make([]*entity.BackupCode, p.backupCodeCount)

	buf := make([]byte, backupCodeBytes)
	for i := range codes {
		if _, err := rand.Read(buf); err != nil {
			return nil, nil, errors.Wrap(err, "failed to generate backup code")
		}
		raw := hex.EncodeToString(buf)

		codes[i] = raw[:5] + "-" + raw[5:]
		hashed[i] = &entity.BackupCode{UserID: userID, CodeHash: util.HashToken(raw)}
	}

	return codes, hashed, nil
}

func normalizeBackupCode(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))

	return strings.ReplaceAll(code, "-", "")
}
