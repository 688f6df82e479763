package local

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/repository"
	"authhub/internal/domain/service"
	"authhub/internal/errors"
	"authhub/internal/util"

	"github.com/google/uuid"
)

const (
	passwordResetPath = "/auth/password/reset/confirm"
	emailVerifyPath   = "/auth/email/verify"
	magicLinkPath     = "/auth/magic-link/verify"

	linkTokenBytes = 32
)

// ResetPassword sends a password reset link. Unknown addresses succeed
// silently so the endpoint cannot be used to enumerate accounts.
func (p *Provider) ResetPassword(ctx context.Context, email string) error {
	return p.sendLinkByEmail(ctx, "reset", email, entity.PurposePasswordReset, passwordResetPath)
}

// SendVerificationEmail sends a fresh email confirmation link.
func (p *Provider) SendVerificationEmail(ctx context.Context, email string) error {
	return p.sendLinkByEmail(ctx, "verify", email, entity.PurposeEmailVerification, emailVerifyPath)
}

// SendMagicLink sends a passwordless login link to an existing account.
func (p *Provider) SendMagicLink(ctx context.Context, email string) error {
	return p.sendLinkByEmail(ctx, "magic", email, entity.PurposeMagicLink, magicLinkPath)
}

func (p *Provider) sendLinkByEmail(ctx context.Context, op, email string, purpose entity.VerificationPurpose, path string) error {
	email = normalizeEmail(email)
	if err := p.limiter.Allow(rateLimitKey(op, email)); err != nil {
		return errors.WithStack(err)
	}

	user, err := p.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			p.log(ctx).Info("Link requested for unknown email", slog.String("purpose", string(purpose)))

			return nil
		}

		return errors.Wrap(err, "failed to find user")
	}

	if purpose == entity.PurposeEmailVerification && user.EmailVerified {
		return nil
	}

	return p.sendLink(ctx, user, purpose, path)
}

// sendLink replaces any outstanding token of purpose and publishes the link
// for delivery.
func (p *Provider) sendLink(ctx context.Context, user *entity.User, purpose entity.VerificationPurpose, path string) error {
	raw, err := util.RandomToken(linkTokenBytes)
	if err != nil {
		return err
	}
	expiresAt := p.clock.Now().Add(p.verificationTTL)

	err = p.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		tokens := factory.NewVerificationTokenRepository()
		if err := tokens.DeleteByUserAndPurpose(ctx, user.ID, purpose); err != nil {
			return errors.Wrap(err, "failed to invalidate earlier tokens")
		}

		return tokens.CreateVerificationToken(ctx, &entity.VerificationToken{
			UserID:    user.ID,
			Purpose:   purpose,
			TokenHash: util.HashToken(raw),
			ExpiresAt: expiresAt,
		})
	})
	if err != nil {
		return err
	}

	msg := &service.OutboundMessage{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Kind:      string(purpose),
		UserID:    user.ID.String(),
		Email:     user.Email,
		Link:      p.publicURL + path + "?token=" + url.QueryEscape(raw),
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}
	if err := p.publisher.PublishOutboundMessage(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to publish outbound message")
	}

	return nil
}

// usableToken resolves a raw link token of purpose that is neither consumed
// nor expired.
func (p *Provider) usableToken(ctx context.Context, tokens repository.VerificationTokenRepository, purpose entity.VerificationPurpose, raw string) (*entity.VerificationToken, error) {
	if raw == "" {
		return nil, errors.WithStack(domainerrors.ErrTokenInvalid)
	}

	token, err := tokens.FindVerificationToken(ctx, purpose, util.HashToken(raw))
	if err != nil {
		if errors.Is(err, repository.ErrVerificationTokenNotFound) {
			return nil, errors.WithStack(domainerrors.ErrTokenInvalid)
		}

		return nil, errors.Wrap(err, "failed to find verification token")
	}

	if !token.Usable(p.clock.Now()) {
		return nil, errors.WithStack(domainerrors.ErrTokenInvalid.WithDetails("token consumed or expired"))
	}

	return token, nil
}

// VerifyPasswordResetToken checks a reset token without consuming it.
func (p *Provider) VerifyPasswordResetToken(ctx context.Context, token string) error {
	_, err := p.usableToken(ctx, p.verificationTokens, entity.PurposePasswordReset, token)

	return err
}

// UpdatePasswordWithToken completes a password reset. Every session of the
// user ends.
func (p *Provider) UpdatePasswordWithToken(ctx context.Context, token, newPassword string) error {
	if err := p.validator.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hash, err := p.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	return p.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		tokens := factory.NewVerificationTokenRepository()

		stored, err := p.usableToken(ctx, tokens, entity.PurposePasswordReset, token)
		if err != nil {
			return err
		}

		if err := p.setPassword(ctx, factory, stored.UserID, hash); err != nil {
			return err
		}

		if err := tokens.MarkConsumed(ctx, stored.ID); err != nil {
			return errors.Wrap(err, "failed to consume token")
		}

		return factory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, stored.UserID)
	})
}

// setPassword updates the email credential of userID, creating it for
// accounts that so far only signed in through OAuth or magic links.
func (p *Provider) setPassword(ctx context.Context, factory repository.RepositoryFactory, userID uuid.UUID, hash string) error {
	auths := factory.NewAuthRepository()

	auth, err := auths.FindAuthenticationByUser(ctx, userID, entity.ProviderEmail)
	if err == nil {
		return auths.UpdatePasswordHash(ctx, auth.ID, hash)
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return errors.Wrap(err, "failed to find credential")
	}

	user, err := p.loadUser(ctx, factory.NewUserRepository(), userID)
	if err != nil {
		return err
	}

	return auths.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         userID,
		Provider:       entity.ProviderEmail,
		ProviderUserID: user.Email,
		PasswordHash:   hash,
	})
}

// VerifyEmail consumes an email confirmation token.
func (p *Provider) VerifyEmail(ctx context.Context, token string) (*entity.User, error) {
	var user *entity.User
	err := p.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		tokens := factory.NewVerificationTokenRepository()

		stored, err := p.usableToken(ctx, tokens, entity.PurposeEmailVerification, token)
		if err != nil {
			return err
		}

		user, err = p.markEmailVerified(ctx, factory.NewUserRepository(), stored.UserID)
		if err != nil {
			return err
		}

		return tokens.MarkConsumed(ctx, stored.ID)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// VerifyMagicLink consumes a magic link token and logs the user in. Receiving
// the link proves ownership of the address.
func (p *Provider) VerifyMagicLink(ctx context.Context, token string) (*service.ProviderSession, error) {
	var user *entity.User
	err := p.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		tokens := factory.NewVerificationTokenRepository()

		stored, err := p.usableToken(ctx, tokens, entity.PurposeMagicLink, token)
		if err != nil {
			return err
		}
		if err := tokens.MarkConsumed(ctx, stored.ID); err != nil {
			return errors.Wrap(err, "failed to consume token")
		}

		user, err = p.markEmailVerified(ctx, factory.NewUserRepository(), stored.UserID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return p.startSession(ctx, user)
}

func (p *Provider) markEmailVerified(ctx context.Context, users repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := p.loadUser(ctx, users, userID)
	if err != nil {
		return nil, err
	}
	if user.EmailVerified {
		return user, nil
	}

	user.EmailVerified = true
	if err := users.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// UpdatePassword changes the password of a signed-in user after checking the
// current one.
func (p *Provider) UpdatePassword(ctx context.Context, accessToken, currentPassword, newPassword string) error {
	claims, err := p.authenticate(ctx, accessToken)
	if err != nil {
		return err
	}

	auth, err := p.auths.FindAuthenticationByUser(ctx, claims.UserID, entity.ProviderEmail)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return errors.WithStack(domainerrors.ErrInvalidCredentials.WithDetails("account has no password"))
		}

		return errors.Wrap(err, "failed to find credential")
	}

	if !p.hasher.Check(currentPassword, auth.PasswordHash) {
		return errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	if err := p.validator.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hash, err := p.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	return p.auths.UpdatePasswordHash(ctx, auth.ID, hash)
}

// InvalidateSessions ends every session of userID except the one behind
// currentAccessToken.
func (p *Provider) InvalidateSessions(ctx context.Context, userID uuid.UUID, currentAccessToken string) error {
	claims, err := p.authenticate(ctx, currentAccessToken)
	if err != nil {
		return err
	}
	if claims.UserID != userID {
		return errors.WithStack(domainerrors.ErrTokenInvalid.WithDetails("token belongs to another user"))
	}

	ended, err := p.refreshTokens.DeleteOtherRefreshTokens(ctx, userID, claims.SessionID)
	if err != nil {
		return errors.Wrap(err, "failed to delete sessions")
	}

	p.log(ctx).Info("Other sessions invalidated", slog.String("user_id", userID.String()), slog.Int64("count", ended))

	return nil
}

// DeleteAccount removes the user behind accessToken. Accounts with a password
// must confirm it.
func (p *Provider) DeleteAccount(ctx context.Context, accessToken, password string) error {
	claims, err := p.authenticate(ctx, accessToken)
	if err != nil {
		return err
	}

	auth, err := p.auths.FindAuthenticationByUser(ctx, claims.UserID, entity.ProviderEmail)
	switch {
	case err == nil:
		if !p.hasher.Check(password, auth.PasswordHash) {
			return errors.WithStack(domainerrors.ErrInvalidCredentials)
		}
	case !errors.Is(err, repository.ErrAuthNotFound):
		return errors.Wrap(err, "failed to find credential")
	}

	if err := p.users.Delete(ctx, claims.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return errors.Wrap(err, "failed to delete user")
	}

	p.log(ctx).Info("Account deleted", slog.String("user_id", claims.UserID.String()))

	return nil
}
