package local

import (
	"context"
	"log/slog"

	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/repository"
	"authhub/internal/domain/service"
	"authhub/internal/errors"
	"authhub/internal/util"

	"github.com/google/uuid"
)

// Login checks an email/password credential and opens a session, or starts
// an MFA challenge when the user has a second factor.
func (p *Provider) Login(ctx context.Context, credentials entity.LoginCredentials) (*service.ProviderSession, error) {
	email := normalizeEmail(credentials.Email)
	limitKey := rateLimitKey("login", email)
	if err := p.limiter.Allow(limitKey); err != nil {
		return nil, errors.WithStack(err)
	}

	auth, err := p.auths.FindAuthentication(ctx, entity.ProviderEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	if !p.hasher.Check(credentials.Password, auth.PasswordHash) {
		p.log(ctx).Info("Login rejected", slog.String("reason", "password mismatch"))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	user, err := p.loadUser(ctx, p.users, auth.UserID)
	if err != nil {
		return nil, err
	}

	if p.requireEmailVerification && !user.EmailVerified {
		return nil, errors.WithStack(domainerrors.ErrEmailNotVerified)
	}

	session, err := p.startSession(ctx, user)
	if err != nil {
		return nil, err
	}
	p.limiter.Reset(limitKey)

	return session, nil
}

// Register creates a user with an email/password credential.
func (p *Provider) Register(ctx context.Context, payload entity.RegisterPayload) (*service.RegistrationResult, error) {
	if err := p.validator.ValidatePasswordStrength(payload.Password); err != nil {
		return nil, err
	}

	hash, err := p.hasher.Hash(payload.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	email := normalizeEmail(payload.Email)
	user := &entity.User{
		ID:       uuid.New(),
		Email:    email,
		Name:     payload.Name,
		Roles:    entity.Roles{entity.RoleUser},
		Metadata: payload.Metadata,
	}

	var session *service.ProviderSession
	err = p.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		auths := factory.NewAuthRepository()

		_, err := auths.FindAuthentication(ctx, entity.ProviderEmail, email)
		if err == nil {
			return errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to check existing credential")
		}

		if err := factory.NewUserRepository().Create(ctx, user); err != nil {
			return err
		}

		err = auths.CreateAuthentication(ctx, &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderEmail,
			ProviderUserID: email,
			PasswordHash:   hash,
		})
		if err != nil {
			return err
		}

		if p.requireEmailVerification {
			return nil
		}

		session, err = p.issueSession(ctx, factory.NewRefreshTokenRepository(), user)

		return err
	})
	if err != nil {
		return nil, err
	}

	p.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))

	if p.requireEmailVerification {
		if err := p.sendLink(ctx, user, entity.PurposeEmailVerification, emailVerifyPath); err != nil {
			// The account exists; the user can ask for another link.
			p.log(ctx).Error("Failed to send verification email", slog.Any("error", err))
		}

		return &service.RegistrationResult{User: user, RequiresEmailVerification: true}, nil
	}

	return &service.RegistrationResult{User: user, Session: session}, nil
}

// Logout ends the session of accessToken. Tokens that no longer validate are
// treated as already logged out.
func (p *Provider) Logout(ctx context.Context, accessToken string) error {
	return p.endSession(ctx, accessToken, "logout")
}

// HandleSessionTimeout ends the server-side session after client inactivity.
func (p *Provider) HandleSessionTimeout(ctx context.Context, accessToken string) error {
	return p.endSession(ctx, accessToken, "timeout")
}

func (p *Provider) endSession(ctx context.Context, accessToken, reason string) error {
	claims, err := p.tokens.ValidateToken(accessToken, service.TokenTypeAccess)
	if err != nil {
		p.log(ctx).Debug("Ending session with unusable access token", slog.String("reason", reason), slog.Any("error", err))

		return nil
	}

	if err := p.refreshTokens.DeleteRefreshToken(ctx, claims.SessionID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

// GetCurrentUser returns the user behind a live access token.
func (p *Provider) GetCurrentUser(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := p.authenticate(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	return p.loadUser(ctx, p.users, claims.UserID)
}

// RefreshToken rotates the refresh token of a session and mints a new access
// token for it. A refresh token can be used only once.
func (p *Provider) RefreshToken(ctx context.Context, refreshToken string) (*service.ProviderSession, error) {
	claims, err := p.tokens.ValidateToken(refreshToken, service.TokenTypeRefresh)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid.WithDetails(err.Error()))
	}

	var session *service.ProviderSession
	err = p.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		refreshTokens := factory.NewRefreshTokenRepository()

		stored, err := refreshTokens.FindRefreshTokenByHash(ctx, util.HashToken(refreshToken))
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
				return errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
			}

			return errors.Wrap(err, "failed to find refresh token")
		}
		if stored.ID != claims.SessionID || stored.UserID != claims.UserID {
			return errors.WithStack(domainerrors.ErrRefreshTokenInvalid.WithDetails("session mismatch"))
		}

		user, err := p.loadUser(ctx, factory.NewUserRepository(), stored.UserID)
		if err != nil {
			return err
		}

		issued, err := p.tokens.IssueTokens(user.ID, stored.ID, user.Roles.ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to issue tokens")
		}

		if err := refreshTokens.RotateRefreshToken(ctx, stored.ID, util.HashToken(issued.RefreshToken), issued.RefreshExpiresAt); err != nil {
			return errors.Wrap(err, "failed to rotate refresh token")
		}

		session = &service.ProviderSession{
			User:         user,
			AccessToken:  issued.AccessToken,
			RefreshToken: issued.RefreshToken,
			ExpiresAt:    issued.AccessExpiresAt,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}
