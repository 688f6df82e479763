package local

import (
	"context"
	"log/slog"
	"maps"

	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/repository"
	"authhub/internal/domain/service"
	"authhub/internal/errors"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

func (p *Provider) oauthService(provider string) (service.OAuthCodeService, error) {
	svc, ok := p.oauth[provider]
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrOAuthNotSupported.WithDetails(provider))
	}

	return svc, nil
}

// AuthorizationURL builds the consent URL of provider with a fresh PKCE verifier.
func (p *Provider) AuthorizationURL(_ context.Context, provider, state string) (*service.OAuthAuthorization, error) {
	svc, err := p.oauthService(provider)
	if err != nil {
		return nil, err
	}

	verifier := oauth2.GenerateVerifier()

	return &service.OAuthAuthorization{
		URL:          svc.AuthCodeURL(state, verifier),
		CodeVerifier: verifier,
	}, nil
}

// ExchangeCode completes the authorization code flow. The external identity
// is matched by subject first, then linked to an account with the same
// verified email, and otherwise a new account is created.
func (p *Provider) ExchangeCode(ctx context.Context, provider, code, codeVerifier string) (*service.ProviderSession, error) {
	svc, err := p.oauthService(provider)
	if err != nil {
		return nil, err
	}

	profile, err := svc.Exchange(ctx, code, codeVerifier)
	if err != nil {
		p.log(ctx).Warn("OAuth code exchange failed", slog.String("provider", provider), slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrOAuthFailed.WithDetails(err.Error()))
	}

	var user *entity.User
	err = p.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		resolved, err := p.resolveOAuthUser(ctx, factory, provider, profile)
		user = resolved

		return err
	})
	if err != nil {
		return nil, err
	}

	return p.startSession(ctx, user)
}

func (p *Provider) resolveOAuthUser(ctx context.Context, factory repository.RepositoryFactory, provider string, profile *service.OAuthUser) (*entity.User, error) {
	auths := factory.NewAuthRepository()
	users := factory.NewUserRepository()

	auth, err := auths.FindAuthentication(ctx, provider, profile.ID)
	if err == nil {
		return p.loadUser(ctx, users, auth.UserID)
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find credential")
	}

	email := normalizeEmail(profile.Email)
	user, err := users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if !profile.EmailVerified {
			return nil, errors.WithStack(domainerrors.ErrOAuthFailed.WithDetails("email not verified by provider"))
		}
		p.log(ctx).Info("Linking OAuth identity to existing account",
			slog.String("provider", provider), slog.String("user_id", user.ID.String()))
	case errors.Is(err, repository.ErrUserNotFound):
		user = &entity.User{
			ID:            uuid.New(),
			Email:         email,
			Name:          profile.Name,
			EmailVerified: profile.EmailVerified,
			Roles:         entity.Roles{entity.RoleUser},
			AvatarURL:     profile.AvatarURL,
			Metadata:      oauthMetadata(profile),
		}
		if err := users.Create(ctx, user); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Wrap(err, "failed to find user")
	}

	err = auths.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         user.ID,
		Provider:       provider,
		ProviderUserID: profile.ID,
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

func oauthMetadata(profile *service.OAuthUser) map[string]any {
	metadata := make(map[string]any, len(profile.ExtraData)+1)
	maps.Copy(metadata, profile.ExtraData)
	if profile.Locale != "" {
		metadata["locale"] = profile.Locale
	}

	return metadata
}

// FetchUserProfile returns the linked provider identity of the signed-in user.
func (p *Provider) FetchUserProfile(ctx context.Context, provider, accessToken string) (*service.OAuthUser, error) {
	claims, err := p.authenticate(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	auth, err := p.auths.FindAuthenticationByUser(ctx, claims.UserID, provider)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNotFound.WithDetails("no " + provider + " identity linked"))
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}

	user, err := p.loadUser(ctx, p.users, claims.UserID)
	if err != nil {
		return nil, err
	}

	profile := &service.OAuthUser{
		ID:            auth.ProviderUserID,
		Email:         user.Email,
		Name:          user.Name,
		Provider:      provider,
		AvatarURL:     user.AvatarURL,
		EmailVerified: user.EmailVerified,
		ExtraData:     maps.Clone(user.Metadata),
	}
	if locale, ok := user.Metadata["locale"].(string); ok {
		profile.Locale = locale
	}

	return profile, nil
}

// SetProviderMetadata merges metadata into the profile of the signed-in user.
func (p *Provider) SetProviderMetadata(ctx context.Context, accessToken, provider string, metadata map[string]any) error {
	claims, err := p.authenticate(ctx, accessToken)
	if err != nil {
		return err
	}

	user, err := p.loadUser(ctx, p.users, claims.UserID)
	if err != nil {
		return err
	}

	if user.Metadata == nil {
		user.Metadata = make(map[string]any, len(metadata))
	}
	maps.Copy(user.Metadata, metadata)

	if err := p.users.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update user metadata")
	}

	p.log(ctx).Debug("Provider metadata stored", slog.String("provider", provider))

	return nil
}
