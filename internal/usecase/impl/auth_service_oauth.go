package impl

import (
	"context"
	"log/slog"
	"strings"

	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/service"
	"authhub/internal/errors"
)

func (srv *authService) OAuthAuthorizationURL(ctx context.Context, provider, state string) (string, error) {
	oauth, ok := service.AsOAuthProvider(srv.provider)
	if !ok {
		return "", errors.WithStack(domainerrors.ErrOAuthNotSupported)
	}
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" || state == "" {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithMessage("OAuth provider and state are required."))
	}

	authorization, err := oauth.AuthorizationURL(ctx, provider, state)
	if err != nil {
		srv.log(ctx).Warn("Failed to build OAuth authorization URL", slog.String("provider", provider), slog.Any("error", err))

		return "", errors.WithStack(toAppError(err))
	}

	now := srv.clock.Now()

	srv.mu.Lock()
	for key, pending := range srv.oauthStates {
		if now.Sub(pending.createdAt) > oauthStateTTL {
			delete(srv.oauthStates, key)
		}
	}
	srv.oauthStates[state] = oauthPending{provider: provider, verifier: authorization.CodeVerifier, createdAt: now}
	srv.mu.Unlock()

	return authorization.URL, nil
}

func (srv *authService) CompleteOAuth(ctx context.Context, provider, code, state string) *entity.AuthResult {
	oauth, ok := service.AsOAuthProvider(srv.provider)
	if !ok {
		return authFailure(errors.WithStack(domainerrors.ErrOAuthNotSupported))
	}
	provider = strings.ToLower(strings.TrimSpace(provider))
	if code == "" || state == "" {
		return validationFailure("Authorization code and state are required.")
	}

	srv.mu.Lock()
	pending, found := srv.oauthStates[state]
	delete(srv.oauthStates, state)
	srv.mu.Unlock()

	if !found || pending.provider != provider || srv.clock.Now().Sub(pending.createdAt) > oauthStateTTL {
		srv.log(ctx).Warn("OAuth callback with unknown or expired state", slog.String("provider", provider))

		return srv.failLogin(ctx, "", errors.WithStack(domainerrors.ErrOAuthFailed.WithDetails("state mismatch")))
	}

	sess, err := oauth.ExchangeCode(ctx, provider, code, pending.verifier)
	if err == nil {
		err = checkSession(sess)
	}
	if err != nil {
		return srv.failLogin(ctx, "", errors.Wrap(err, "exchange oauth code"))
	}
	if sess.RequiresMFA {
		return srv.beginMFAChallenge(ctx, sess)
	}

	srv.syncProviderProfile(ctx, oauth, provider, sess)

	result := srv.establish(ctx, sess)
	srv.emit(entity.AuthEvent{
		Type:     entity.EventUserLoggedIn,
		UserID:   result.User.ID,
		Email:    result.User.Email,
		Provider: provider,
	})
	srv.recordAudit(ctx, auditLogin, entity.AuditSuccess, result.User, map[string]any{"method": "oauth", "provider": provider})

	return result
}

// syncProviderProfile copies the external profile onto the account. Failures
// only cost profile freshness, never the login.
func (srv *authService) syncProviderProfile(ctx context.Context, oauth service.OAuthProvider, provider string, sess *service.ProviderSession) {
	profile, err := oauth.FetchUserProfile(ctx, provider, sess.AccessToken)
	if err != nil {
		srv.log(ctx).Warn("Failed to fetch OAuth profile", slog.String("provider", provider), slog.Any("error", err))

		return
	}

	metadata := map[string]any{
		"provider":         provider,
		"provider_user_id": profile.ID,
	}
	if profile.Name != "" {
		metadata["full_name"] = profile.Name
	}
	if profile.AvatarURL != "" {
		metadata["avatar_url"] = profile.AvatarURL
	}
	if profile.Locale != "" {
		metadata["locale"] = profile.Locale
	}

	if err := oauth.SetProviderMetadata(ctx, sess.AccessToken, provider, metadata); err != nil {
		srv.log(ctx).Warn("Failed to store OAuth provider metadata", slog.String("provider", provider), slog.Any("error", err))
	}

	if sess.User.Name == "" {
		sess.User.Name = profile.Name
	}
	if sess.User.AvatarURL == "" {
		sess.User.AvatarURL = profile.AvatarURL
	}
	if profile.EmailVerified {
		sess.User.EmailVerified = true
	}
}
