package supabase

import (
	"context"
	"net/http"
	"net/url"

	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/service"
	"authhub/internal/errors"

	"golang.org/x/oauth2"
)

// AuthorizationURL starts a PKCE flow through GoTrue. GoTrue keeps its own
// OAuth state, so the caller's state rides along in the redirect URL.
func (p *Provider) AuthorizationURL(_ context.Context, provider, state string) (*service.OAuthAuthorization, error) {
	if p.redirectURL == "" {
		return nil, errors.WithStack(domainerrors.ErrOAuthNotSupported.WithDetails("auth.publicUrl is not configured"))
	}

	verifier := oauth2.GenerateVerifier()

	redirect := p.redirectURL + "/auth/oauth/" + url.PathEscape(provider) + "/callback?" +
		url.Values{"state": {state}}.Encode()

	query := url.Values{
		"provider":              {provider},
		"redirect_to":           {redirect},
		"code_challenge":        {oauth2.S256ChallengeFromVerifier(verifier)},
		"code_challenge_method": {"s256"},
	}

	return &service.OAuthAuthorization{
		URL:          p.baseURL + "/authorize?" + query.Encode(),
		CodeVerifier: verifier,
	}, nil
}

func (p *Provider) ExchangeCode(ctx context.Context, _, code, codeVerifier string) (*service.ProviderSession, error) {
	var resp tokenResponse
	err := p.do(ctx, "exchange code", request{
		method: http.MethodPost,
		path:   "/token",
		query:  url.Values{"grant_type": {"pkce"}},
		body:   map[string]string{"auth_code": code, "code_verifier": codeVerifier},
	}, &resp)
	if err != nil {
		if provErr, ok := errors.AsType[*domainerrors.ProviderError](err); ok {
			return nil, errors.WithStack(domainerrors.ErrOAuthFailed.WithDetails(provErr.Msg))
		}

		return nil, err
	}

	return p.loginSession(&resp), nil
}

// FetchUserProfile reads the linked identity of provider from the GoTrue user.
func (p *Provider) FetchUserProfile(ctx context.Context, provider, accessToken string) (*service.OAuthUser, error) {
	u, err := p.currentUser(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	for _, identity := range u.Identities {
		if identity.Provider != provider {
			continue
		}

		data := identity.IdentityData
		profile := &service.OAuthUser{
			ID:        firstString(data, "sub", "provider_id"),
			Email:     firstString(data, "email"),
			Name:      firstString(data, "full_name", "name"),
			Provider:  provider,
			AvatarURL: firstString(data, "avatar_url", "picture"),
			Locale:    firstString(data, "locale"),
			ExtraData: data,
		}
		if verified, ok := data["email_verified"].(bool); ok {
			profile.EmailVerified = verified
		}
		if profile.ID == "" {
			profile.ID = identity.ID
		}
		if profile.Email == "" {
			profile.Email = u.Email
		}

		return profile, nil
	}

	return nil, errors.WithStack(domainerrors.ErrNotFound.WithDetails("no " + provider + " identity linked"))
}

func (p *Provider) SetProviderMetadata(ctx context.Context, accessToken, _ string, metadata map[string]any) error {
	return p.updateUser(ctx, "set provider metadata", accessToken, map[string]any{"data": metadata})
}

var (
	_ service.AuthDataProvider = (*Provider)(nil)
	_ service.OAuthProvider    = (*Provider)(nil)
)
