// Package google implements the authorization code flow against Google for
// the built-in identity backend.
package google

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"authhub/config"
	"authhub/internal/domain/entity"
	"authhub/internal/domain/service"
	"authhub/internal/errors"

	"github.com/jonboulle/clockwork"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

var defaultScopes = []string{"openid", "email", "profile"}

// OAuthService exchanges Google authorization codes for user profiles.
type OAuthService struct {
	oauth       *oauth2.Config
	userInfoURL string
	idTokens    *idTokenVerifier
	logger      *slog.Logger
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(cfg *config.Config, clk clockwork.Clock, logger *slog.Logger) (service.OAuthCodeService, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, errors.New("googleOAuth.clientId is required")
	}

	return newOAuthService(cfg.GoogleOAuth, endpoints.Google, googleUserInfoURL, clk, logger), nil
}

func newOAuthService(cfg *config.GoogleOAuthConfig, endpoint oauth2.Endpoint, userInfoURL string, clk clockwork.Clock, logger *slog.Logger) *OAuthService {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}

	return &OAuthService{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       scopes,
			Endpoint:     endpoint,
		},
		userInfoURL: userInfoURL,
		idTokens:    &idTokenVerifier{clientID: cfg.ClientID, clock: clk},
		logger:      logger,
	}
}

// Provider returns the OAuth provider name
func (s *OAuthService) Provider() string {
	return entity.ProviderGoogle
}

// AuthCodeURL builds the consent screen URL. codeVerifier is the PKCE secret
// later presented to Exchange; it is never sent in the URL.
func (s *OAuthService) AuthCodeURL(state, codeVerifier string) string {
	opts := []oauth2.AuthCodeOption{oauth2.AccessTypeOnline}
	if codeVerifier != "" {
		opts = append(opts, oauth2.S256ChallengeOption(codeVerifier))
	}

	return s.oauth.AuthCodeURL(state, opts...)
}

// Exchange swaps the authorization code for tokens and resolves the user.
// The id_token is preferred; the userinfo endpoint is the fallback.
func (s *OAuthService) Exchange(ctx context.Context, code, codeVerifier string) (*service.OAuthUser, error) {
	var opts []oauth2.AuthCodeOption
	if codeVerifier != "" {
		opts = append(opts, oauth2.VerifierOption(codeVerifier))
	}

	token, err := s.oauth.Exchange(ctx, code, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange code for token")
	}

	if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
		user, err := s.idTokens.Verify(rawIDToken)
		if err == nil {
			return user, nil
		}
		s.logger.Warn("Google ID token rejected, falling back to userinfo", slog.Any("error", err))
	}

	return s.fetchUserInfo(ctx, token)
}

func (s *OAuthService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*service.OAuthUser, error) {
	client := s.oauth.Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var googleUser struct {
		Sub           string `json:"sub"`
		Email         string `json:"email"`
		Name          string `json:"name"`
		GivenName     string `json:"given_name"`
		FamilyName    string `json:"family_name"`
		Picture       string `json:"picture"`
		EmailVerified bool   `json:"email_verified"`
		Locale        string `json:"locale"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}
	if googleUser.Sub == "" {
		return nil, errors.New("user info response has no subject")
	}

	return &service.OAuthUser{
		ID:            googleUser.Sub,
		Email:         googleUser.Email,
		Name:          googleUser.Name,
		Provider:      entity.ProviderGoogle,
		AvatarURL:     googleUser.Picture,
		EmailVerified: googleUser.EmailVerified,
		Locale:        googleUser.Locale,
		ExtraData: map[string]any{
			"given_name":  googleUser.GivenName,
			"family_name": googleUser.FamilyName,
		},
	}, nil
}
