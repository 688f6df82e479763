package service

import "context"

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string         // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string         // User's email address
	Name          string         // User's display name
	Provider      string         // The OAuth provider (google, github, ...)
	AvatarURL     string         // URL to user's profile picture
	EmailVerified bool           // Whether the email is verified by the provider
	Locale        string         // User's locale/language preference
	ExtraData     map[string]any // Additional provider-specific data
}

// OAuthCodeService runs the authorization code flow (with PKCE) against one
// external OAuth provider on behalf of the built-in identity backend.
type OAuthCodeService interface {
	AuthCodeURL(state, codeVerifier string) string
	// Exchange swaps an authorization code for the provider's user profile.
	Exchange(ctx context.Context, code, codeVerifier string) (*OAuthUser, error)
	Provider() string
}
