package service

import (
	"context"
	"time"

	"authhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ProviderSession is a session issued by an identity backend.
// When RequiresMFA is set only MFAToken is meaningful: it is a short-lived
// challenge token and the long-lived credentials are withheld.
type ProviderSession struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	RequiresMFA  bool
	MFAToken     string
}

// RegistrationResult is the outcome of creating an account. Session is nil
// when the backend requires email confirmation first.
type RegistrationResult struct {
	User                      *entity.User
	Session                   *ProviderSession
	RequiresEmailVerification bool
}

// MFAVerification is the outcome of a successful code check. Session is set
// when the code completed a login challenge; Enabled when it completed enrolment.
type MFAVerification struct {
	User    *entity.User
	Session *ProviderSession
	Enabled bool
}

// AuthDataProvider is the identity backend an Auth Service delegates to.
// Implementations signal throttling with *errors.RateLimitError and
// transport failures with *errors.NetworkError.
type AuthDataProvider interface {
	Login(ctx context.Context, credentials entity.LoginCredentials) (*ProviderSession, error)
	Register(ctx context.Context, payload entity.RegisterPayload) (*RegistrationResult, error)
	Logout(ctx context.Context, accessToken string) error
	GetCurrentUser(ctx context.Context, accessToken string) (*entity.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*ProviderSession, error)

	ResetPassword(ctx context.Context, email string) error
	VerifyPasswordResetToken(ctx context.Context, token string) error
	UpdatePasswordWithToken(ctx context.Context, token, newPassword string) error
	UpdatePassword(ctx context.Context, accessToken, currentPassword, newPassword string) error
	// InvalidateSessions revokes every session of userID other than the one
	// holding currentAccessToken.
	InvalidateSessions(ctx context.Context, userID uuid.UUID, currentAccessToken string) error

	SendVerificationEmail(ctx context.Context, email string) error
	VerifyEmail(ctx context.Context, token string) (*entity.User, error)
	SendMagicLink(ctx context.Context, email string) error
	VerifyMagicLink(ctx context.Context, token string) (*ProviderSession, error)

	DeleteAccount(ctx context.Context, accessToken, password string) error

	SetupMFA(ctx context.Context, accessToken string) (*entity.MFASetup, error)
	// VerifyMFA accepts either a full access token (enrolment) or the
	// temporary token of a pending login challenge.
	VerifyMFA(ctx context.Context, token, code string) (*MFAVerification, error)
	DisableMFA(ctx context.Context, accessToken, code string) error

	// HandleSessionTimeout revokes the backend session after an idle timeout.
	HandleSessionTimeout(ctx context.Context, accessToken string) error
}

// OAuthAuthorization is where to send the browser to start an OAuth flow.
type OAuthAuthorization struct {
	URL string
	// CodeVerifier is the PKCE secret to present when exchanging the code.
	CodeVerifier string
}

// OAuthProvider is the optional OAuth capability of an AuthDataProvider.
type OAuthProvider interface {
	AuthorizationURL(ctx context.Context, provider, state string) (*OAuthAuthorization, error)
	ExchangeCode(ctx context.Context, provider, code, codeVerifier string) (*ProviderSession, error)
	FetchUserProfile(ctx context.Context, provider, accessToken string) (*OAuthUser, error)
	SetProviderMetadata(ctx context.Context, accessToken, provider string, metadata map[string]any) error
}

// AsOAuthProvider reports whether p also supports OAuth sign-in.
func AsOAuthProvider(p AuthDataProvider) (OAuthProvider, bool) {
	oauth, ok := p.(OAuthProvider)

	return oauth, ok
}
