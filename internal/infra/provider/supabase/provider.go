// Package supabase is the identity backend that delegates to a Supabase Auth
// (GoTrue) deployment over its REST API.
package supabase

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"authhub/config"
	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/service"
	"authhub/internal/errors"
	"authhub/internal/util"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

const (
	authPath = "/auth/v1"

	verifyTypeRecovery  = "recovery"
	verifyTypeEmail     = "email"
	verifyTypeMagicLink = "magiclink"

	// recoveryGrantTTL bounds how long a verified reset link stays redeemable.
	recoveryGrantTTL = 10 * time.Minute
)

// Provider implements service.AuthDataProvider and service.OAuthProvider on GoTrue.
type Provider struct {
	baseURL     string
	anonKey     string
	serviceKey  string
	redirectURL string
	httpClient  *http.Client
	qrcode      service.QRCodeService
	clock       clockwork.Clock
	logger      *slog.Logger

	// A recovery token_hash can be verified only once, so the session it
	// yields is kept until the new password is submitted.
	mu       sync.Mutex
	recovery map[string]recoveryGrant
}

type recoveryGrant struct {
	accessToken string
	expiresAt   time.Time
}

// ProviderParams holds dependencies for NewProvider.
type ProviderParams struct {
	fx.In

	Config *config.Config
	QRCode service.QRCodeService
	Clock  clockwork.Clock
	Logger *slog.Logger
}

// NewProvider creates the GoTrue backed identity provider.
func NewProvider(params ProviderParams) (service.AuthDataProvider, error) {
	return newProvider(params.Config, http.DefaultTransport, params.QRCode, params.Clock, params.Logger)
}

func newProvider(cfg *config.Config, transport http.RoundTripper, qr service.QRCodeService, clk clockwork.Clock, logger *slog.Logger) (*Provider, error) {
	if cfg.Supabase == nil || strings.TrimSpace(cfg.Supabase.URL) == "" {
		return nil, errors.New("supabase.url is required")
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.Supabase.URL), "/")
	if !strings.HasSuffix(baseURL, authPath) {
		baseURL += authPath
	}

	var redirectURL string
	if cfg.Auth != nil && cfg.Auth.PublicURL != "" {
		redirectURL = strings.TrimRight(cfg.Auth.PublicURL, "/")
	}

	return &Provider{
		baseURL:     baseURL,
		anonKey:     cfg.Supabase.AnonKey,
		serviceKey:  cfg.Supabase.ServiceKey,
		redirectURL: redirectURL,
		httpClient:  &http.Client{Timeout: cfg.Supabase.RequestTimeout, Transport: transport},
		qrcode:      qr,
		clock:       clk,
		logger:      logger.With(slog.String("component", "supabase")),
		recovery:    make(map[string]recoveryGrant),
	}, nil
}

func (p *Provider) Login(ctx context.Context, credentials entity.LoginCredentials) (*service.ProviderSession, error) {
	resp, err := p.passwordGrant(ctx, credentials.Email, credentials.Password)
	if err != nil {
		return nil, err
	}

	return p.loginSession(resp), nil
}

func (p *Provider) passwordGrant(ctx context.Context, email, password string) (*tokenResponse, error) {
	var resp tokenResponse
	err := p.do(ctx, "login", request{
		method: http.MethodPost,
		path:   "/token",
		query:  url.Values{"grant_type": {"password"}},
		body:   map[string]string{"email": email, "password": password},
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

func (p *Provider) Register(ctx context.Context, payload entity.RegisterPayload) (*service.RegistrationResult, error) {
	data := make(map[string]any, len(payload.Metadata)+1)
	for k, v := range payload.Metadata {
		data[k] = v
	}
	if payload.Name != "" {
		data["full_name"] = payload.Name
	}

	body := map[string]any{"email": payload.Email, "password": payload.Password, "data": data}
	if p.redirectURL != "" {
		body["email_redirect_to"] = p.redirectURL + "/auth/email/verify"
	}

	var resp signupResponse
	if err := p.do(ctx, "register", request{method: http.MethodPost, path: "/signup", body: body}, &resp); err != nil {
		return nil, err
	}

	if resp.AccessToken != "" && resp.tokenResponse.User != nil {
		return &service.RegistrationResult{
			User:    toUser(resp.tokenResponse.User),
			Session: p.toSession(&resp.tokenResponse),
		}, nil
	}

	return &service.RegistrationResult{
		User:                      toUser(&resp.gotrueUser),
		RequiresEmailVerification: true,
	}, nil
}

func (p *Provider) Logout(ctx context.Context, accessToken string) error {
	return p.logout(ctx, "logout", accessToken, "local")
}

// logout treats an already ended session as success.
func (p *Provider) logout(ctx context.Context, op, accessToken, scope string) error {
	err := p.do(ctx, op, request{
		method: http.MethodPost,
		path:   "/logout",
		query:  url.Values{"scope": {scope}},
		bearer: accessToken,
	}, nil)
	if errors.Is(err, domainerrors.ErrSessionExpired) || errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil
	}

	return err
}

func (p *Provider) GetCurrentUser(ctx context.Context, accessToken string) (*entity.User, error) {
	u, err := p.currentUser(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	return toUser(u), nil
}

func (p *Provider) currentUser(ctx context.Context, accessToken string) (*gotrueUser, error) {
	var u gotrueUser
	if err := p.do(ctx, "get user", request{method: http.MethodGet, path: "/user", bearer: accessToken}, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

func (p *Provider) RefreshToken(ctx context.Context, refreshToken string) (*service.ProviderSession, error) {
	var resp tokenResponse
	err := p.do(ctx, "refresh token", request{
		method: http.MethodPost,
		path:   "/token",
		query:  url.Values{"grant_type": {"refresh_token"}},
		body:   map[string]string{"refresh_token": refreshToken},
	}, &resp)
	if err != nil {
		if errors.Is(err, domainerrors.ErrSessionExpired) {
			return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
		}

		return nil, err
	}

	return p.toSession(&resp), nil
}

func (p *Provider) ResetPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	if p.redirectURL != "" {
		body["redirect_to"] = p.redirectURL + "/auth/password/reset/confirm"
	}

	return p.do(ctx, "reset password", request{method: http.MethodPost, path: "/recover", body: body}, nil)
}

func (p *Provider) VerifyPasswordResetToken(ctx context.Context, token string) error {
	_, err := p.recoveryAccessToken(ctx, token)

	return err
}

func (p *Provider) UpdatePasswordWithToken(ctx context.Context, token, newPassword string) error {
	accessToken, err := p.recoveryAccessToken(ctx, token)
	if err != nil {
		return err
	}

	if err := p.updateUser(ctx, "update password", accessToken, map[string]any{"password": newPassword}); err != nil {
		return err
	}

	p.mu.Lock()
	delete(p.recovery, util.HashToken(token))
	p.mu.Unlock()

	// Sessions opened with the old password end with the reset.
	return p.logout(ctx, "logout after reset", accessToken, "global")
}

// recoveryAccessToken redeems a recovery link. A JWT is already the recovery
// session; anything else is a token_hash to verify.
func (p *Provider) recoveryAccessToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", errors.WithStack(domainerrors.ErrTokenInvalid)
	}
	if strings.Count(token, ".") == 2 {
		if _, err := p.currentUser(ctx, token); err != nil {
			return "", tokenError(err)
		}

		return token, nil
	}

	key := util.HashToken(token)
	now := p.clock.Now()

	p.mu.Lock()
	for k, grant := range p.recovery {
		if !now.Before(grant.expiresAt) {
			delete(p.recovery, k)
		}
	}
	grant, ok := p.recovery[key]
	p.mu.Unlock()
	if ok {
		return grant.accessToken, nil
	}

	resp, err := p.verify(ctx, verifyTypeRecovery, token)
	if err != nil {
		return "", err
	}

	p.mu.Lock()
	p.recovery[key] = recoveryGrant{accessToken: resp.AccessToken, expiresAt: now.Add(recoveryGrantTTL)}
	p.mu.Unlock()

	return resp.AccessToken, nil
}

func (p *Provider) UpdatePassword(ctx context.Context, accessToken, currentPassword, newPassword string) error {
	u, err := p.currentUser(ctx, accessToken)
	if err != nil {
		return err
	}
	if err := p.checkPassword(ctx, u.Email, currentPassword); err != nil {
		return err
	}

	return p.updateUser(ctx, "update password", accessToken, map[string]any{"password": newPassword})
}

// checkPassword re-authenticates the user without keeping the session.
func (p *Provider) checkPassword(ctx context.Context, email, password string) error {
	resp, err := p.passwordGrant(ctx, email, password)
	if err != nil {
		return err
	}

	if err := p.logout(ctx, "logout reauthentication", resp.AccessToken, "local"); err != nil {
		p.logger.WarnContext(ctx, "Failed to end reauthentication session", slog.Any("error", err))
	}

	return nil
}

func (p *Provider) InvalidateSessions(ctx context.Context, _ uuid.UUID, currentAccessToken string) error {
	return p.logout(ctx, "invalidate sessions", currentAccessToken, "others")
}

func (p *Provider) SendVerificationEmail(ctx context.Context, email string) error {
	body := map[string]any{"type": "signup", "email": email}
	if p.redirectURL != "" {
		body["options"] = map[string]string{"email_redirect_to": p.redirectURL + "/auth/email/verify"}
	}

	return p.do(ctx, "resend verification", request{method: http.MethodPost, path: "/resend", body: body}, nil)
}

func (p *Provider) VerifyEmail(ctx context.Context, token string) (*entity.User, error) {
	resp, err := p.verify(ctx, verifyTypeEmail, token)
	if err != nil {
		return nil, err
	}

	return toUser(resp.User), nil
}

func (p *Provider) SendMagicLink(ctx context.Context, email string) error {
	body := map[string]any{"email": email, "create_user": false}
	if p.redirectURL != "" {
		body["options"] = map[string]string{"email_redirect_to": p.redirectURL + "/auth/magic-link/verify"}
	}

	return p.do(ctx, "send magic link", request{method: http.MethodPost, path: "/otp", body: body}, nil)
}

func (p *Provider) VerifyMagicLink(ctx context.Context, token string) (*service.ProviderSession, error) {
	resp, err := p.verify(ctx, verifyTypeMagicLink, token)
	if err != nil {
		return nil, err
	}

	return p.loginSession(resp), nil
}

func (p *Provider) verify(ctx context.Context, verifyType, tokenHash string) (*tokenResponse, error) {
	var resp tokenResponse
	err := p.do(ctx, "verify "+verifyType, request{
		method: http.MethodPost,
		path:   "/verify",
		body:   map[string]string{"type": verifyType, "token_hash": tokenHash},
	}, &resp)
	if err != nil {
		return nil, tokenError(err)
	}
	if resp.AccessToken == "" {
		return nil, errors.WithStack(domainerrors.ErrProvider.WithDetails("verify returned no session"))
	}

	return &resp, nil
}

// DeleteAccount needs the service role key: GoTrue only deletes users through
// its admin API.
func (p *Provider) DeleteAccount(ctx context.Context, accessToken, password string) error {
	if p.serviceKey == "" {
		return errors.WithStack(domainerrors.ErrProvider.WithMessage("Account deletion is not available."))
	}

	u, err := p.currentUser(ctx, accessToken)
	if err != nil {
		return err
	}
	if err := p.checkPassword(ctx, u.Email, password); err != nil {
		return err
	}

	return p.do(ctx, "delete account", request{
		method: http.MethodDelete,
		path:   "/admin/users/" + url.PathEscape(u.ID),
		admin:  true,
	}, nil)
}

func (p *Provider) HandleSessionTimeout(ctx context.Context, accessToken string) error {
	return p.logout(ctx, "session timeout", accessToken, "local")
}

func (p *Provider) updateUser(ctx context.Context, op, accessToken string, body map[string]any) error {
	return p.do(ctx, op, request{method: http.MethodPut, path: "/user", bearer: accessToken, body: body}, nil)
}

// tokenError reports a rejected one-time or session token as invalid.
func tokenError(err error) error {
	if errors.Is(err, domainerrors.ErrSessionExpired) || errors.Is(err, domainerrors.ErrUserNotFound) {
		return errors.WithStack(domainerrors.ErrTokenInvalid)
	}
	if provErr, ok := errors.AsType[*domainerrors.ProviderError](err); ok && provErr.Status == http.StatusForbidden {
		return errors.WithStack(domainerrors.ErrTokenInvalid.WithDetails(provErr.Msg))
	}

	return err
}
