// Package local is the built-in identity backend: accounts, credentials and
// sessions live in Postgres and tokens are minted by this process.
package local

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"authhub/config"
	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/domain/entity"
	domainerrors "authhub/internal/domain/errors"
	"authhub/internal/domain/repository"
	"authhub/internal/domain/service"
	"authhub/internal/errors"
	"authhub/internal/infra/ratelimit"
	"authhub/internal/util"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/fx"
)

const (
	defaultBackupCodeCount = 10
	cleanupInterval        = time.Hour
)

// Provider implements service.AuthDataProvider and service.OAuthProvider.
type Provider struct {
	txManager          repository.TransactionManager
	users              repository.UserRepository
	auths              repository.AuthRepository
	refreshTokens      repository.RefreshTokenRepository
	mfa                repository.MFARepository
	verificationTokens repository.VerificationTokenRepository

	hasher    service.PasswordHasher
	validator service.PasswordValidator
	tokens    service.TokenService
	totp      service.TOTPService
	qrcode    service.QRCodeService
	publisher service.EventPublisher
	oauth     map[string]service.OAuthCodeService
	limiter   *ratelimit.Limiter

	requireEmailVerification bool
	verificationTTL          time.Duration
	backupCodeCount          int
	publicURL                string

	clock  clockwork.Clock
	logger *slog.Logger
}

// ProviderParams holds dependencies for the built-in provider, injected by Fx.
type ProviderParams struct {
	fx.In

	Lc                 fx.Lifecycle
	TxManager          repository.TransactionManager
	Users              repository.UserRepository
	Auths              repository.AuthRepository
	RefreshTokens      repository.RefreshTokenRepository
	MFA                repository.MFARepository
	VerificationTokens repository.VerificationTokenRepository
	Hasher             service.PasswordHasher
	Validator          service.PasswordValidator
	Tokens             service.TokenService
	TOTP               service.TOTPService
	QRCode             service.QRCodeService
	Publisher          service.EventPublisher
	OAuth              []service.OAuthCodeService `group:"oauth_services"`
	Limiter            *ratelimit.Limiter
	Config             *config.Config
	Clock              clockwork.Clock
	Logger             *slog.Logger
}

// NewProvider creates the built-in provider and schedules cleanup of
// expired sessions for the lifetime of the app.
func NewProvider(params ProviderParams) service.AuthDataProvider {
	p := newProvider(params)

	stop := make(chan struct{})
	done := make(chan struct{})
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				p.cleanupLoop(cleanupInterval, stop)
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			close(stop)
			<-done

			return nil
		},
	})

	return p
}

func newProvider(params ProviderParams) *Provider {
	auth := params.Config.Auth

	p := &Provider{
		txManager:                params.TxManager,
		users:                    params.Users,
		auths:                    params.Auths,
		refreshTokens:            params.RefreshTokens,
		mfa:                      params.MFA,
		verificationTokens:       params.VerificationTokens,
		hasher:                   params.Hasher,
		validator:                params.Validator,
		tokens:                   params.Tokens,
		totp:                     params.TOTP,
		qrcode:                   params.QRCode,
		publisher:                params.Publisher,
		oauth:                    make(map[string]service.OAuthCodeService, len(params.OAuth)),
		limiter:                  params.Limiter,
		requireEmailVerification: auth.RequireEmailVerification,
		verificationTTL:          auth.VerificationTokenTTL,
		backupCodeCount:          auth.BackupCodeCount,
		publicURL:                strings.TrimRight(auth.PublicURL, "/"),
		clock:                    params.Clock,
		logger:                   params.Logger.With(slog.String("component", "local_provider")),
	}
	if p.backupCodeCount <= 0 {
		p.backupCodeCount = defaultBackupCodeCount
	}
	for _, svc := range params.OAuth {
		p.oauth[svc.Provider()] = svc
	}

	return p
}

// log returns a request-scoped logger if available, otherwise falls back to the provider's logger.
func (p *Provider) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

func (p *Provider) cleanupLoop(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.cleanup(context.Background())
		}
	}
}

// cleanup drops expired sessions and idle rate limit buckets.
func (p *Provider) cleanup(ctx context.Context) {
	if err := p.refreshTokens.DeleteExpiredRefreshTokens(ctx); err != nil {
		p.log(ctx).Warn("Failed to delete expired refresh tokens", slog.Any("error", err))
	}
	if pruned := p.limiter.Prune(); pruned > 0 {
		p.log(ctx).Debug("Pruned idle rate limit buckets", slog.Int("count", pruned))
	}
}

// authenticate validates an access token and checks its server-side session
// has not been revoked.
func (p *Provider) authenticate(ctx context.Context, accessToken string) (*service.Claims, error) {
	if accessToken == "" {
		return nil, errors.WithStack(domainerrors.ErrNotAuthenticated)
	}

	claims, err := p.tokens.ValidateToken(accessToken, service.TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	if _, err := p.refreshTokens.FindRefreshTokenByID(ctx, claims.SessionID); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			return nil, errors.WithStack(domainerrors.ErrSessionExpired.WithDetails("session revoked"))
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	return claims, nil
}

// issueSession opens a server-side session for user and mints its tokens.
func (p *Provider) issueSession(ctx context.Context, refreshTokens repository.RefreshTokenRepository, user *entity.User) (*service.ProviderSession, error) {
	sessionID := uuid.New()

	issued, err := p.tokens.IssueTokens(user.ID, sessionID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue tokens")
	}

	err = refreshTokens.CreateRefreshToken(ctx, &entity.RefreshToken{
		ID:        sessionID,
		UserID:    user.ID,
		TokenHash: util.HashToken(issued.RefreshToken),
		ExpiresAt: issued.RefreshExpiresAt,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &service.ProviderSession{
		User:         user,
		AccessToken:  issued.AccessToken,
		RefreshToken: issued.RefreshToken,
		ExpiresAt:    issued.AccessExpiresAt,
	}, nil
}

// startSession either opens a session or, for users with a second factor,
// hands out the pending MFA challenge token instead.
func (p *Provider) startSession(ctx context.Context, user *entity.User) (*service.ProviderSession, error) {
	if !user.MFAEnabled {
		return p.issueSession(ctx, p.refreshTokens, user)
	}

	mfaToken, expiresAt, err := p.tokens.IssueMFAToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue mfa token")
	}

	return &service.ProviderSession{
		User:        user,
		RequiresMFA: true,
		MFAToken:    mfaToken,
		ExpiresAt:   expiresAt,
	}, nil
}

func (p *Provider) loadUser(ctx context.Context, users repository.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func rateLimitKey(op, subject string) string {
	return op + ":" + subject
}

var (
	_ service.AuthDataProvider = (*Provider)(nil)
	_ service.OAuthProvider    = (*Provider)(nil)
)
