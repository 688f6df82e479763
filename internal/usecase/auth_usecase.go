// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"authhub/internal/domain/entity"
)

// AuthEventHandler receives lifecycle events of one client session.
type AuthEventHandler func(event entity.AuthEvent)

// AuthStateHandler receives the signed-in user, or nil after sign-out.
type AuthStateHandler func(user *entity.User)

// AuthUsecase is the authentication orchestrator of a single client session.
// Result-returning operations report failures inside the result; the
// error-returning ones (UpdatePassword, VerifyEmail, DeleteAccount) return
// errors whose AppError message is safe to display.
type AuthUsecase interface {
	Login(ctx context.Context, credentials entity.LoginCredentials) *entity.AuthResult
	Register(ctx context.Context, payload entity.RegisterPayload) *entity.AuthResult
	Logout(ctx context.Context)

	ResetPassword(ctx context.Context, email string) *entity.OperationResult
	VerifyPasswordResetToken(ctx context.Context, token string) *entity.OperationResult
	UpdatePasswordWithToken(ctx context.Context, token, newPassword string) *entity.OperationResult
	UpdatePassword(ctx context.Context, currentPassword, newPassword string) error

	SendVerificationEmail(ctx context.Context, email string) *entity.OperationResult
	VerifyEmail(ctx context.Context, token string) error
	SendMagicLink(ctx context.Context, email string) *entity.OperationResult
	VerifyMagicLink(ctx context.Context, token string) *entity.AuthResult

	DeleteAccount(ctx context.Context, password string) error

	// RefreshToken renews the session token. It reports whether a new token is now held.
	RefreshToken(ctx context.Context) bool

	SetupMFA(ctx context.Context) *entity.MFASetupResult
	VerifyMFA(ctx context.Context, code string) *entity.MFAVerifyResult
	DisableMFA(ctx context.Context, code string) *entity.OperationResult

	// HandleSessionTimeout force-logs the session out. Calling it without a session is a no-op.
	HandleSessionTimeout(ctx context.Context)

	// OAuthAuthorizationURL starts an OAuth sign-in; state is echoed back on the callback.
	OAuthAuthorizationURL(ctx context.Context, provider, state string) (string, error)
	CompleteOAuth(ctx context.Context, provider, code, state string) *entity.AuthResult

	// Restore rehydrates the session from storage. It reports whether a user was recovered.
	Restore(ctx context.Context) bool

	// RecordActivity stamps user activity for idle tracking.
	RecordActivity(ctx context.Context)

	OnAuthStateChanged(handler AuthStateHandler) (unsubscribe func())
	Subscribe(eventType entity.AuthEventType, handler AuthEventHandler) (unsubscribe func())

	GetCurrentUser() *entity.User
	IsAuthenticated() bool
	GetToken() string
	GetTokenExpiry() *time.Time

	// Close stops timers and the signal loop. The session state is kept.
	Close()
}

// SessionRegistry maps opaque client session ids to their AuthUsecase. Ids
// are minted by the registry; ids presented by clients are never adopted.
type SessionRegistry interface {
	// Create registers a signed-out session under a freshly minted id.
	Create(ctx context.Context) (sessionID string, auth AuthUsecase, err error)

	// Resume returns the session registered under sessionID. An id unknown
	// to this process is accepted only when a session persisted under it
	// can be restored.
	Resume(ctx context.Context, sessionID string) (AuthUsecase, bool)

	// Lookup returns an existing orchestrator without creating one.
	Lookup(sessionID string) (AuthUsecase, bool)

	// Rotate moves a session to a freshly minted id and returns it. The old
	// id stops resolving.
	Rotate(ctx context.Context, sessionID string) (string, error)

	Remove(sessionID string)

	// Sweep evicts signed-out orchestrators that saw no request for a while;
	// it returns how many were evicted.
	Sweep(ctx context.Context) int

	Len() int
}
