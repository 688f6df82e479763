package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthEventType tags an AuthEvent.
type AuthEventType string

const (
	EventUserLoggedIn            AuthEventType = "user_logged_in"
	EventUserLoggedOut           AuthEventType = "user_logged_out"
	EventUserRegistered          AuthEventType = "user_registered"
	EventAuthenticationFailed    AuthEventType = "authentication_failed"
	EventPasswordResetRequested  AuthEventType = "password_reset_requested"
	EventPasswordUpdated         AuthEventType = "password_updated"
	EventPasswordResetCompleted  AuthEventType = "password_reset_completed"
	EventEmailVerificationSent   AuthEventType = "email_verification_sent"
	EventEmailVerified           AuthEventType = "email_verified"
	EventMagicLinkSent           AuthEventType = "magic_link_sent"
	EventMFASetupStarted         AuthEventType = "mfa_setup_started"
	EventMFAEnabled              AuthEventType = "mfa_enabled"
	EventMFADisabled             AuthEventType = "mfa_disabled"
	EventMFAVerified             AuthEventType = "mfa_verified"
	EventMFARequired             AuthEventType = "mfa_required"
	EventTokenRefreshed          AuthEventType = "token_refreshed"
	EventAuthStateRecoveryFailed AuthEventType = "auth_state_recovery_failed"
	EventAccountDeleted          AuthEventType = "account_deleted"
)

// AuthEvent is a lifecycle notification. Only the fields meaningful for
// Type are set.
type AuthEvent struct {
	Type      AuthEventType
	Timestamp time.Time

	UserID               uuid.UUID
	Email                string
	Reason               string
	SessionExpired       bool
	RequiresVerification bool
	Provider             string
	// Authenticated is set on user_registered when registration also started a session.
	Authenticated bool
}

// ChangesAuthState reports whether the event moves the session between
// signed-in and signed-out.
func (e AuthEvent) ChangesAuthState() bool {
	switch e.Type {
	case EventUserLoggedIn, EventUserLoggedOut, EventAccountDeleted:
		return true
	case EventUserRegistered:
		return e.Authenticated
	default:
		return false
	}
}
