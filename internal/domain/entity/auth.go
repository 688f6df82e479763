package entity

import (
	"time"

	"github.com/google/uuid"
)

// Authentication providers known to the built-in identity backend.
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

// Authentication is a single way of logging in to an account (a credential).
// An email/password pair is one record, a linked Google account is another.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       string // "email", "google"
	ProviderUserID string // External subject, or the email for password credentials.
	PasswordHash   string // bcrypt hash, only for the "email" provider.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RefreshToken is a long-lived server-side session of the built-in backend.
// Access tokens carry its ID as the session id claim.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // SHA-256 of the raw refresh token.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session has passed its expiry at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// VerificationPurpose scopes a one-time token to a single flow.
type VerificationPurpose string

const (
	PurposeEmailVerification VerificationPurpose = "email_verification"
	PurposePasswordReset     VerificationPurpose = "password_reset"
	PurposeMagicLink         VerificationPurpose = "magic_link"
)

// VerificationToken is a hashed one-time token delivered out of band.
type VerificationToken struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Purpose    VerificationPurpose
	TokenHash  string
	ExpiresAt  time.Time
	ConsumedAt *time.Time
	CreatedAt  time.Time
}

// Usable reports whether the token is neither consumed nor expired at now.
func (t *VerificationToken) Usable(now time.Time) bool {
	return t.ConsumedAt == nil && now.Before(t.ExpiresAt)
}
