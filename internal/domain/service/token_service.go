package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
	TokenTypeMFA     = "mfa_pending"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID    uuid.UUID `json:"uid"`
	SessionID uuid.UUID `json:"sid,omitzero"`
	Roles     []string  `json:"roles,omitempty"`
	Type      string    `json:"type"`
	jwt.RegisteredClaims
}

// IssuedTokens is a freshly minted access/refresh pair.
type IssuedTokens struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// TokenService issues and validates the built-in backend's JWTs.
type TokenService interface {
	// IssueTokens creates an access/refresh pair bound to a server-side session.
	IssueTokens(userID, sessionID uuid.UUID, roles []string) (*IssuedTokens, error)

	// IssueMFAToken creates the short-lived token of a pending MFA login.
	IssueMFAToken(userID uuid.UUID) (string, time.Time, error)

	// ValidateToken parses tokenString and checks it is of tokenType.
	ValidateToken(tokenString, tokenType string) (*Claims, error)

	RefreshTokenDuration() time.Duration
}
