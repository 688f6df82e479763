package entity

import "time"

// LoginCredentials are submitted by the client to start a password session.
type LoginCredentials struct {
	Email      string
	Password   string
	RememberMe bool
}

// RegisterPayload creates a new account.
type RegisterPayload struct {
	Email    string
	Password string
	Name     string
	Metadata map[string]any
}

// SessionState is what one client session currently knows about its user.
// A token implies a user, except while MFAPending where only the
// temporary MFA token is held.
type SessionState struct {
	User         *User
	Token        string
	RefreshToken string
	TokenExpiry  *time.Time
	MFAPending   bool
}

// Authenticated reports whether the state holds a fully established session.
func (s *SessionState) Authenticated() bool {
	return s.User != nil && s.Token != "" && !s.MFAPending
}

// Empty reports whether there is nothing to clear.
func (s *SessionState) Empty() bool {
	return s.User == nil && s.Token == "" && s.RefreshToken == "" && s.TokenExpiry == nil && !s.MFAPending
}

// AuthResult is the outcome of an operation that may establish a session.
// Exactly one of the success or failure branches is populated.
type AuthResult struct {
	Success bool

	User                      *User
	Token                     string
	ExpiresAt                 *time.Time
	RequiresMFA               bool
	RequiresEmailVerification bool

	Error             string
	Code              string
	RetryAfter        time.Duration
	RemainingAttempts *int
}

// OperationResult is the outcome of an operation that does not establish a session.
type OperationResult struct {
	Success bool
	Error   string
	Code    string
}

// MFASetupResult wraps MFASetup for display.
type MFASetupResult struct {
	Success bool
	Setup   *MFASetup
	Error   string
	Code    string
}

// MFAVerifyResult is the outcome of submitting a TOTP or backup code.
type MFAVerifyResult struct {
	Success bool
	// Enabled is true when the code completed first-time enrolment.
	Enabled bool
	// LoggedIn is true when the code completed a pending login challenge.
	LoggedIn bool
	User     *User
	Error    string
	Code     string
}
