package entity

import (
	"time"

	"github.com/google/uuid"
)

// MFASecret is the TOTP factor of a user. It becomes active once Enabled.
type MFASecret struct {
	UserID    uuid.UUID
	FactorID  uuid.UUID
	Secret    string // base32 TOTP secret.
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BackupCode is a hashed single-use recovery code.
type BackupCode struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CodeHash   string
	ConsumedAt *time.Time
	CreatedAt  time.Time
}

// MFASetup is what a user needs to enrol an authenticator app.
type MFASetup struct {
	FactorID    string
	Secret      string
	OTPAuthURL  string
	QRCode      string // data URL of a PNG rendering of OTPAuthURL.
	BackupCodes []string
}
