package model

import (
	"time"

	"github.com/google/uuid"
)

// MFASecretModel mirrors the 'mfa_secrets' table. A user has at most one TOTP factor.
type MFASecretModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	FactorID  uuid.UUID `gorm:"type:uuid;not null;unique"`
	Secret    string    `gorm:"type:varchar(255);not null"`
	Enabled   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MFASecretModel) TableName() string {
	return "mfa_secrets"
}

// BackupCodeModel mirrors the 'mfa_backup_codes' table.
type BackupCodeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CodeHash   string    `gorm:"type:varchar(255);not null"`
	ConsumedAt *time.Time
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (BackupCodeModel) TableName() string {
	return "mfa_backup_codes"
}
