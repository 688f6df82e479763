// Package model holds the GORM persistence models of the built-in identity backend.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email         string         `gorm:"type:varchar(255);unique;not null"`
	Name          string         `gorm:"type:varchar(100)"`
	EmailVerified bool           `gorm:"not null;default:false"`
	Roles         []string       `gorm:"type:jsonb;serializer:json;not null"`
	AvatarURL     string         `gorm:"type:varchar(1024)"`
	Metadata      map[string]any `gorm:"type:jsonb;serializer:json"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	MFASecret          *MFASecretModel          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Authentications    []AuthenticationModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	RefreshTokens      []RefreshTokenModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	BackupCodes        []BackupCodeModel        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	VerificationTokens []VerificationTokenModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&RefreshTokenModel{},
		&MFASecretModel{},
		&BackupCodeModel{},
		&VerificationTokenModel{},
	}
}
