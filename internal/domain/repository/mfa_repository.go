package repository

import (
	"context"
	"errors"

	"authhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMFASecretNotFound is returned when the user never started TOTP enrolment.
var ErrMFASecretNotFound = errors.New("mfa secret not found")

// MFARepository persists TOTP factors and backup codes.
type MFARepository interface {
	// UpsertSecret stores a new pending factor, replacing any earlier one.
	UpsertSecret(ctx context.Context, secret *entity.MFASecret) error

	FindSecret(ctx context.Context, userID uuid.UUID) (*entity.MFASecret, error)

	EnableSecret(ctx context.Context, userID uuid.UUID) error

	DeleteSecret(ctx context.Context, userID uuid.UUID) error

	// ReplaceBackupCodes drops every existing code of the user and stores codes.
	ReplaceBackupCodes(ctx context.Context, userID uuid.UUID, codes []*entity.BackupCode) error

	// ConsumeBackupCode marks the matching unused code as used. It reports
	// false when no unused code matches.
	ConsumeBackupCode(ctx context.Context, userID uuid.UUID, codeHash string) (bool, error)
}
