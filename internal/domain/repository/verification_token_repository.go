package repository

import (
	"context"
	"errors"

	"authhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVerificationTokenNotFound is returned for unknown one-time tokens.
var ErrVerificationTokenNotFound = errors.New("verification token not found")

// VerificationTokenRepository stores hashed one-time tokens.
type VerificationTokenRepository interface {
	CreateVerificationToken(ctx context.Context, token *entity.VerificationToken) error

	FindVerificationToken(ctx context.Context, purpose entity.VerificationPurpose, tokenHash string) (*entity.VerificationToken, error)

	MarkConsumed(ctx context.Context, id uuid.UUID) error

	// DeleteByUserAndPurpose invalidates outstanding tokens before a new one is issued.
	DeleteByUserAndPurpose(ctx context.Context, userID uuid.UUID, purpose entity.VerificationPurpose) error
}
