package repository

import (
	"context"
	"time"

	"authhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token has expired")
)

// RefreshTokenRepository stores server-side sessions of the built-in backend.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	FindRefreshTokenByID(ctx context.Context, id uuid.UUID) (*entity.RefreshToken, error)

	// RotateRefreshToken replaces the hash and expiry of an existing session.
	RotateRefreshToken(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error

	DeleteRefreshToken(ctx context.Context, id uuid.UUID) error

	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteOtherRefreshTokens ends every session of userID except keepID.
	DeleteOtherRefreshTokens(ctx context.Context, userID, keepID uuid.UUID) (int64, error)

	DeleteExpiredRefreshTokens(ctx context.Context) error
}
