package repository

import (
	"context"
	"errors"

	"authhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when an authentication method is not found.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository persists login credentials.
type AuthRepository interface {
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves a credential by provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)

	FindAuthenticationByUser(ctx context.Context, userID uuid.UUID, provider string) (*entity.Authentication, error)

	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}
