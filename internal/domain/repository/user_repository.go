// Package repository defines the interfaces for the persistence layer of the
// built-in identity backend.
package repository

import (
	"context"
	"errors"

	"authhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	Create(ctx context.Context, user *entity.User) error

	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user and, through foreign keys, every credential and session.
	Delete(ctx context.Context, id uuid.UUID) error
}
