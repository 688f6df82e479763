// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the authenticated identity as reported by the identity backend.
type User struct {
	ID            uuid.UUID      // Identifier assigned by the identity backend.
	Email         string         // Primary email, used as the login identifier.
	Name          string         // Display name.
	EmailVerified bool           // Whether the email address has been confirmed.
	MFAEnabled    bool           // Whether a verified TOTP factor exists.
	Roles         Roles          // Application roles carried in access tokens.
	AvatarURL     string         // Profile picture, usually from an OAuth provider.
	Metadata      map[string]any // Free-form profile data supplied at registration or by OAuth providers.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Clone returns a deep copy so callers cannot mutate session state through a shared pointer.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	clone := *u
	if u.Roles != nil {
		clone.Roles = append(Roles(nil), u.Roles...)
	}
	if u.Metadata != nil {
		clone.Metadata = make(map[string]any, len(u.Metadata))
		for k, v := range u.Metadata {
			clone.Metadata[k] = v
		}
	}

	return &clone
}
