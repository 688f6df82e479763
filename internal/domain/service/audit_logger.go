package service

import (
	"context"

	"authhub/internal/domain/entity"
)

// AuditLogger records security-relevant actions. It never fails the caller.
type AuditLogger interface {
	LogUserAction(ctx context.Context, entry entity.AuditEntry)
}
