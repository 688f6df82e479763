package service

import (
	"context"

	"authhub/internal/domain/entity"
)

// Outbound message kinds delivered to users by a downstream mailer.
const (
	MessageEmailVerification = "email_verification"
	MessagePasswordReset     = "password_reset"
	MessageMagicLink         = "magic_link"
)

// OutboundMessage asks a downstream mailer to deliver a one-time link.
type OutboundMessage struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Kind      string `json:"kind"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Link      string `json:"link"`
	ExpiresAt string `json:"expires_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	PublishAuditEntry(ctx context.Context, entry *entity.AuditEntry) error

	PublishOutboundMessage(ctx context.Context, msg *OutboundMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
