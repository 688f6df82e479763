// Package audit records security-relevant user actions.
package audit

import (
	"context"
	"log/slog"

	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/domain/entity"
	"authhub/internal/domain/service"

	"go.uber.org/fx"
)

// auditLogger writes every entry to the structured log and forwards it to the
// event publisher. Publishing failures are logged and swallowed.
type auditLogger struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// LoggerParams holds dependencies for the audit logger, injected by Fx.
type LoggerParams struct {
	fx.In

	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAuditLogger creates the audit logger.
func NewAuditLogger(params LoggerParams) service.AuditLogger {
	return &auditLogger{
		publisher: params.Publisher,
		logger:    params.Logger.With(slog.String("component", "audit")),
	}
}

func (a *auditLogger) LogUserAction(ctx context.Context, entry entity.AuditEntry) {
	level := slog.LevelInfo
	if entry.Status == entity.AuditFailure {
		level = slog.LevelWarn
	}

	attrs := []slog.Attr{
		slog.String("action", entry.Action),
		slog.String("status", string(entry.Status)),
		slog.String("user_id", entry.UserID),
		slog.String("ip", entry.IPAddress),
		slog.String("user_agent", entry.UserAgent),
		slog.Time("at", entry.Timestamp),
	}
	if entry.TargetResourceType != "" {
		attrs = append(attrs, slog.String("target", entry.TargetResourceType+":"+entry.TargetResourceID))
	}
	if len(entry.Details) > 0 {
		attrs = append(attrs, slog.Any("details", entry.Details))
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		attrs = append(attrs, slog.String("request_id", requestID))
	}

	a.logger.LogAttrs(ctx, level, "Audit", attrs...)

	if a.publisher == nil {
		return
	}
	if err := a.publisher.PublishAuditEntry(ctx, &entry); err != nil {
		a.logger.WarnContext(ctx, "Failed to publish audit entry",
			slog.String("action", entry.Action),
			slog.Any("error", err),
		)
	}
}
