package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/domain/entity"
	"authhub/internal/errors"
	mockSvc "authhub/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, nil)), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	decoder := json.NewDecoder(buf)
	for decoder.More() {
		var line map[string]any
		require.NoError(t, decoder.Decode(&line))
		lines = append(lines, line)
	}

	return lines
}

func TestAuditLogger_LogUserAction(t *testing.T) {
	logger, buf := newBufferLogger()
	publisher := mockSvc.NewMockEventPublisher(t)
	auditLog := NewAuditLogger(LoggerParams{Publisher: publisher, Logger: logger})

	entry := entity.AuditEntry{
		UserID:             "user-1",
		Action:             "login",
		Status:             entity.AuditFailure,
		TargetResourceType: "session",
		TargetResourceID:   "sid-1",
		IPAddress:          "203.0.113.7",
		Details:            map[string]any{"code": "INVALID_CREDENTIALS"},
		Timestamp:          time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	publisher.EXPECT().PublishAuditEntry(mock.Anything, &entry).Return(nil).Once()

	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	auditLog.LogUserAction(ctx, entry)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.Equal(t, "login", lines[0]["action"])
	assert.Equal(t, "session:sid-1", lines[0]["target"])
	assert.Equal(t, "req-1", lines[0]["request_id"])
	assert.Equal(t, "audit", lines[0]["component"])
}

func TestAuditLogger_PublishFailureIsSwallowed(t *testing.T) {
	logger, buf := newBufferLogger()
	publisher := mockSvc.NewMockEventPublisher(t)
	auditLog := NewAuditLogger(LoggerParams{Publisher: publisher, Logger: logger})

	publisher.EXPECT().PublishAuditEntry(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	assert.NotPanics(t, func() {
		auditLog.LogUserAction(context.Background(), entity.AuditEntry{Action: "logout", Status: entity.AuditSuccess})
	})

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "Failed to publish audit entry", lines[1]["msg"])
}

func TestAuditLogger_WithoutPublisher(t *testing.T) {
	logger, buf := newBufferLogger()
	auditLog := NewAuditLogger(LoggerParams{Logger: logger})

	auditLog.LogUserAction(context.Background(), entity.AuditEntry{Action: "logout", Status: entity.AuditSuccess})

	assert.Len(t, decodeLines(t, buf), 1)
}
