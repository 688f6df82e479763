package pubsub

import (
	"context"
	"encoding/json"

	deliverycontext "authhub/internal/delivery/context"
	"authhub/internal/domain/entity"
	"authhub/internal/domain/service"
	"authhub/internal/errors"

	"github.com/google/uuid"
)

// Message kinds carried in the "kind" attribute so subscribers can filter.
const (
	KindAuditEntry      = "audit_entry"
	KindOutboundMessage = "outbound_message"
)

// message is one serialized event ready for either transport.
type message struct {
	id         string
	data       []byte
	attributes map[string]string
}

func newAuditMessage(ctx context.Context, entry *entity.AuditEntry) (*message, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"kind":   KindAuditEntry,
		"action": entry.Action,
		"status": string(entry.Status),
	}
	if entry.UserID != "" {
		attributes["user_id"] = entry.UserID
	}

	return newMessage(data, attributes, deliverycontext.GetRequestIDFromContext(ctx)), nil
}

func newOutboundMessage(msg *service.OutboundMessage) (*message, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"kind":         KindOutboundMessage,
		"message_kind": msg.Kind,
		"user_id":      msg.UserID,
	}

	return newMessage(data, attributes, msg.RequestID), nil
}

func newMessage(data []byte, attributes map[string]string, requestID string) *message {
	if requestID != "" {
		attributes["request_id"] = requestID
	}

	return &message{id: uuid.NewString(), data: data, attributes: attributes}
}
