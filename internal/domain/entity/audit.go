package entity

import "time"

// AuditStatus is the outcome recorded for an audited action.
type AuditStatus string

const (
	AuditSuccess AuditStatus = "success"
	AuditFailure AuditStatus = "failure"
)

// AuditEntry is a security-relevant user action. Recording is fire-and-forget.
type AuditEntry struct {
	UserID             string         `json:"userId"`
	Action             string         `json:"action"`
	Status             AuditStatus    `json:"status"`
	TargetResourceType string         `json:"targetResourceType,omitempty"`
	TargetResourceID   string         `json:"targetResourceId,omitempty"`
	IPAddress          string         `json:"ipAddress,omitempty"`
	UserAgent          string         `json:"userAgent,omitempty"`
	Details            map[string]any `json:"details,omitempty"`
	Timestamp          time.Time      `json:"timestamp"`
}
