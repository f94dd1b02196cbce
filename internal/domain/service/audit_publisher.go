package service

import (
	"context"
	"time"
)

// AuditAction names an auditable event.
type AuditAction string

const (
	AuditLoginSucceeded AuditAction = "login.succeeded"
	AuditLoginFailed    AuditAction = "login.failed"
	AuditLogout         AuditAction = "logout"
	AuditUserCreated    AuditAction = "user.created"
	AuditUserUpdated    AuditAction = "user.updated"
	AuditUserDeleted    AuditAction = "user.deleted"
)

// AuditEvent represents a security-relevant event shipped to an external sink.
type AuditEvent struct {
	ID         string      `json:"id"`
	RequestID  string      `json:"request_id,omitempty"` // For distributed tracing
	Action     AuditAction `json:"action"`
	Username   string      `json:"username"`
	Actor      string      `json:"actor,omitempty"`
	RemoteAddr string      `json:"remote_addr,omitempty"`
	Changes    []string    `json:"changes,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// AuditPublisher defines the interface for publishing audit events to a message queue
type AuditPublisher interface {
	// PublishAuditEvent ships a single audit event
	PublishAuditEvent(ctx context.Context, event *AuditEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
