package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fileauth/internal/delivery/context"
	"fileauth/internal/domain/service"

	"github.com/google/uuid"
)

// auditRecorder ships audit events. Publishing failures never fail the
// operation being audited; they are logged and dropped.
type auditRecorder struct {
	publisher service.AuditPublisher
	now       func() time.Time
}

func newAuditRecorder(publisher service.AuditPublisher) *auditRecorder {
	return &auditRecorder{publisher: publisher, now: time.Now}
}

func (a *auditRecorder) record(ctx context.Context, logger *slog.Logger, event *service.AuditEvent) {
	if a == nil || a.publisher == nil {
		return
	}

	event.ID = uuid.NewString()
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = a.now().UTC()

	if err := a.publisher.PublishAuditEvent(ctx, event); err != nil {
		logger.Error("Failed to publish audit event",
			slog.String("action", string(event.Action)),
			slog.String("username", event.Username),
			slog.Any("error", err),
		)
	}
}
