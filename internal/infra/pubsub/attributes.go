package pubsub

import "fileauth/internal/domain/service"

// eventAttributes are the message attributes used for filtering and tracing.
func eventAttributes(event *service.AuditEvent) map[string]string {
	attributes := map[string]string{
		"event_id": event.ID,
		"action":   string(event.Action),
		"username": event.Username,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
