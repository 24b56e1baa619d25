package ports

import (
	"context"

	"github.com/peopledesk/workforce-api/internal/core/domain"
)

// AuditRecorder accepts lifecycle events for asynchronous recording.
// Implementations must not block the caller beyond queue admission.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditSink persists a single audit event. Called from dispatcher workers.
type AuditSink interface {
	Write(ctx context.Context, event domain.AuditEvent) error
}
