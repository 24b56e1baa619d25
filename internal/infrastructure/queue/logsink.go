package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/peopledesk/workforce-api/internal/core/domain"
)

// LogSink writes audit events to the structured log. Used with the in-memory
// backend, where there is no durable collection to persist the trail to.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

// Write logs a single audit event.
func (s *LogSink) Write(_ context.Context, event domain.AuditEvent) error {
	s.log.Info().
		Str("entity", event.Entity).
		Int("entity_id", event.EntityID).
		Str("action", event.Action).
		Time("timestamp", event.Timestamp).
		Msg("audit event")
	return nil
}
