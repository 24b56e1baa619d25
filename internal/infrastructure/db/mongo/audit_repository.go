package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peopledesk/workforce-api/internal/core/domain"
)

const collectionAuditEvents = "audit_events"

// AuditRepository implements ports.AuditSink, persisting lifecycle events to
// the audit_events collection.
type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionAuditEvents)}
}

// Write persists a single audit event.
func (r *AuditRepository) Write(ctx context.Context, event domain.AuditEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"entity":    event.Entity,
		"entity_id": event.EntityID,
		"action":    event.Action,
		"timestamp": event.Timestamp.UTC(),
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}
