package domain

import "time"

// Audit actions recorded for mutating operations.
const (
	AuditCreated     = "created"
	AuditDeactivated = "deactivated"
	AuditReactivated = "reactivated"
	AuditDeleted     = "deleted"
)

// AuditEvent records a single lifecycle change on a directory record.
type AuditEvent struct {
	Entity    string    `json:"entity" bson:"entity"`
	EntityID  int       `json:"entity_id" bson:"entity_id"`
	Action    string    `json:"action" bson:"action"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}
