package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sokol-matija/medical-system-gateway/internal/core/domain"
)

const auditCollection = "audit_events"

// AuditRepository persists audit events to MongoDB. Entries are append-only;
// nothing in the gateway ever updates or deletes them.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDocument struct {
	Actor     string `bson:"actor"`
	Role      string `bson:"role,omitempty"`
	Action    string `bson:"action"`
	Resource  string `bson:"resource,omitempty"`
	RequestID string `bson:"request_id,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	doc := auditDocument{
		Actor:     event.Actor,
		Role:      event.Role,
		Action:    event.Action,
		Resource:  event.Resource,
		RequestID: event.RequestID,
		Timestamp: event.Timestamp.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
