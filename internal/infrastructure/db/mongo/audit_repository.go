package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/levitica/hr-system/internal/core/domain"
)

const auditCollection = "auth_events"

// AuditRepository appends authentication audit events to MongoDB.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	Actor      string    `bson:"actor"`
	Action     string    `bson:"action"`
	Outcome    string    `bson:"outcome"`
	Detail     string    `bson:"detail,omitempty"`
	RemoteIP   string    `bson:"remote_ip,omitempty"`
	OccurredAt time.Time `bson:"occurred_at"`
}

func (r *AuditRepository) Insert(ctx context.Context, event domain.AuthEvent) error {
	doc := auditDoc{
		Actor:      event.Actor,
		Action:     event.Action,
		Outcome:    event.Outcome,
		Detail:     event.Detail,
		RemoteIP:   event.RemoteIP,
		OccurredAt: event.OccurredAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
