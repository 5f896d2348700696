package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/learnhub/course-portal/internal/core/domain"
)

const auditCollection = "auth_events"

type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	UserID   string `bson:"user_id"`
	Email    string `bson:"email"`
	Role     string `bson:"role"`
	Provider string `bson:"provider"`
	Kind     string `bson:"kind"`
	At       int64  `bson:"at"`
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	doc := mongoAuthEvent{
		UserID:   event.UserID,
		Email:    event.Email,
		Role:     event.Role,
		Provider: event.Provider,
		Kind:     string(event.Kind),
		At:       event.At.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]domain.AuthEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find auth events: %w", err)
	}
	defer cur.Close(ctx)

	var events []domain.AuthEvent
	for cur.Next(ctx) {
		var me mongoAuthEvent
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode auth event: %w", err)
		}
		events = append(events, domain.AuthEvent{
			UserID:   me.UserID,
			Email:    me.Email,
			Role:     me.Role,
			Provider: me.Provider,
			Kind:     domain.AuthEventKind(me.Kind),
			At:       unixToTime(me.At),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate auth events: %w", err)
	}
	return events, nil
}
