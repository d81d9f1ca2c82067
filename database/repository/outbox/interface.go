package outboxRepo

import (
	"context"
	"time"

	"roomdesk/database"
	"roomdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// OutboxRepository queues outbound mail documents for the external relay.
type OutboxRepository interface {
	// Create inserts a new outbound message in the queued state.
	Create(ctx context.Context, msg *models.MailMessage) error
}

type mongoOutboxRepo struct {
	coll *mongo.Collection
}

// NewMongoOutboxRepo returns a new OutboxRepository instance using MongoDB.
func NewMongoOutboxRepo() OutboxRepository {
	return &mongoOutboxRepo{
		coll: database.DB().Collection("mailOutbox"),
	}
}

// Create inserts a new outbound message in the queued state.
func (r *mongoOutboxRepo) Create(ctx context.Context, msg *models.MailMessage) error {
	msg.ID = uuid.New().String()
	msg.Status = models.MailStatusQueued
	msg.QueuedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, msg)
	return err
}
