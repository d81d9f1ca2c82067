package flowRepo

import (
	"context"

	"roomdesk/database"
	"roomdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// FlowTrackingRepository reads approval-flow progress documents. The
// collection is populated by the approval workflows; this service never
// writes to it.
type FlowTrackingRepository interface {
	// GetByOwner fetches all flow tracking documents owned by an email.
	GetByOwner(ctx context.Context, email string) ([]models.FlowTracking, error)
}

type mongoFlowRepo struct {
	coll *mongo.Collection
}

// NewMongoFlowRepo returns a new FlowTrackingRepository instance using MongoDB.
func NewMongoFlowRepo() FlowTrackingRepository {
	return &mongoFlowRepo{
		coll: database.DB().Collection("flowTracking"),
	}
}
