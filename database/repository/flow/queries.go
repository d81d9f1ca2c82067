package flowRepo

import (
	"context"

	"roomdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetByOwner fetches all flow tracking documents for the given owner email.
func (r *mongoFlowRepo) GetByOwner(ctx context.Context, email string) ([]models.FlowTracking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"owner": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var flows []models.FlowTracking
	if err := cursor.All(ctx, &flows); err != nil {
		return nil, err
	}
	return flows, nil
}
