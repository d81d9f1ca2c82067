package userRepo

import (
	"context"

	"roomdesk/database"
	"roomdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// Update modifies an existing user record.
	Update(ctx context.Context, user *models.User) error
	// Delete removes a user record by its ID.
	Delete(ctx context.Context, id string) error
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a new UserRepository instance using MongoDB.
func NewMongoUserRepo() UserRepository {
	return &mongoUserRepo{
		coll: database.DB().Collection("users"),
	}
}
