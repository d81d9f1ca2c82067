package bookingRepo

import (
	"context"

	"roomdesk/database"
	"roomdesk/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines data access for persisted booking requests.
type BookingRepository interface {
	// Create inserts a new booking document and returns its generated ID.
	Create(ctx context.Context, record models.BookingRecord) (string, error)
	// GetByID retrieves a persisted booking by its ID.
	GetByID(ctx context.Context, id string) (*models.PersistedBooking, error)
	// GetByRequestor fetches all bookings requested from a given email.
	GetByRequestor(ctx context.Context, email string) ([]models.PersistedBooking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
