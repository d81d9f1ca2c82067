package bookingRepo

import (
	"context"
	"errors"
	"time"

	"roomdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new booking document with a server-side creation
// timestamp and an initial "pending" status, and returns its ID.
func (r *mongoBookingRepo) Create(ctx context.Context, record models.BookingRecord) (string, error) {
	doc := models.PersistedBooking{
		ID:            uuid.New().String(),
		BookingRecord: record,
		CreatedAt:     time.Now(),
		Status:        models.BookingStatusPending,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return doc.ID, nil
}

// GetByID returns a persisted booking by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.PersistedBooking, error) {
	var booking models.PersistedBooking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("booking not found")
		}
		return nil, err
	}
	return &booking, nil
}

// GetByRequestor fetches all bookings requested from a specific email,
// newest first.
func (r *mongoBookingRepo) GetByRequestor(ctx context.Context, email string) ([]models.PersistedBooking, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"requestorMail": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.PersistedBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
