// File: models/booking.go
package models

import "time"

// BookingRecord holds the structured booking details accumulated across a
// conversation. Field names follow the wire contract shared with the AI
// flows and the bookings collection.
type BookingRecord struct {
	Room                string `bson:"room" json:"room"`
	Date                string `bson:"date" json:"date"`
	Time                string `bson:"time" json:"time"`
	Purpose             string `bson:"purpose" json:"purpose"`
	EstimatedAttendees  *int   `bson:"estimated_number_of_attendees" json:"estimated_number_of_attendees"`
	SpecialRequirements string `bson:"special_requirements" json:"special_requirements"`
	TargetEmail         string `bson:"target_email" json:"target_email"`
	CCEmail             string `bson:"cc_email" json:"cc_email"`
	RequestorMail       string `bson:"requestorMail" json:"requestorMail"`
	RequestorMSSV       string `bson:"requestorMSSV" json:"requestorMSSV"`
	RequestorRole       string `bson:"requestorRole" json:"requestorRole"`
	RequestorDept       string `bson:"requestorDept" json:"requestorDept"`
	CLB                 string `bson:"CLB" json:"CLB"`
	RequestorName       string `bson:"requestorName" json:"requestorName"`
}

// PersistedBooking is a BookingRecord as stored in the bookings collection.
// Status transitions after creation are driven by separate approval workflows,
// never by this pipeline.
type PersistedBooking struct {
	ID            string `bson:"id" json:"id"`
	BookingRecord `bson:",inline"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	Status        string    `bson:"status" json:"status"`
}

// Booking statuses.
const (
	BookingStatusPending  = "pending"
	BookingStatusApproved = "approved"
	BookingStatusRejected = "rejected"
)
