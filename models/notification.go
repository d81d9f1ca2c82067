// File: models/notification.go
package models

import "time"

// ConfirmationPayload is the queued task payload for delivering a booking
// confirmation after successful persistence.
type ConfirmationPayload struct {
	BookingID   string `json:"bookingId"`
	TargetEmail string `json:"targetEmail"`
	CCEmail     string `json:"ccEmail,omitempty"`
	Room        string `json:"room"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// Mail outbox statuses.
const (
	MailStatusQueued = "queued"
)

// MailMessage is one outbound email in the mailOutbox collection. The
// service only composes and queues; an external relay drains the outbox.
type MailMessage struct {
	ID       string    `bson:"id" json:"id"`
	To       string    `bson:"to" json:"to"`
	CC       string    `bson:"cc,omitempty" json:"cc,omitempty"`
	Subject  string    `bson:"subject" json:"subject"`
	Body     string    `bson:"body" json:"body"`
	Status   string    `bson:"status" json:"status"`
	QueuedAt time.Time `bson:"queuedAt" json:"queuedAt"`
}
