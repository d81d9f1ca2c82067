// File: models/chat.go
package models

import "time"

// Conversation session states.
const (
	SessionStateEmpty        = "empty"
	SessionStateAccumulating = "accumulating"
	SessionStateComplete     = "complete"
	SessionStateIncomplete   = "incomplete"
	SessionStateReviewing    = "reviewing"
	SessionStateSubmitted    = "submitted"
)

// ChatSession carries the slot-filling state of one booking conversation.
// It lives in the session cache under a TTL; nothing here survives except
// what has already been persisted to the bookings collection.
type ChatSession struct {
	SessionID string        `json:"sessionId"`
	OwnerID   string        `json:"ownerId"`
	State     string        `json:"state"`
	Details   BookingRecord `json:"details"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ChatMessageResult is what one processed user message produces: the merged
// details, the gap report, and the assistant's reply.
type ChatMessageResult struct {
	SessionID string         `json:"sessionId"`
	State     string         `json:"state"`
	Details   *BookingRecord `json:"details"`
	GapReport *GapReport     `json:"gapReport"`
	Message   string         `json:"message"`
	Error     string         `json:"error,omitempty"`
}

// ChatSubmitResult is the outcome of a submission attempt. BookingID is set
// if and only if the record was persisted.
type ChatSubmitResult struct {
	SessionID string          `json:"sessionId"`
	State     string          `json:"state"`
	Validity  *ValidityReport `json:"validity"`
	BookingID string          `json:"bookingId,omitempty"`
	Message   string          `json:"message"`
	Error     string          `json:"error,omitempty"`
}
