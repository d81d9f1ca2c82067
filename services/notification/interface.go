package notification

import (
	"context"
	"fmt"

	outboxRepo "roomdesk/database/repository/outbox"
	"roomdesk/models"
)

// MailService composes and queues outbound mail. Delivery itself happens
// outside this process; the external relay drains the mail outbox.
type MailService interface {
	SendBookingConfirmation(ctx context.Context, payload models.ConfirmationPayload) error
}

// DefaultMailService is the production implementation.
type DefaultMailService struct {
	outbox outboxRepo.OutboxRepository
}

func NewDefaultMailService(outbox outboxRepo.OutboxRepository) (*DefaultMailService, error) {
	if outbox == nil {
		return nil, fmt.Errorf("mail service initialization error: outbox repository is nil")
	}
	return &DefaultMailService{outbox: outbox}, nil
}

// SendBookingConfirmation composes the confirmation for the requestor and
// queues it in the outbox.
func (s *DefaultMailService) SendBookingConfirmation(ctx context.Context, payload models.ConfirmationPayload) error {
	if payload.TargetEmail == "" {
		return fmt.Errorf("SendBookingConfirmation: booking %s has no target email", payload.BookingID)
	}

	msg := &models.MailMessage{
		To:      payload.TargetEmail,
		CC:      payload.CCEmail,
		Subject: fmt.Sprintf("Room booking confirmed: %s on %s", payload.Room, payload.Date),
		Body: fmt.Sprintf(
			"Your booking request has been received.\n\nRoom: %s\nDate: %s\nTime: %s\nReference: %s\n\nYou will be notified as the request moves through approval.",
			payload.Room, payload.Date, payload.Time, payload.BookingID,
		),
	}
	if err := s.outbox.Create(ctx, msg); err != nil {
		return fmt.Errorf("SendBookingConfirmation: failed to queue mail for %s: %w", payload.TargetEmail, err)
	}
	return nil
}
