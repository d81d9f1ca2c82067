package notification

import (
	"context"
	"testing"

	"roomdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOutbox struct {
	messages []*models.MailMessage
}

func (s *stubOutbox) Create(ctx context.Context, msg *models.MailMessage) error {
	s.messages = append(s.messages, msg)
	return nil
}

func TestSendBookingConfirmationQueuesMail(t *testing.T) {
	outbox := &stubOutbox{}
	svc, err := NewDefaultMailService(outbox)
	require.NoError(t, err)

	err = svc.SendBookingConfirmation(context.Background(), models.ConfirmationPayload{
		BookingID:   "booking-1",
		TargetEmail: "facilities@example.com",
		CCEmail:     "alice@example.com",
		Room:        "Eng Lab",
		Date:        "2026-09-12",
		Time:        "14:00",
	})
	require.NoError(t, err)

	require.Len(t, outbox.messages, 1)
	msg := outbox.messages[0]
	assert.Equal(t, "facilities@example.com", msg.To)
	assert.Equal(t, "alice@example.com", msg.CC)
	assert.Contains(t, msg.Subject, "Eng Lab")
	assert.Contains(t, msg.Subject, "2026-09-12")
	assert.Contains(t, msg.Body, "booking-1")
	assert.Contains(t, msg.Body, "14:00")
}

func TestSendBookingConfirmationRequiresTarget(t *testing.T) {
	outbox := &stubOutbox{}
	svc, err := NewDefaultMailService(outbox)
	require.NoError(t, err)

	err = svc.SendBookingConfirmation(context.Background(), models.ConfirmationPayload{BookingID: "booking-1"})
	assert.Error(t, err)
	assert.Empty(t, outbox.messages)
}

func TestNewDefaultMailServiceRequiresOutbox(t *testing.T) {
	_, err := NewDefaultMailService(nil)
	assert.Error(t, err)
}
