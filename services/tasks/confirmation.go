package tasks

import (
	"encoding/json"
	"time"

	"roomdesk/models"

	"github.com/hibiken/asynq"
)

const TypeSendConfirmation = "confirmation:send"

// NewConfirmationTask builds the queued task that delivers a booking
// confirmation to the requestor.
func NewConfirmationTask(payload models.ConfirmationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendConfirmation, b)
	opts := []asynq.Option{asynq.MaxRetry(5), asynq.Timeout(30 * time.Second)}

	return task, opts, nil
}
