// File: services/booking/submit.go
package booking

import (
	"context"

	bookingRepo "roomdesk/database/repository/booking"
	"roomdesk/models"
	"roomdesk/services/intelligence"
	"roomdesk/services/tasks"
	"roomdesk/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// StorageFailureMessage is appended to a downgraded verdict when the store
// rejects the write.
const StorageFailureMessage = "Failed to save booking details. Please try again later."

// ConfirmationQueue enqueues the post-persistence confirmation task.
// *asynq.Client satisfies it.
type ConfirmationQueue interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultSubmissionService is the production SubmissionService.
type DefaultSubmissionService struct {
	AI    intelligence.Service
	Repo  bookingRepo.BookingRepository
	Queue ConfirmationQueue
}

// Submit runs the validity assessment and persists the record on a pass
// verdict. No partial persistence: if the store rejects the write, the
// verdict is downgraded to invalid so the caller re-surfaces the edit form,
// and no booking ID is returned.
func (s *DefaultSubmissionService) Submit(ctx context.Context, record models.BookingRecord) (*models.ValidityReport, string, error) {
	report, err := s.AI.AssessRequestValidity(ctx, &record)
	if err != nil {
		return nil, "", err
	}

	if !report.IsValid {
		return report, "", nil
	}

	bookingID, err := s.Repo.Create(ctx, record)
	if err != nil {
		utils.GetLogger().Error("Failed to save booking", zap.Error(err))
		report.IsValid = false
		report.Errors = append(report.Errors, StorageFailureMessage)
		return report, "", nil
	}

	s.queueConfirmation(bookingID, record)
	return report, bookingID, nil
}

// queueConfirmation enqueues the confirmation delivery for a persisted
// booking. Delivery is best-effort: a full queue never unwinds a booking
// that is already stored.
func (s *DefaultSubmissionService) queueConfirmation(bookingID string, record models.BookingRecord) {
	if s.Queue == nil {
		return
	}
	task, opts, err := tasks.NewConfirmationTask(models.ConfirmationPayload{
		BookingID:   bookingID,
		TargetEmail: record.TargetEmail,
		CCEmail:     record.CCEmail,
		Room:        record.Room,
		Date:        record.Date,
		Time:        record.Time,
	})
	if err != nil {
		utils.GetLogger().Warn("Failed to build confirmation task",
			zap.String("bookingID", bookingID), zap.Error(err))
		return
	}
	if _, err := s.Queue.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Warn("Failed to enqueue confirmation task",
			zap.String("bookingID", bookingID), zap.Error(err))
	}
}
