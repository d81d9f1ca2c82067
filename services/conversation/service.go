// File: services/conversation/service.go
package conversation

import (
	"context"
	"errors"
	"strings"
	"time"

	"roomdesk/models"
	"roomdesk/services/booking"
	"roomdesk/services/intelligence"
	"roomdesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Assistant messages surfaced to the chat.
const (
	GreetingMessage = "Hello! I'm your room booking assistant. How can I help you find and book a room today? Please describe what you're looking for."
	FallbackMessage = "Sorry, I encountered an error. Could you try rephrasing or providing the details again?"
	SuccessMessage  = "Great! Your booking request has been submitted successfully. You should receive a confirmation via email shortly."
)

// ErrSessionSubmitted is returned when a terminal session is submitted again.
var ErrSessionSubmitted = errors.New("booking session already submitted")

// Service drives one booking conversation: slot-filling across turns,
// review, submission, reset. Every per-session operation takes the caller's
// owner ID; a session belonging to someone else reads as not found.
type Service interface {
	StartSession(ctx context.Context, ownerID string) (*models.ChatSession, string, error)
	ProcessMessage(ctx context.Context, ownerID, sessionID, text string) (*models.ChatMessageResult, error)
	UpdateDetails(ctx context.Context, ownerID, sessionID string, details models.BookingRecord) (*models.ChatSession, error)
	Submit(ctx context.Context, ownerID, sessionID string) (*models.ChatSubmitResult, error)
	ResetSession(ctx context.Context, ownerID, sessionID string) error
	DropOwnerSessions(ctx context.Context, ownerID string) error
}

// DefaultConversationService is the production implementation.
type DefaultConversationService struct {
	AI        intelligence.Service
	Store     Store
	Submitter booking.SubmissionService
}

// StartSession creates an empty session for the owner and returns the
// assistant's greeting.
func (s *DefaultConversationService) StartSession(ctx context.Context, ownerID string) (*models.ChatSession, string, error) {
	session := &models.ChatSession{
		SessionID: uuid.New().String(),
		OwnerID:   ownerID,
		State:     models.SessionStateEmpty,
		UpdatedAt: time.Now(),
	}
	models.FillFieldDefaults(&session.Details)
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, "", err
	}
	return session, GreetingMessage, nil
}

// loadOwnedSession fetches a session and checks it belongs to the caller.
// A foreign session is indistinguishable from a missing one.
func (s *DefaultConversationService) loadOwnedSession(ctx context.Context, ownerID, sessionID string) (*models.ChatSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.OwnerID != ownerID {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// ProcessMessage runs one slot-filling turn: extract the latest utterance,
// merge into the accumulated record, and gap-analyze the result. On an AI
// call failure the accumulated state stays untouched and a fixed apology is
// returned in place of the assistant's reply. A submitted session is
// terminal and takes no further turns.
func (s *DefaultConversationService) ProcessMessage(ctx context.Context, ownerID, sessionID, text string) (*models.ChatMessageResult, error) {
	session, err := s.loadOwnedSession(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == models.SessionStateSubmitted {
		return nil, ErrSessionSubmitted
	}

	extracted, err := s.AI.ExtractBookingDetails(ctx, text)
	if err != nil {
		return s.failedTurn(ctx, session, err), nil
	}

	merged := MergeBookingDetails(&session.Details, extracted)

	gapReport, err := s.AI.HandleMissingDetails(ctx, merged)
	if err != nil {
		return s.failedTurn(ctx, session, err), nil
	}

	session.Details = *merged
	if gapReport.IsComplete {
		session.State = models.SessionStateComplete
	} else {
		session.State = models.SessionStateIncomplete
	}
	session.UpdatedAt = time.Now()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	return &models.ChatMessageResult{
		SessionID: session.SessionID,
		State:     session.State,
		Details:   &session.Details,
		GapReport: gapReport,
		Message:   turnMessage(gapReport),
	}, nil
}

// failedTurn reports an AI failure for one turn without mutating state.
func (s *DefaultConversationService) failedTurn(ctx context.Context, session *models.ChatSession, cause error) *models.ChatMessageResult {
	utils.GetLogger().Error("Chat turn failed",
		zap.String("sessionID", session.SessionID), zap.Error(cause))
	return &models.ChatMessageResult{
		SessionID: session.SessionID,
		State:     session.State,
		Details:   &session.Details,
		GapReport: &models.GapReport{
			MissingDetails:    []string{},
			FollowUpQuestions: []string{FallbackMessage},
			IsComplete:        false,
		},
		Message: FallbackMessage,
		Error:   cause.Error(),
	}
}

func turnMessage(report *models.GapReport) string {
	message := "Thanks for the information. "
	switch {
	case !report.IsComplete && len(report.FollowUpQuestions) > 0:
		message += "I still need a bit more information: " + strings.Join(report.FollowUpQuestions, " ")
	case report.IsComplete:
		message += "I think I have all the details. Please review them below and confirm if everything looks correct."
	default:
		message += "Is there anything else I can help you with regarding this booking?"
	}
	return message
}

// UpdateDetails replaces the accumulated record with the user's edited
// version and moves the session to the review step. A submitted session is
// terminal; edits would reopen the path to a duplicate submission.
func (s *DefaultConversationService) UpdateDetails(ctx context.Context, ownerID, sessionID string, details models.BookingRecord) (*models.ChatSession, error) {
	session, err := s.loadOwnedSession(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == models.SessionStateSubmitted {
		return nil, ErrSessionSubmitted
	}

	models.FillFieldDefaults(&details)
	session.Details = details
	session.State = models.SessionStateReviewing
	session.UpdatedAt = time.Now()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Submit runs the validity assessment and, on a pass verdict, persists the
// booking. A rejected or downgraded verdict returns the session to the
// review step with its values retained; a success message is produced if
// and only if a booking ID came back.
func (s *DefaultConversationService) Submit(ctx context.Context, ownerID, sessionID string) (*models.ChatSubmitResult, error) {
	session, err := s.loadOwnedSession(ctx, ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State == models.SessionStateSubmitted {
		return nil, ErrSessionSubmitted
	}

	report, bookingID, err := s.Submitter.Submit(ctx, session.Details)
	if err != nil {
		utils.GetLogger().Error("Submission failed",
			zap.String("sessionID", session.SessionID), zap.Error(err))
		return &models.ChatSubmitResult{
			SessionID: session.SessionID,
			State:     session.State,
			Validity:  &models.ValidityReport{IsValid: false, Errors: []string{FallbackMessage}},
			Message:   FallbackMessage,
			Error:     err.Error(),
		}, nil
	}

	if bookingID != "" {
		session.State = models.SessionStateSubmitted
	} else {
		session.State = models.SessionStateReviewing
	}
	session.UpdatedAt = time.Now()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	result := &models.ChatSubmitResult{
		SessionID: session.SessionID,
		State:     session.State,
		Validity:  report,
		BookingID: bookingID,
	}
	if bookingID != "" {
		result.Message = SuccessMessage
	} else {
		result.Message = "There are some issues with your request: " +
			strings.Join(report.Errors, ". ") + ". Please correct them and try again."
	}
	return result, nil
}

// ResetSession discards a session's accumulated state. Reset is the one
// user-initiated exit from a submitted session.
func (s *DefaultConversationService) ResetSession(ctx context.Context, ownerID, sessionID string) error {
	if _, err := s.loadOwnedSession(ctx, ownerID, sessionID); err != nil {
		return err
	}
	return s.Store.Delete(ctx, sessionID)
}

// DropOwnerSessions discards every live session of an owner. Wired to the
// identity notifier so sign-out clears conversation state.
func (s *DefaultConversationService) DropOwnerSessions(ctx context.Context, ownerID string) error {
	return s.Store.DropOwner(ctx, ownerID)
}
