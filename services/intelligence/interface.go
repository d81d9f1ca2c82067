// File: services/intelligence/interface.go
package intelligence

import (
	"context"

	"roomdesk/models"
)

// Service is the contract with the generative backend: three named
// operations, each with a statically declared output schema. Calls may fail
// (network or schema-parse failure); the caller owns recovery, there are no
// retries here.
type Service interface {
	// ExtractBookingDetails parses a free-text booking request into a
	// best-effort structured record with every declared field present.
	ExtractBookingDetails(ctx context.Context, request string) (*models.BookingRecord, error)
	// HandleMissingDetails enumerates missing required fields on the
	// accumulated record and drafts follow-up questions.
	HandleMissingDetails(ctx context.Context, record *models.BookingRecord) (*models.GapReport, error)
	// AssessRequestValidity checks field-level correctness and consistency
	// of a believed-complete record.
	AssessRequestValidity(ctx context.Context, record *models.BookingRecord) (*models.ValidityReport, error)
}

// DefaultAIService implements Service on top of Gemini.
type DefaultAIService struct {
	Gemini *GeminiClient
}

// NewDefaultAIService returns a Service backed by the given Gemini client.
func NewDefaultAIService(gemini *GeminiClient) *DefaultAIService {
	return &DefaultAIService{Gemini: gemini}
}
