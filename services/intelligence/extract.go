// File: services/intelligence/extract.go
package intelligence

import (
	"context"
	"fmt"

	"roomdesk/models"
)

const extractPromptTemplate = `You are a room booking assistant. Please extract the following information from the user's request:

%s
  Request: %s

  Please provide the extracted information in JSON format.
  If any information is missing, make a reasonable guess or leave the field as an empty string.
`

// ExtractBookingDetails sends the user's free-text request to Gemini with
// the booking response schema and returns the structured guess. Every
// declared field is defined on the returned record.
func (s *DefaultAIService) ExtractBookingDetails(ctx context.Context, request string) (*models.BookingRecord, error) {
	prompt := fmt.Sprintf(extractPromptTemplate, bookingFieldLines(), request)

	var record models.BookingRecord
	if err := s.Gemini.GenerateJSON(ctx, prompt, bookingResponseSchema(), &record); err != nil {
		return nil, fmt.Errorf("extract booking details: %w", err)
	}

	models.FillFieldDefaults(&record)
	return &record, nil
}
