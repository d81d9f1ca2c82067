// File: services/intelligence/validity.go
package intelligence

import (
	"context"
	"fmt"

	"roomdesk/models"
)

const validityPromptTemplate = `You are a room booking validator. Review the following booking request and assess whether it is valid and ready for submission:

%s
Check for business-rule problems such as:
  - email fields that are not plausible email addresses,
  - an estimated number of attendees that is negative or implausible,
  - a date and time that are internally inconsistent or clearly in the past,
  - values that contradict each other.

If the request is valid, set isValid to true and errors to an empty list. Otherwise set isValid to false and list each problem as a short human-readable message in the same language the values above are written in.

Return the verdict in the format specified by the output schema.`

// AssessRequestValidity asks Gemini for a pass/fail verdict on a
// believed-complete record. Validity is independent of completeness; a
// complete record can still be invalid. A failed verdict always carries at
// least one error message.
func (s *DefaultAIService) AssessRequestValidity(ctx context.Context, record *models.BookingRecord) (*models.ValidityReport, error) {
	prompt := fmt.Sprintf(validityPromptTemplate, recordValueLines(record))

	var report models.ValidityReport
	if err := s.Gemini.GenerateJSON(ctx, prompt, validityReportSchema(), &report); err != nil {
		return nil, fmt.Errorf("assess request validity: %w", err)
	}

	if report.IsValid {
		report.Errors = []string{}
	} else if len(report.Errors) == 0 {
		report.Errors = []string{"The booking request was judged invalid."}
	}
	return &report, nil
}
