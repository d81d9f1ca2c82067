// File: services/intelligence/gaps.go
package intelligence

import (
	"context"
	"fmt"
	"strings"

	"roomdesk/models"
)

const gapsPromptTemplate = `You are a helpful assistant that identifies missing information from a room booking request and formulates follow-up questions to collect the missing details.

Here's the booking request information you have so far:
%s
1. Identify which of the following details are missing or empty: %s.
2. Formulate a list of follow-up questions to ask the user to gather the missing details. Each question should be clear, specific, and phrased as a direct question in the same language the values above are written in.
3. If no details are missing, then isComplete should be true. Otherwise, isComplete should be false.

Return the missing details and follow-up questions in the format specified by the output schema.`

// HandleMissingDetails asks Gemini which required details are still missing
// from the accumulated record and what to ask the user next. The reply is
// normalized locally so the completeness policy holds even when the model
// misbehaves: missing names are filtered to the declared required set,
// isComplete is recomputed from them, and a complete report carries no
// questions.
func (s *DefaultAIService) HandleMissingDetails(ctx context.Context, record *models.BookingRecord) (*models.GapReport, error) {
	prompt := fmt.Sprintf(gapsPromptTemplate,
		recordValueLines(record),
		strings.Join(models.RequiredBookingFields(), ", "),
	)

	var report models.GapReport
	if err := s.Gemini.GenerateJSON(ctx, prompt, gapReportSchema(), &report); err != nil {
		return nil, fmt.Errorf("handle missing details: %w", err)
	}

	normalizeGapReport(&report)
	return &report, nil
}

// normalizeGapReport enforces the completeness policy on a model reply.
func normalizeGapReport(report *models.GapReport) {
	required := make(map[string]bool)
	for _, name := range models.RequiredBookingFields() {
		required[name] = true
	}

	var missing []string
	for _, name := range report.MissingDetails {
		if required[name] {
			missing = append(missing, name)
		}
	}
	report.MissingDetails = missing
	report.IsComplete = len(missing) == 0

	if report.IsComplete {
		report.MissingDetails = []string{}
		report.FollowUpQuestions = []string{}
	}
	if report.FollowUpQuestions == nil {
		report.FollowUpQuestions = []string{}
	}
}

// recordValueLines renders the accumulated record for prompt embedding, one
// "name: value" line per declared field.
func recordValueLines(record *models.BookingRecord) string {
	var sb strings.Builder
	for _, f := range models.BookingFields {
		value := f.Get(record)
		switch v := value.(type) {
		case *int:
			if v != nil {
				fmt.Fprintf(&sb, "%s: %d\n", f.Name, *v)
			} else {
				fmt.Fprintf(&sb, "%s:\n", f.Name)
			}
		default:
			fmt.Fprintf(&sb, "%s: %v\n", f.Name, value)
		}
	}
	return sb.String()
}
