// File: services/booking/interface.go
package booking

import (
	"context"

	"roomdesk/models"
)

// SubmissionService gates persistence behind the validity assessment.
type SubmissionService interface {
	// Submit assesses the record and, on a pass verdict, persists it.
	// The returned booking ID is non-empty if and only if a document was
	// created. A storage failure downgrades the verdict to invalid with an
	// appended error instead of surfacing as a call error; only an AI call
	// failure is returned as err.
	Submit(ctx context.Context, record models.BookingRecord) (*models.ValidityReport, string, error)
}
