// File: services/conversation/accumulator.go
package conversation

import "roomdesk/models"

// MergeBookingDetails folds a newly extracted record into the accumulated
// one, field by field over the declared schema. A non-empty extracted value
// wins; an extracted value (even empty) is adopted only where nothing was
// accumulated before; otherwise the accumulated value is kept. Fields are
// opaque scalars, there is no partial-string merging. After the pass every
// declared field is defined.
func MergeBookingDetails(accumulated, extracted *models.BookingRecord) *models.BookingRecord {
	merged := *accumulated
	for _, f := range models.BookingFields {
		newValue := f.Get(extracted)
		switch {
		case models.FieldValuePresent(newValue):
			f.Set(&merged, newValue)
		case !models.FieldValuePresent(f.Get(accumulated)):
			f.Set(&merged, newValue)
		}
	}
	models.FillFieldDefaults(&merged)
	return &merged
}
