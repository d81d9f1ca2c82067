package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredBookingFields(t *testing.T) {
	assert.Equal(t, []string{
		"room",
		"date",
		"time",
		"purpose",
		"estimated_number_of_attendees",
		"special_requirements",
		"target_email",
	}, RequiredBookingFields())
}

func TestBookingFieldAccessorsRoundTrip(t *testing.T) {
	var rec BookingRecord
	for _, f := range BookingFields {
		switch f.Kind {
		case FieldNumber:
			n := 7
			f.Set(&rec, &n)
			got, ok := f.Get(&rec).(*int)
			require.True(t, ok, "field %s", f.Name)
			require.NotNil(t, got, "field %s", f.Name)
			assert.Equal(t, 7, *got, "field %s", f.Name)
		default:
			f.Set(&rec, "value-"+f.Name)
			assert.Equal(t, "value-"+f.Name, f.Get(&rec), "field %s", f.Name)
		}
	}
}

func TestFieldValuePresent(t *testing.T) {
	assert.False(t, FieldValuePresent(""))
	assert.True(t, FieldValuePresent("x"))
	assert.False(t, FieldValuePresent((*int)(nil)))
	n := 0
	assert.True(t, FieldValuePresent(&n))
	assert.False(t, FieldValuePresent(nil))
}

func TestFillFieldDefaults(t *testing.T) {
	var rec BookingRecord
	FillFieldDefaults(&rec)

	for _, f := range BookingFields {
		assert.NotNil(t, f.Get(&rec), "field %s", f.Name)
	}
	require.NotNil(t, rec.EstimatedAttendees)
	assert.Equal(t, 0, *rec.EstimatedAttendees)

	// Known values stay untouched.
	rec.Room = "Eng Lab"
	n := 12
	rec.EstimatedAttendees = &n
	FillFieldDefaults(&rec)
	assert.Equal(t, "Eng Lab", rec.Room)
	assert.Equal(t, 12, *rec.EstimatedAttendees)
}
