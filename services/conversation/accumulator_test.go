package conversation

import (
	"testing"

	"roomdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestMergeKeepsKnownValueOverEmptyExtraction(t *testing.T) {
	accumulated := &models.BookingRecord{
		Room: "Eng Lab",
		Date: "April 1, 2025",
	}
	extracted := &models.BookingRecord{
		Room:    "",
		Purpose: "Weekly AI workshop",
	}

	merged := MergeBookingDetails(accumulated, extracted)

	assert.Equal(t, "Eng Lab", merged.Room)
	assert.Equal(t, "April 1, 2025", merged.Date)
	assert.Equal(t, "Weekly AI workshop", merged.Purpose)
}

func TestMergeNewNonEmptyValueWins(t *testing.T) {
	accumulated := &models.BookingRecord{Room: "Eng Lab"}
	extracted := &models.BookingRecord{Room: "Library Annex"}

	merged := MergeBookingDetails(accumulated, extracted)

	assert.Equal(t, "Library Annex", merged.Room)
}

func TestMergeAttendeeCountPresentWins(t *testing.T) {
	accumulated := &models.BookingRecord{EstimatedAttendees: intPtr(20)}

	// A number is opaque; zero still counts as an extracted value.
	merged := MergeBookingDetails(accumulated, &models.BookingRecord{EstimatedAttendees: intPtr(0)})
	require.NotNil(t, merged.EstimatedAttendees)
	assert.Equal(t, 0, *merged.EstimatedAttendees)

	// An absent number never overwrites a known count.
	merged = MergeBookingDetails(accumulated, &models.BookingRecord{})
	require.NotNil(t, merged.EstimatedAttendees)
	assert.Equal(t, 20, *merged.EstimatedAttendees)
}

func TestMergeEveryFieldDefinedAfterwards(t *testing.T) {
	merged := MergeBookingDetails(&models.BookingRecord{}, &models.BookingRecord{})

	for _, f := range models.BookingFields {
		assert.True(t, f.Get(merged) != nil, "field %s should be defined", f.Name)
	}
	require.NotNil(t, merged.EstimatedAttendees)
	assert.Equal(t, 0, *merged.EstimatedAttendees)
}

func TestMergeAccumulatesAcrossTurns(t *testing.T) {
	first := &models.BookingRecord{
		Room:                "Eng Lab",
		Date:                "tomorrow",
		Time:                "2-4pm",
		Purpose:             "workshop",
		EstimatedAttendees:  intPtr(20),
		SpecialRequirements: "projector",
		TargetEmail:         "alice@x.com",
	}
	merged := MergeBookingDetails(&models.BookingRecord{}, first)

	second := &models.BookingRecord{
		RequestorMail: "bob@uni.edu",
		RequestorMSSV: "21520001",
		RequestorName: "Bob",
	}
	merged = MergeBookingDetails(merged, second)

	assert.Equal(t, "Eng Lab", merged.Room)
	assert.Equal(t, "alice@x.com", merged.TargetEmail)
	assert.Equal(t, "bob@uni.edu", merged.RequestorMail)
	assert.Equal(t, "21520001", merged.RequestorMSSV)
	assert.Equal(t, "Bob", merged.RequestorName)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	accumulated := &models.BookingRecord{Room: "Eng Lab"}
	extracted := &models.BookingRecord{Room: "Library Annex"}

	_ = MergeBookingDetails(accumulated, extracted)

	assert.Equal(t, "Eng Lab", accumulated.Room)
	assert.Equal(t, "Library Annex", extracted.Room)
}
