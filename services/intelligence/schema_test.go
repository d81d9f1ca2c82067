package intelligence

import (
	"testing"

	"roomdesk/models"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingResponseSchemaCoversEveryField(t *testing.T) {
	schema := bookingResponseSchema()
	require.Equal(t, genai.TypeObject, schema.Type)

	for _, f := range models.BookingFields {
		prop, ok := schema.Properties[f.Name]
		require.True(t, ok, "schema missing property %s", f.Name)
		assert.Equal(t, f.Description, prop.Description)
		if f.Kind == models.FieldNumber {
			assert.Equal(t, genai.TypeInteger, prop.Type, "field %s", f.Name)
		} else {
			assert.Equal(t, genai.TypeString, prop.Type, "field %s", f.Name)
		}
	}
	assert.Len(t, schema.Properties, len(models.BookingFields))

	// Only optional fields may be omitted by the model.
	required := make(map[string]bool)
	for _, name := range schema.Required {
		required[name] = true
	}
	for _, f := range models.BookingFields {
		assert.Equal(t, !f.Optional, required[f.Name], "field %s", f.Name)
	}
}

func TestBookingFieldLinesMatchSchema(t *testing.T) {
	lines := bookingFieldLines()
	for _, f := range models.BookingFields {
		assert.Contains(t, lines, "- "+f.Name+": "+f.Description)
	}
}

func TestRecordValueLines(t *testing.T) {
	n := 20
	rec := &models.BookingRecord{
		Room:               "Eng Lab",
		EstimatedAttendees: &n,
	}

	lines := recordValueLines(rec)
	assert.Contains(t, lines, "room: Eng Lab")
	assert.Contains(t, lines, "estimated_number_of_attendees: 20")
	// Absent fields still appear, with no value.
	assert.Contains(t, lines, "target_email: ")
}

func TestGapReportSchemaShape(t *testing.T) {
	schema := gapReportSchema()
	require.Equal(t, genai.TypeObject, schema.Type)
	assert.ElementsMatch(t, []string{"missingDetails", "followUpQuestions", "isComplete"}, schema.Required)
	assert.Equal(t, genai.TypeBoolean, schema.Properties["isComplete"].Type)
	assert.Equal(t, genai.TypeArray, schema.Properties["missingDetails"].Type)
}

func TestValidityReportSchemaShape(t *testing.T) {
	schema := validityReportSchema()
	require.Equal(t, genai.TypeObject, schema.Type)
	assert.ElementsMatch(t, []string{"isValid", "errors"}, schema.Required)
	assert.Equal(t, genai.TypeBoolean, schema.Properties["isValid"].Type)
	assert.Equal(t, genai.TypeArray, schema.Properties["errors"].Type)
}

func TestNormalizeGapReportCompleteClearsQuestions(t *testing.T) {
	report := &models.GapReport{
		MissingDetails:    []string{"cc_email", "requestorMail"},
		FollowUpQuestions: []string{"What is the CC email?"},
		IsComplete:        false,
	}

	// Neither name gates completeness, so the report normalizes to complete.
	normalizeGapReport(report)

	assert.True(t, report.IsComplete)
	assert.Empty(t, report.MissingDetails)
	assert.Empty(t, report.FollowUpQuestions)
}

func TestNormalizeGapReportFiltersToRequiredSet(t *testing.T) {
	report := &models.GapReport{
		MissingDetails:    []string{"room", "cc_email", "date"},
		FollowUpQuestions: []string{"Which room?", "Which date?"},
		IsComplete:        true,
	}

	normalizeGapReport(report)

	assert.False(t, report.IsComplete)
	assert.Equal(t, []string{"room", "date"}, report.MissingDetails)
	assert.Equal(t, []string{"Which room?", "Which date?"}, report.FollowUpQuestions)
}
