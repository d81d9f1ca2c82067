// File: services/intelligence/schema.go
package intelligence

import (
	"fmt"
	"strings"

	"roomdesk/models"

	genai "github.com/google/generative-ai-go/genai"
)

// bookingResponseSchema builds the Gemini response schema from the declared
// booking fields, so the accepted shape is derived from the same list as the
// prompt text.
func bookingResponseSchema() *genai.Schema {
	properties := make(map[string]*genai.Schema, len(models.BookingFields))
	var required []string
	for _, f := range models.BookingFields {
		properties[f.Name] = &genai.Schema{
			Type:        fieldType(f.Kind),
			Description: f.Description,
		}
		if !f.Optional {
			required = append(required, f.Name)
		}
	}
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: properties,
		Required:   required,
	}
}

func fieldType(kind models.FieldKind) genai.Type {
	if kind == models.FieldNumber {
		return genai.TypeInteger
	}
	return genai.TypeString
}

// bookingFieldLines renders the schema as the bullet list embedded in
// prompts, one line per declared field.
func bookingFieldLines() string {
	var sb strings.Builder
	for _, f := range models.BookingFields {
		fmt.Fprintf(&sb, "  - %s: %s\n", f.Name, f.Description)
	}
	return sb.String()
}

// gapReportSchema is the declared output shape of the gap analysis call.
func gapReportSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"missingDetails": {
				Type:        genai.TypeArray,
				Description: "The names of the required details still missing from the booking request.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"followUpQuestions": {
				Type:        genai.TypeArray,
				Description: "Follow-up questions to ask the user to gather the missing details.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
			"isComplete": {
				Type:        genai.TypeBoolean,
				Description: "Whether all required details are present.",
			},
		},
		Required: []string{"missingDetails", "followUpQuestions", "isComplete"},
	}
}

// validityReportSchema is the declared output shape of the validity call.
func validityReportSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"isValid": {
				Type:        genai.TypeBoolean,
				Description: "Whether the booking request is valid and internally consistent.",
			},
			"errors": {
				Type:        genai.TypeArray,
				Description: "Human-readable problems found in the booking request.",
				Items:       &genai.Schema{Type: genai.TypeString},
			},
		},
		Required: []string{"isValid", "errors"},
	}
}
