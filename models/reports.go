// File: models/reports.go
package models

// GapReport describes which required booking details are still missing and
// the follow-up questions to elicit them. Produced fresh on every gap
// analysis; never persisted.
type GapReport struct {
	MissingDetails    []string `json:"missingDetails"`
	FollowUpQuestions []string `json:"followUpQuestions"`
	IsComplete        bool     `json:"isComplete"`
}

// ValidityReport is the pass/fail verdict on a believed-complete booking
// record, independent of completeness. Produced fresh on every assessment;
// never persisted.
type ValidityReport struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}
