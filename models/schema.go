// File: models/schema.go
package models

// FieldKind is the semantic type of a booking field.
type FieldKind string

const (
	FieldText   FieldKind = "text"
	FieldNumber FieldKind = "number"
)

// BookingField describes one declared field of a BookingRecord: its wire
// name, the description embedded in AI prompts, whether it may be omitted,
// and whether it gates completeness. The accessors let schema-driven code
// (merge, defaults, prompt construction) treat the typed record uniformly.
type BookingField struct {
	Name        string
	Description string
	Kind        FieldKind
	Optional    bool
	// Required marks the field as part of the completeness check. cc_email
	// and the requestor fields are collected but never gate completeness.
	Required bool

	Get func(*BookingRecord) any
	Set func(*BookingRecord, any)
}

// BookingFields is the single source of truth for the booking schema. The
// prompt text, the AI response schema, the merge pass, and the completeness
// policy are all derived from this list so the asked-for shape and the
// accepted shape cannot drift apart.
var BookingFields = []BookingField{
	{
		Name:        "room",
		Description: "The room requested for booking.",
		Kind:        FieldText,
		Required:    true,
		Get:         func(r *BookingRecord) any { return r.Room },
		Set:         func(r *BookingRecord, v any) { r.Room, _ = v.(string) },
	},
	{
		Name:        "date",
		Description: "The date for the booking (e.g., April 1, 2025).",
		Kind:        FieldText,
		Required:    true,
		Get:         func(r *BookingRecord) any { return r.Date },
		Set:         func(r *BookingRecord, v any) { r.Date, _ = v.(string) },
	},
	{
		Name:        "time",
		Description: "The time slot for the booking (e.g., 10:30 AM - 12:30 PM (GMT+7)).",
		Kind:        FieldText,
		Required:    true,
		Get:         func(r *BookingRecord) any { return r.Time },
		Set:         func(r *BookingRecord, v any) { r.Time, _ = v.(string) },
	},
	{
		Name:        "purpose",
		Description: "The purpose of the booking (e.g., Weekly AI workshop).",
		Kind:        FieldText,
		Required:    true,
		Get:         func(r *BookingRecord) any { return r.Purpose },
		Set:         func(r *BookingRecord, v any) { r.Purpose, _ = v.(string) },
	},
	{
		Name:        "estimated_number_of_attendees",
		Description: "The estimated number of attendees (e.g., 20).",
		Kind:        FieldNumber,
		Required:    true,
		Get:         func(r *BookingRecord) any { return r.EstimatedAttendees },
		Set:         func(r *BookingRecord, v any) { r.EstimatedAttendees, _ = v.(*int) },
	},
	{
		Name:        "special_requirements",
		Description: "Any special requirements for the booking (e.g., Projector, whiteboard, and access to power outlets).",
		Kind:        FieldText,
		Required:    true,
		Get:         func(r *BookingRecord) any { return r.SpecialRequirements },
		Set:         func(r *BookingRecord, v any) { r.SpecialRequirements, _ = v.(string) },
	},
	{
		Name:        "target_email",
		Description: "The target email to which the booking confirmation will be sent.",
		Kind:        FieldText,
		Required:    true,
		Get:         func(r *BookingRecord) any { return r.TargetEmail },
		Set:         func(r *BookingRecord, v any) { r.TargetEmail, _ = v.(string) },
	},
	{
		Name:        "cc_email",
		Description: "The CC email address for the booking confirmation.",
		Kind:        FieldText,
		Optional:    true,
		Get:         func(r *BookingRecord) any { return r.CCEmail },
		Set:         func(r *BookingRecord, v any) { r.CCEmail, _ = v.(string) },
	},
	{
		Name:        "requestorMail",
		Description: "The email of the person requesting.",
		Kind:        FieldText,
		Get:         func(r *BookingRecord) any { return r.RequestorMail },
		Set:         func(r *BookingRecord, v any) { r.RequestorMail, _ = v.(string) },
	},
	{
		Name:        "requestorMSSV",
		Description: "The student ID (MSSV) of the person requesting.",
		Kind:        FieldText,
		Get:         func(r *BookingRecord) any { return r.RequestorMSSV },
		Set:         func(r *BookingRecord, v any) { r.RequestorMSSV, _ = v.(string) },
	},
	{
		Name:        "requestorRole",
		Description: "The role of the person requesting.",
		Kind:        FieldText,
		Get:         func(r *BookingRecord) any { return r.RequestorRole },
		Set:         func(r *BookingRecord, v any) { r.RequestorRole, _ = v.(string) },
	},
	{
		Name:        "requestorDept",
		Description: "The department of the person requesting.",
		Kind:        FieldText,
		Get:         func(r *BookingRecord) any { return r.RequestorDept },
		Set:         func(r *BookingRecord, v any) { r.RequestorDept, _ = v.(string) },
	},
	{
		Name:        "CLB",
		Description: "The club or organization making the request.",
		Kind:        FieldText,
		Get:         func(r *BookingRecord) any { return r.CLB },
		Set:         func(r *BookingRecord, v any) { r.CLB, _ = v.(string) },
	},
	{
		Name:        "requestorName",
		Description: "The name of the person requesting.",
		Kind:        FieldText,
		Get:         func(r *BookingRecord) any { return r.RequestorName },
		Set:         func(r *BookingRecord, v any) { r.RequestorName, _ = v.(string) },
	},
}

// RequiredBookingFields returns the names of the fields that gate
// completeness, in schema order.
func RequiredBookingFields() []string {
	var names []string
	for _, f := range BookingFields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

// FieldValuePresent reports whether a field value counts as known: a
// non-empty string, or a non-nil number.
func FieldValuePresent(v any) bool {
	switch t := v.(type) {
	case string:
		return t != ""
	case *int:
		return t != nil
	default:
		return v != nil
	}
}

// FillFieldDefaults sets every still-absent field to its declared default
// (empty string for text, zero for numbers) so all fields are defined.
func FillFieldDefaults(rec *BookingRecord) {
	for _, f := range BookingFields {
		if FieldValuePresent(f.Get(rec)) {
			continue
		}
		switch f.Kind {
		case FieldNumber:
			zero := 0
			f.Set(rec, &zero)
		default:
			f.Set(rec, "")
		}
	}
}
