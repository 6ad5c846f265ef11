// Package warehouse provides the warehouse resource: a physical storage
// location with a named contact person.
package warehouse

import "regexp"

// Warehouse represents a storage location for inventory items.
type Warehouse struct {
	ID              int64  `db:"id" json:"id"`
	WarehouseName   string `db:"warehouse_name" json:"warehouse_name"`
	Address         string `db:"address" json:"address"`
	City            string `db:"city" json:"city"`
	Country         string `db:"country" json:"country"`
	ContactName     string `db:"contact_name" json:"contact_name"`
	ContactPosition string `db:"contact_position" json:"contact_position"`
	ContactPhone    string `db:"contact_phone" json:"contact_phone"`
	ContactEmail    string `db:"contact_email" json:"contact_email"`
}

// ItemSummary is the projection of an inventory item returned when
// listing the items stored in a warehouse.
type ItemSummary struct {
	ID       int64  `db:"id" json:"id"`
	ItemName string `db:"item_name" json:"item_name"`
	Category string `db:"category" json:"category"`
	Status   string `db:"status" json:"status"`
	Quantity int64  `db:"quantity" json:"quantity"`
}

// FieldError describes a single field validation violation.
type FieldError struct {
	Field   string
	Message string
}

// Format patterns per field. Names and addresses allow common punctuation;
// city, country and contact names are letters only; phone is a ~10 digit
// number with an optional country code.
var (
	nameRe     = regexp.MustCompile(`^[A-Za-z0-9 \-',.]+$`)
	addressRe  = regexp.MustCompile(`^[A-Za-z0-9 \-',.#/()]+$`)
	placeRe    = regexp.MustCompile(`^[A-Za-z \-']+$`)
	positionRe = regexp.MustCompile(`^[A-Za-z0-9 \-'./]+$`)
	phoneRe    = regexp.MustCompile(`^\+?\d{1,3}[-. ]?\(?\d{3}\)?[-. ]?\d{3}[-. ]?\d{4}$`)
	emailRe    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// MsgRequiredFields is returned when any required field is missing.
const MsgRequiredFields = "Please fill in all required fields"

// formatRule couples a field with its pattern and violation message.
// Order matters: the first violated rule wins.
type formatRule struct {
	field   string
	value   func(*Warehouse) string
	pattern *regexp.Regexp
	message string
}

func formatRules(w *Warehouse) []formatRule {
	value := func(s *string) func(*Warehouse) string {
		return func(*Warehouse) string { return *s }
	}
	return []formatRule{
		{"warehouse_name", value(&w.WarehouseName), nameRe, "Warehouse name contains invalid characters"},
		{"address", value(&w.Address), addressRe, "Address contains invalid characters"},
		{"city", value(&w.City), placeRe, "City contains invalid characters"},
		{"country", value(&w.Country), placeRe, "Country contains invalid characters"},
		{"contact_name", value(&w.ContactName), placeRe, "Contact name contains invalid characters"},
		{"contact_position", value(&w.ContactPosition), positionRe, "Contact position contains invalid characters"},
		{"contact_phone", value(&w.ContactPhone), phoneRe, "Contact phone must be a valid phone number"},
		{"contact_email", value(&w.ContactEmail), emailRe, "Contact email must be a valid email address"},
	}
}

// ValidateFields checks the warehouse business fields and returns the
// violations in evaluation order. Presence is checked across all fields
// first; format checks run field by field afterwards. Create and update
// share this single routine.
func ValidateFields(w *Warehouse) []FieldError {
	rules := formatRules(w)

	for _, r := range rules {
		if r.value(w) == "" {
			return []FieldError{{Field: r.field, Message: MsgRequiredFields}}
		}
	}

	var violations []FieldError
	for _, r := range rules {
		if !r.pattern.MatchString(r.value(w)) {
			violations = append(violations, FieldError{Field: r.field, Message: r.message})
		}
	}
	return violations
}
