package warehouse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWarehouse() *Warehouse {
	return &Warehouse{
		WarehouseName:   "Manhattan",
		Address:         "503 Broadway",
		City:            "New York",
		Country:         "USA",
		ContactName:     "Parmin Aujla",
		ContactPosition: "Warehouse Manager",
		ContactPhone:    "+1 (646) 123-1234",
		ContactEmail:    "paujla@instock.com",
	}
}

func TestValidateFields_Valid(t *testing.T) {
	assert.Empty(t, ValidateFields(validWarehouse()))
}

func TestValidateFields_MissingField(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Warehouse)
		field  string
	}{
		{"empty name", func(w *Warehouse) { w.WarehouseName = "" }, "warehouse_name"},
		{"empty address", func(w *Warehouse) { w.Address = "" }, "address"},
		{"empty city", func(w *Warehouse) { w.City = "" }, "city"},
		{"empty country", func(w *Warehouse) { w.Country = "" }, "country"},
		{"empty contact name", func(w *Warehouse) { w.ContactName = "" }, "contact_name"},
		{"empty contact position", func(w *Warehouse) { w.ContactPosition = "" }, "contact_position"},
		{"empty phone", func(w *Warehouse) { w.ContactPhone = "" }, "contact_phone"},
		{"empty email", func(w *Warehouse) { w.ContactEmail = "" }, "contact_email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := validWarehouse()
			tt.mutate(w)

			violations := ValidateFields(w)
			require.Len(t, violations, 1)
			assert.Equal(t, tt.field, violations[0].Field)
			assert.Equal(t, MsgRequiredFields, violations[0].Message)
		})
	}
}

func TestValidateFields_Formats(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Warehouse)
		field   string
		message string
	}{
		{
			"name with forbidden symbol",
			func(w *Warehouse) { w.WarehouseName = "Manhattan#2" },
			"warehouse_name", "Warehouse name contains invalid characters",
		},
		{
			"address allows hash and slash",
			func(w *Warehouse) { w.Address = "503 Broadway #2/B (rear)" },
			"", "",
		},
		{
			"address with forbidden symbol",
			func(w *Warehouse) { w.Address = "503 Broadway <b>" },
			"address", "Address contains invalid characters",
		},
		{
			"city with digits",
			func(w *Warehouse) { w.City = "District 9" },
			"city", "City contains invalid characters",
		},
		{
			"country with punctuation",
			func(w *Warehouse) { w.Country = "U.S.A." },
			"country", "Country contains invalid characters",
		},
		{
			"contact name with apostrophe is fine",
			func(w *Warehouse) { w.ContactName = "Shay O'Neill" },
			"", "",
		},
		{
			"contact position with slash is fine",
			func(w *Warehouse) { w.ContactPosition = "Shipping/Receiving Lead" },
			"", "",
		},
		{
			"phone without enough digits",
			func(w *Warehouse) { w.ContactPhone = "12345" },
			"contact_phone", "Contact phone must be a valid phone number",
		},
		{
			"phone with plain digits is fine",
			func(w *Warehouse) { w.ContactPhone = "16461231234" },
			"", "",
		},
		{
			"email without domain dot",
			func(w *Warehouse) { w.ContactEmail = "paujla@instock" },
			"contact_email", "Contact email must be a valid email address",
		},
		{
			"email without at sign",
			func(w *Warehouse) { w.ContactEmail = "not-an-email" },
			"contact_email", "Contact email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := validWarehouse()
			tt.mutate(w)

			violations := ValidateFields(w)
			if tt.field == "" {
				assert.Empty(t, violations)
				return
			}
			require.NotEmpty(t, violations)
			assert.Equal(t, tt.field, violations[0].Field)
			assert.Equal(t, tt.message, violations[0].Message)
		})
	}
}

func TestValidateFields_FirstViolationWins(t *testing.T) {
	w := validWarehouse()
	w.Address = "503 Broadway <b>"
	w.ContactEmail = "not-an-email"

	violations := ValidateFields(w)
	require.Len(t, violations, 2)
	// Address precedes email in the fixed evaluation order.
	assert.Equal(t, "address", violations[0].Field)
	assert.Equal(t, "contact_email", violations[1].Field)
}

func TestValidateFields_PresenceBeforeFormat(t *testing.T) {
	w := validWarehouse()
	w.WarehouseName = "Bad#Name"
	w.City = ""

	violations := ValidateFields(w)
	require.Len(t, violations, 1)
	assert.Equal(t, "city", violations[0].Field)
	assert.Equal(t, MsgRequiredFields, violations[0].Message)
}
