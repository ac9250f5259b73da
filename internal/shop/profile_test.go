package shop

import (
	"errors"
	"testing"
)

func fullProfile() BillingProfile {
	return BillingProfile{
		FirstName:     "Jim",
		LastName:      "Finch",
		Email:         "jim_finch@gmail.com",
		City:          "Astana",
		Address1:      "10 Mangilik El Ave",
		ZipPostalCode: "010000",
		PhoneNumber:   "87001234567",
		Country:       "United States",
	}
}

func TestBillingProfileValidate(t *testing.T) {
	if err := fullProfile().Validate(); err != nil {
		t.Fatalf("complete profile rejected: %v", err)
	}

	missingCity := fullProfile()
	missingCity.City = ""
	if err := missingCity.Validate(); !errors.Is(err, ErrIncompleteProfile) {
		t.Errorf("missing city: err = %v, want ErrIncompleteProfile", err)
	}

	missingCountry := fullProfile()
	missingCountry.Country = ""
	if err := missingCountry.Validate(); !errors.Is(err, ErrIncompleteProfile) {
		t.Errorf("missing country: err = %v, want ErrIncompleteProfile", err)
	}
}

func TestBillingProfileFieldsOrderIsStable(t *testing.T) {
	fields := fullProfile().Fields()
	if len(fields) != 7 {
		t.Fatalf("got %d fields, want 7", len(fields))
	}
	if fields[0].Selector != "#BillingNewAddress_FirstName" || fields[0].Value != "Jim" {
		t.Errorf("first field = %+v", fields[0])
	}
	for i, f := range fields {
		if f.Value == "" {
			t.Errorf("field %d (%s) has empty value", i, f.Selector)
		}
	}
}

func TestQuantityOutcomeString(t *testing.T) {
	tests := []struct {
		outcome QuantityOutcome
		want    string
	}{
		{CartEmptied, "cart emptied"},
		{ValidationShown, "validation shown"},
		{QuantityCorrected, "quantity corrected"},
		{QuantityOutcome(42), "outcome(42)"},
	}
	for _, tc := range tests {
		if got := tc.outcome.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
