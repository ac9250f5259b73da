package shop

import (
	"errors"
	"fmt"
)

// BillingProfile is the immutable billing-address fixture a scenario
// supplies to the checkout flow. All fields are mandatory for the happy
// path; entry order is irrelevant.
type BillingProfile struct {
	FirstName     string
	LastName      string
	Email         string
	City          string
	Address1      string
	ZipPostalCode string
	PhoneNumber   string
	// Country is selected from the storefront's country list by visible label.
	Country string
}

// ErrIncompleteProfile reports a billing profile missing mandatory fields.
var ErrIncompleteProfile = errors.New("billing profile is missing mandatory fields")

// Fields maps storefront field IDs to the profile's values, in a stable
// order suitable for form entry.
func (p BillingProfile) Fields() []FormField {
	return []FormField{
		{"#BillingNewAddress_FirstName", p.FirstName},
		{"#BillingNewAddress_LastName", p.LastName},
		{"#BillingNewAddress_Email", p.Email},
		{"#BillingNewAddress_City", p.City},
		{"#BillingNewAddress_Address1", p.Address1},
		{"#BillingNewAddress_ZipPostalCode", p.ZipPostalCode},
		{"#BillingNewAddress_PhoneNumber", p.PhoneNumber},
	}
}

// FormField pairs a field selector with the value to enter.
type FormField struct {
	Selector string
	Value    string
}

// Validate checks that every mandatory field is set.
func (p BillingProfile) Validate() error {
	for _, f := range p.Fields() {
		if f.Value == "" {
			return fmt.Errorf("%w: %s is empty", ErrIncompleteProfile, f.Selector)
		}
	}
	if p.Country == "" {
		return fmt.Errorf("%w: country is empty", ErrIncompleteProfile)
	}
	return nil
}
