// Package checkout orchestrates the workflow steps into the full
// guest-checkout flow as an ordered progression of named stages.
package checkout

import (
	"fmt"
	"strings"

	"github.com/ParZival6677/shoptest/internal/shop"
)

// Stage is a named position in the checkout flow. Stages are strictly
// ordered; the machine only ever advances.
type Stage int

// Checkout stages in flow order.
const (
	CartReview Stage = iota
	TermsAccepted
	GuestGate
	BillingEntered
	ShippingSelected
	PaymentMethodSelected
	PaymentInfoEntered
	Confirmed
	Completed
)

var stageNames = [...]string{
	"cart review",
	"terms accepted",
	"guest gate",
	"billing entered",
	"shipping selected",
	"payment method selected",
	"payment info entered",
	"confirmed",
	"completed",
}

// String returns the stage name.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// CompletionError reports a checkout that reached the completion section
// but without the expected success text.
type CompletionError struct {
	Text string
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion section did not confirm success: %q", e.Text)
}

// Flow is the step surface the machine drives, satisfied by *shop.Steps.
type Flow interface {
	AcceptTerms() error
	BeginCheckout() error
	ProbeGuestGate() (bool, error)
	FillBillingProfile(p shop.BillingProfile) error
	SubmitBillingAddress() error
	EnsurePickupShipping() error
	SaveShipping() error
	ContinuePaymentMethod() error
	ContinuePaymentInfo() error
	ConfirmOrder() error
	WaitOrderCompleted() (string, error)
}

// Machine drives one session through the guest-checkout flow. It starts
// from a cart page with at least one line item, mutates only its own
// stage, and never retries a stage: an unmet wait at a mandatory stage
// aborts the run with the triggering error, leaving Stage() at the last
// stage reached.
type Machine struct {
	steps   Flow
	profile shop.BillingProfile
	stage   Stage
}

// NewMachine creates a checkout machine for the given steps library and
// billing fixture.
func NewMachine(steps Flow, profile shop.BillingProfile) *Machine {
	return &Machine{steps: steps, profile: profile, stage: CartReview}
}

// Stage returns the last stage the machine reached.
func (m *Machine) Stage() Stage { return m.stage }

// Run executes the flow from cart review to completion. On success the
// machine is at Completed and the confirmation text contained the
// storefront's success message.
func (m *Machine) Run() error {
	if err := m.profile.Validate(); err != nil {
		return err
	}

	if err := m.steps.AcceptTerms(); err != nil {
		return m.abort(err)
	}
	if err := m.steps.BeginCheckout(); err != nil {
		return m.abort(err)
	}
	m.stage = TermsAccepted

	// Optional branch: present or absent, the flow continues identically.
	if _, err := m.steps.ProbeGuestGate(); err != nil {
		return m.abort(err)
	}
	m.stage = GuestGate

	if err := m.steps.FillBillingProfile(m.profile); err != nil {
		return m.abort(err)
	}
	if err := m.steps.SubmitBillingAddress(); err != nil {
		return m.abort(err)
	}
	m.stage = BillingEntered

	if err := m.steps.EnsurePickupShipping(); err != nil {
		return m.abort(err)
	}
	if err := m.steps.SaveShipping(); err != nil {
		return m.abort(err)
	}
	m.stage = ShippingSelected

	if err := m.steps.ContinuePaymentMethod(); err != nil {
		return m.abort(err)
	}
	m.stage = PaymentMethodSelected

	if err := m.steps.ContinuePaymentInfo(); err != nil {
		return m.abort(err)
	}
	m.stage = PaymentInfoEntered

	if err := m.steps.ConfirmOrder(); err != nil {
		return m.abort(err)
	}
	m.stage = Confirmed

	text, err := m.steps.WaitOrderCompleted()
	if err != nil {
		return m.abort(err)
	}
	if !strings.Contains(text, shop.MsgOrderCompleted) {
		return m.abort(&CompletionError{Text: text})
	}
	m.stage = Completed
	return nil
}

func (m *Machine) abort(err error) error {
	return fmt.Errorf("checkout aborted at stage %q: %w", m.stage, err)
}
