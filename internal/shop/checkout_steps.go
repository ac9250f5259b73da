package shop

import (
	"fmt"

	"github.com/ParZival6677/shoptest/internal/wait"
)

// AcceptTerms activates the terms-of-service toggle on the cart page.
func (st *Steps) AcceptTerms() error {
	st.log.Info("accepting terms of service")
	box := st.page.Locator(selTermsOfService)
	if err := wait.Until(wait.Clickable(box, selTermsOfService), st.sess.GateTimeout()); err != nil {
		return err
	}
	if err := box.Click(); err != nil {
		return fmt.Errorf("could not accept terms: %w", err)
	}
	return nil
}

// BeginCheckout clicks the checkout control on the cart page.
func (st *Steps) BeginCheckout() error {
	st.log.Info("starting checkout")
	button := st.page.Locator(selCheckoutButton)
	if err := wait.Until(wait.Clickable(button, selCheckoutButton), st.sess.GateTimeout()); err != nil {
		return err
	}
	if err := button.Click(); err != nil {
		return fmt.Errorf("could not start checkout: %w", err)
	}
	return nil
}

// ProbeGuestGate probes for the optional checkout-as-guest control and
// clicks it when present. Its presence depends on prior authentication
// state and the server session; absence is business-expected, not a
// failure. Returns whether the gate was taken.
func (st *Steps) ProbeGuestGate() (bool, error) {
	button := st.page.Locator(selGuestCheckout)
	present, err := wait.Probe(wait.Clickable(button, selGuestCheckout), st.sess.GateTimeout())
	if err != nil {
		return false, err
	}
	if !present {
		st.log.Info("guest checkout control not present, continuing")
		return false, nil
	}
	st.log.Info("guest checkout control found, clicking")
	if err := button.Click(); err != nil {
		return false, fmt.Errorf("could not click guest checkout: %w", err)
	}
	return true, nil
}

// SubmitBillingAddress advances past the billing address form. Several
// controls on the checkout page share the next-step CSS class; the billing
// one is the first inside the address form, the shipping one is told apart
// by its onclick attribute (see SaveShipping).
func (st *Steps) SubmitBillingAddress() error {
	st.log.Info("submitting billing address")
	button := st.page.Locator(selBillingNext).First()
	if err := wait.Until(wait.Clickable(button, selBillingNext), st.sess.StepTimeout()); err != nil {
		return err
	}
	if err := button.Click(); err != nil {
		return fmt.Errorf("could not submit billing address: %w", err)
	}
	return nil
}

// EnsurePickupShipping makes sure the pickup-in-store option is checked.
// Idempotent: only toggles when not already selected.
func (st *Steps) EnsurePickupShipping() error {
	box := st.page.Locator(selPickUpInStore)
	if err := wait.Until(wait.Clickable(box, selPickUpInStore), st.sess.StepTimeout()); err != nil {
		return err
	}
	checked, err := box.IsChecked()
	if err != nil {
		return fmt.Errorf("could not read pickup option: %w", err)
	}
	if checked {
		st.log.Info("pickup-in-store already selected")
		return nil
	}
	st.log.Info("selecting pickup-in-store shipping")
	if err := box.Click(); err != nil {
		return fmt.Errorf("could not select pickup option: %w", err)
	}
	return wait.Until(wait.Checked(box, selPickUpInStore), st.sess.StepTimeout())
}

// SaveShipping advances past the shipping method stage via the
// shipping-scoped save control.
func (st *Steps) SaveShipping() error {
	st.log.Info("saving shipping method")
	button := st.page.Locator(selShippingSave)
	if err := wait.Until(wait.Clickable(button, selShippingSave), st.sess.StepTimeout()); err != nil {
		return err
	}
	if err := button.Click(); err != nil {
		return fmt.Errorf("could not save shipping method: %w", err)
	}
	return nil
}

// ContinuePaymentMethod advances past the payment method stage.
func (st *Steps) ContinuePaymentMethod() error {
	st.log.Info("continuing past payment method")
	return st.clickNext(selPaymentMethod)
}

// ContinuePaymentInfo advances past the payment information stage.
func (st *Steps) ContinuePaymentInfo() error {
	st.log.Info("continuing past payment info")
	return st.clickNext(selPaymentInfo)
}

// ConfirmOrder submits the order at the confirmation stage.
func (st *Steps) ConfirmOrder() error {
	st.log.Info("confirming order")
	return st.clickNext(selConfirmOrder)
}

func (st *Steps) clickNext(selector string) error {
	button := st.page.Locator(selector)
	if err := wait.Until(wait.Clickable(button, selector), st.sess.StepTimeout()); err != nil {
		return err
	}
	if err := button.Click(); err != nil {
		return fmt.Errorf("could not click %s: %w", selector, err)
	}
	return nil
}

// WaitOrderCompleted blocks until the order-completed section is visible
// and returns its text, the sole source of truth for checkout success.
func (st *Steps) WaitOrderCompleted() (string, error) {
	section := st.page.Locator(selOrderCompleted)
	if err := wait.Until(wait.Visible(section, selOrderCompleted), st.sess.StepTimeout()); err != nil {
		return "", err
	}
	text, err := section.TextContent()
	if err != nil {
		return "", fmt.Errorf("could not read completion section: %w", err)
	}
	st.log.Info("order completion section", "text", text)
	return text, nil
}
