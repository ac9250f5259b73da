package e2e

import (
	"testing"
	"time"

	"github.com/ParZival6677/shoptest/internal/checkout"
	"github.com/ParZival6677/shoptest/internal/shop"
)

func billingFixture() shop.BillingProfile {
	return shop.BillingProfile{
		FirstName:     "Jim",
		LastName:      "Finch",
		Email:         shopCfg.Email,
		City:          "Astana",
		Address1:      "10 Mangilik El Ave",
		ZipPostalCode: "010000",
		PhoneNumber:   "87001234567",
		Country:       "United States",
	}
}

// Scenario: an anonymous visitor with a seeded cart completes the whole
// checkout flow and sees the order confirmation.
func TestGuestCheckoutCompletes(t *testing.T) {
	forEachEngine(t, "TC_005", func(t *testing.T, steps *shop.Steps) {
		if err := steps.SeedCart(); err != nil {
			t.Fatalf("could not seed cart: %v", err)
		}
		machine := checkout.NewMachine(steps, billingFixture())
		if err := machine.Run(); err != nil {
			t.Fatalf("checkout failed at stage %q: %v", machine.Stage(), err)
		}
		if machine.Stage() != checkout.Completed {
			t.Errorf("final stage = %q, want %q", machine.Stage(), checkout.Completed)
		}
	})
}

// Scenario: an authenticated customer with a different billing profile
// checks out without passing through the guest gate; the flow continues
// identically.
func TestAuthenticatedCheckoutCompletes(t *testing.T) {
	profile := shop.BillingProfile{
		FirstName:     "Dana",
		LastName:      "Omarova",
		Email:         shopCfg.Email,
		City:          "Almaty",
		Address1:      "52 Abay Ave",
		ZipPostalCode: "050000",
		PhoneNumber:   "87017654321",
		Country:       "United States",
	}

	forEachEngine(t, "TC_010", func(t *testing.T, steps *shop.Steps) {
		if err := steps.Login(shopCfg.Email, shopCfg.Password); err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if err := steps.SeedCart(); err != nil {
			t.Fatalf("could not seed cart: %v", err)
		}
		machine := checkout.NewMachine(steps, profile)
		if err := machine.Run(); err != nil {
			t.Fatalf("checkout failed at stage %q: %v", machine.Stage(), err)
		}
	})
}

// Scenario: from initiating checkout on the cart page, the billing address
// form must appear within five seconds.
func TestCheckoutReachesBillingPromptly(t *testing.T) {
	const limit = 5 * time.Second

	forEachEngine(t, "TC_009", func(t *testing.T, steps *shop.Steps) {
		if err := steps.SeedCart(); err != nil {
			t.Fatalf("could not seed cart: %v", err)
		}
		if err := steps.AcceptTerms(); err != nil {
			t.Fatalf("could not accept terms: %v", err)
		}

		start := time.Now()
		if err := steps.BeginCheckout(); err != nil {
			t.Fatalf("could not start checkout: %v", err)
		}
		if _, err := steps.ProbeGuestGate(); err != nil {
			t.Fatalf("guest gate probe failed: %v", err)
		}
		if err := steps.WaitBillingForm(); err != nil {
			t.Fatalf("billing form never appeared: %v", err)
		}
		if elapsed := time.Since(start); elapsed > limit {
			t.Errorf("billing form took %v, want under %v", elapsed, limit)
		}
	})
}
