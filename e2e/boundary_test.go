package e2e

import (
	"testing"

	"github.com/ParZival6677/shoptest/internal/shop"
)

// Scenario: quantity boundary values never pass through silently. Each
// submission must resolve to exactly one acknowledged outcome; when an
// update empties the cart, the cart is re-seeded and the run continues.
// Which outcome a given value produces is the storefront's choice, so a
// live target only has to acknowledge every value; the stub storefront's
// behavior is fixed and is pinned exactly.
func TestCartQuantityBoundaries(t *testing.T) {
	boundaries := []string{"0", "-1", "100000000"}
	stubOutcome := map[string]shop.QuantityOutcome{
		"0":         shop.CartEmptied,
		"-1":        shop.ValidationShown,
		"100000000": shop.QuantityCorrected,
	}

	forEachEngine(t, "TC_008", func(t *testing.T, steps *shop.Steps) {
		if err := steps.SeedCart(); err != nil {
			t.Fatalf("could not seed cart: %v", err)
		}
		for _, submitted := range boundaries {
			if err := steps.SetCartQuantity(submitted); err != nil {
				t.Fatalf("could not set quantity %q: %v", submitted, err)
			}
			if err := steps.UpdateCart(); err != nil {
				t.Fatalf("could not update cart with %q: %v", submitted, err)
			}
			outcome, err := steps.ClassifyQuantityOutcome(submitted)
			if err != nil {
				t.Fatalf("quantity %q was not acknowledged: %v", submitted, err)
			}
			t.Logf("quantity %q resolved as %q", submitted, outcome)
			if shopCfg.BaseURL == "" {
				if want := stubOutcome[submitted]; outcome != want {
					t.Errorf("quantity %q: outcome = %q, want %q", submitted, outcome, want)
				}
			}
			if outcome == shop.CartEmptied {
				if err := steps.SeedCart(); err != nil {
					t.Fatalf("could not re-seed cart: %v", err)
				}
			}
		}
	})
}
