package e2e

import (
	"strings"
	"testing"

	"github.com/ParZival6677/shoptest/internal/shop"
)

// Scenario: adding a catalog product to the cart raises the success
// notification with the storefront's confirmation message.
func TestAddProductToCart(t *testing.T) {
	forEachEngine(t, "TC_001", func(t *testing.T, steps *shop.Steps) {
		if err := steps.OpenCategory("Books"); err != nil {
			t.Fatalf("could not open category: %v", err)
		}
		if err := steps.OpenFirstProduct(); err != nil {
			t.Fatalf("could not open product: %v", err)
		}
		text, err := steps.AddToCart()
		if err != nil {
			t.Fatalf("add to cart failed: %v", err)
		}
		if !strings.Contains(text, shop.MsgAddedToCart) {
			t.Errorf("notification %q does not confirm the add", text)
		}
	})
}

// Scenario: removing the only line item leaves the cart reporting empty.
func TestRemoveProductFromCart(t *testing.T) {
	forEachEngine(t, "TC_002", func(t *testing.T, steps *shop.Steps) {
		if err := steps.SeedCart(); err != nil {
			t.Fatalf("could not seed cart: %v", err)
		}
		summary, err := steps.RemoveFirstItem()
		if err != nil {
			t.Fatalf("remove failed: %v", err)
		}
		if !strings.Contains(summary, shop.MsgCartEmpty) {
			t.Errorf("cart summary %q does not report an empty cart", summary)
		}
		empty, err := steps.CartIsEmpty()
		if err != nil {
			t.Fatalf("empty-cart probe failed: %v", err)
		}
		if !empty {
			t.Error("cart still reports content after removal")
		}
	})
}

// Scenario: a valid quantity update is stored as submitted.
func TestUpdateCartQuantity(t *testing.T) {
	forEachEngine(t, "TC_003", func(t *testing.T, steps *shop.Steps) {
		if err := steps.SeedCart(); err != nil {
			t.Fatalf("could not seed cart: %v", err)
		}
		if err := steps.SetCartQuantity("3"); err != nil {
			t.Fatalf("could not set quantity: %v", err)
		}
		if err := steps.UpdateCart(); err != nil {
			t.Fatalf("could not update cart: %v", err)
		}
		stored, err := steps.CartQuantity()
		if err != nil {
			t.Fatalf("could not read quantity: %v", err)
		}
		if stored != "3" {
			t.Errorf("stored quantity = %q, want %q", stored, "3")
		}
	})
}
