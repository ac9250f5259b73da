package e2e

import (
	"strings"
	"testing"

	"github.com/ParZival6677/shoptest/internal/shop"
)

// Scenario: each top-level category page renders with its own title and at
// least one catalog item.
func TestCategoryPagesRender(t *testing.T) {
	categories := []string{"Books", "Apparel & Shoes", "Jewelry"}

	forEachEngine(t, "TC_004", func(t *testing.T, steps *shop.Steps) {
		for _, label := range categories {
			if err := steps.OpenCategory(label); err != nil {
				t.Fatalf("could not open category %s: %v", label, err)
			}
			title, err := steps.PageTitle()
			if err != nil {
				t.Fatalf("%s: could not read page title: %v", label, err)
			}
			if !strings.Contains(title, label) {
				t.Errorf("page title %q does not name category %q", title, label)
			}
		}
	})
}

func assertAscendingPrices(t *testing.T, steps *shop.Steps, context string) {
	t.Helper()
	texts, err := steps.ScrapePriceTexts()
	if err != nil {
		t.Fatalf("%s: could not scrape prices: %v", context, err)
	}
	values, dropped := shop.ParsePrices(texts)
	if len(dropped) > 0 {
		t.Logf("%s: unparseable price texts skipped: %v", context, dropped)
	}
	if len(values) == 0 {
		t.Fatalf("%s: no parseable prices on page", context)
	}
	if !shop.Ascending(values) {
		t.Errorf("%s: prices not ascending: %v", context, values)
	}
}

// Scenario: sorting a product listing by "Price: Low to High" re-renders
// it in ascending price order.
func TestSortCategoryByPriceAscending(t *testing.T) {
	forEachEngine(t, "sort-books", func(t *testing.T, steps *shop.Steps) {
		if err := steps.OpenCategory("Books"); err != nil {
			t.Fatalf("could not open category: %v", err)
		}
		if err := steps.SelectSort("Price: Low to High"); err != nil {
			t.Fatalf("could not select sort order: %v", err)
		}
		assertAscendingPrices(t, steps, "Books")
	})
}

// Scenario: every sub-category tab under Computers sorts correctly on its
// own; sort state does not leak between tabs.
func TestSortComputerTabsByPriceAscending(t *testing.T) {
	forEachEngine(t, "TC_006", func(t *testing.T, steps *shop.Steps) {
		if err := steps.OpenHome(); err != nil {
			t.Fatalf("could not open storefront: %v", err)
		}
		if err := steps.OpenTab("Computers"); err != nil {
			t.Fatalf("could not open Computers: %v", err)
		}
		for _, tab := range []string{"Desktops", "Notebooks", "Accessories"} {
			if err := steps.OpenTab(tab); err != nil {
				t.Fatalf("could not open tab %s: %v", tab, err)
			}
			title, err := steps.PageTitle()
			if err != nil {
				t.Fatalf("%s: could not read page title: %v", tab, err)
			}
			if !strings.Contains(title, tab) {
				t.Fatalf("landed on %q after opening tab %q", title, tab)
			}
			if err := steps.SelectSort("Price: Low to High"); err != nil {
				t.Fatalf("could not sort tab %s: %v", tab, err)
			}
			assertAscendingPrices(t, steps, tab)
		}
	})
}
