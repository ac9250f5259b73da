// Package shop implements the workflow steps library for the demo webshop:
// named, composable procedures for the recurring multi-page sequences the
// scenarios are built from.
package shop

// The storefront contract: the fixed set of stable selectors and messages
// the target system exposes. Owned by the target application; collected
// here so a markup change is a one-file fix.
const (
	selProductItem   = ".product-item"
	selProductLink   = ".product-item h2 a"
	selAddToCart     = "input[value='Add to cart']"
	selNotifySuccess = ".bar-notification.success"
	selPageTitle     = ".page-title"

	selQtyInput       = "input.qty-input"
	selRemoveFromCart = "input[name='removefromcart']"
	selUpdateCart     = "input[name='updatecart']"
	selOrderSummary   = ".order-summary-content"
	selValidationErr  = ".field-validation-error, .message-error"

	selTermsOfService = "#termsofservice"
	selCheckoutButton = "#checkout"
	selGuestCheckout  = "input.button-1.checkout-as-guest-button"

	selCountrySelect  = "#BillingNewAddress_CountryId"
	selBillingNext    = "input.button-1.new-address-next-step-button"
	selPickUpInStore  = "#PickUpInStore"
	selShippingSave   = "input.button-1.new-address-next-step-button[onclick='Shipping.save()']"
	selPaymentMethod  = "input.button-1.payment-method-next-step-button"
	selPaymentInfo    = "input.button-1.payment-info-next-step-button"
	selConfirmOrder   = "input.button-1.confirm-order-next-step-button"
	selOrderCompleted = ".section.order-completed"

	selLoginEmail    = "#Email"
	selLoginPassword = "#Password"
	selLoginButton   = "input.button-1.login-button"

	selSortSelect = "#products-orderby"
	selPrices     = ".prices"

	selReviewTitle  = "#AddProductReview_Title"
	selReviewText   = "#AddProductReview_ReviewText"
	selReviewSubmit = "input.button-1.write-product-review-button"
	selReviewResult = ".result"

	selBillingFirstName = "#BillingNewAddress_FirstName"
)

// Messages the storefront uses as the sole source of truth for outcomes.
const (
	MsgAddedToCart    = "The product has been added to your shopping cart"
	MsgCartEmpty      = "Your Shopping Cart is empty!"
	MsgOrderCompleted = "Your order has been successfully processed!"
	MsgReviewAdded    = "Product review is successfully added."
)
