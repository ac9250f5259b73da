package shop

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/playwright-community/playwright-go"

	"github.com/ParZival6677/shoptest/internal/session"
	"github.com/ParZival6677/shoptest/internal/wait"
)

// CategoryNotFoundError reports that no category link with the requested
// label appeared within the step timeout.
type CategoryNotFoundError struct {
	Category string
	Err      error
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("category %q not found: %v", e.Category, e.Err)
}

func (e *CategoryNotFoundError) Unwrap() error { return e.Err }

// AuthenticationError reports a login that never produced the logged-in
// affordance.
type AuthenticationError struct {
	Email string
	Err   error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("login as %s failed: %v", e.Email, e.Err)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// Steps binds the workflow steps library to one session and one storefront.
// Every step waits on an explicit condition before acting and logs one
// line per significant action.
type Steps struct {
	sess *session.Session
	page playwright.Page
	base string
	log  *log.Logger
}

// NewSteps creates a steps library for the given session and storefront root.
func NewSteps(s *session.Session, baseURL string) *Steps {
	return &Steps{sess: s, page: s.Page, base: baseURL, log: s.Log()}
}

// link matches an anchor by its exact visible text.
func (st *Steps) link(label string) playwright.Locator {
	return st.page.Locator(fmt.Sprintf("a:text-is(%q)", label)).First()
}

// OpenHome navigates to the storefront root.
func (st *Steps) OpenHome() error {
	st.log.Info("opening storefront root", "url", st.base)
	if _, err := st.page.Goto(st.base); err != nil {
		return fmt.Errorf("could not open storefront root: %w", err)
	}
	return nil
}

// OpenCategory navigates to the storefront root, opens the category link
// with the given visible label and waits for at least one catalog item.
func (st *Steps) OpenCategory(label string) error {
	if err := st.OpenHome(); err != nil {
		return err
	}
	st.log.Info("opening category", "category", label)
	l := st.link(label)
	if err := wait.Until(wait.Clickable(l, "category link "+label), st.sess.StepTimeout()); err != nil {
		return &CategoryNotFoundError{Category: label, Err: err}
	}
	if err := l.Click(); err != nil {
		return fmt.Errorf("could not open category %q: %w", label, err)
	}
	return wait.Until(
		wait.Present(st.page.Locator(selProductItem), selProductItem),
		st.sess.StepTimeout(),
	)
}

// PageTitle waits for the page title block and returns its text.
func (st *Steps) PageTitle() (string, error) {
	title := st.page.Locator(selPageTitle)
	if err := wait.Until(wait.Visible(title, selPageTitle), st.sess.StepTimeout()); err != nil {
		return "", err
	}
	text, err := title.TextContent()
	if err != nil {
		return "", fmt.Errorf("could not read page title: %w", err)
	}
	return text, nil
}

// OpenFirstProduct opens the first listed product's detail page within a
// loaded catalog and waits for the add-to-cart control.
func (st *Steps) OpenFirstProduct() error {
	st.log.Info("opening first product")
	l := st.page.Locator(selProductLink).First()
	if err := wait.Until(wait.Clickable(l, selProductLink), st.sess.StepTimeout()); err != nil {
		return err
	}
	if err := l.Click(); err != nil {
		return fmt.Errorf("could not open product page: %w", err)
	}
	return wait.Until(
		wait.Clickable(st.page.Locator(selAddToCart).First(), selAddToCart),
		st.sess.StepTimeout(),
	)
}

// AddToCart activates the add-to-cart control and returns the success
// notification text. No notification within the timeout is a failure.
func (st *Steps) AddToCart() (string, error) {
	st.log.Info("adding product to cart")
	button := st.page.Locator(selAddToCart).First()
	if err := wait.Until(wait.Clickable(button, selAddToCart), st.sess.StepTimeout()); err != nil {
		return "", err
	}
	if err := button.Click(); err != nil {
		return "", fmt.Errorf("could not click add-to-cart: %w", err)
	}
	notification := st.page.Locator(selNotifySuccess)
	if err := wait.Until(wait.Visible(notification, selNotifySuccess), st.sess.StepTimeout()); err != nil {
		return "", err
	}
	text, err := notification.TextContent()
	if err != nil {
		return "", fmt.Errorf("could not read notification: %w", err)
	}
	st.log.Info("notification received", "text", text)
	return text, nil
}

// GoToCart opens the cart view via the persistent header link.
func (st *Steps) GoToCart() error {
	st.log.Info("navigating to cart")
	l := st.link("Shopping cart")
	if err := wait.Until(wait.Clickable(l, "shopping cart link"), st.sess.StepTimeout()); err != nil {
		return err
	}
	if err := l.Click(); err != nil {
		return fmt.Errorf("could not open cart: %w", err)
	}
	return wait.Until(
		wait.Visible(st.page.Locator(selOrderSummary), selOrderSummary),
		st.sess.StepTimeout(),
	)
}

// SeedCart places one catalog product into the cart and ends on the cart
// page. Used for initial seeding and for recovery after a destructive
// boundary test emptied the cart.
func (st *Steps) SeedCart() error {
	st.log.Info("seeding cart")
	if err := st.OpenCategory("Books"); err != nil {
		return err
	}
	if err := st.OpenFirstProduct(); err != nil {
		return err
	}
	if _, err := st.AddToCart(); err != nil {
		return err
	}
	return st.GoToCart()
}

// FillBillingProfile enters the profile into the billing address form.
// Fill clears prior content first, so re-running with the same profile
// leaves the form unchanged.
func (st *Steps) FillBillingProfile(p BillingProfile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	for _, f := range p.Fields() {
		field := st.page.Locator(f.Selector)
		if err := wait.Until(wait.Visible(field, f.Selector), st.sess.StepTimeout()); err != nil {
			return err
		}
		if err := field.Fill(f.Value); err != nil {
			return fmt.Errorf("could not fill %s: %w", f.Selector, err)
		}
		st.log.Info("billing field filled", "field", f.Selector)
	}
	st.log.Info("selecting country", "country", p.Country)
	if _, err := st.page.Locator(selCountrySelect).SelectOption(playwright.SelectOptionValues{
		Labels: &[]string{p.Country},
	}); err != nil {
		return fmt.Errorf("could not select country %q: %w", p.Country, err)
	}
	return nil
}

// Login authenticates with the given credentials. The "Log out" affordance
// appearing is the proof of authenticated state.
func (st *Steps) Login(email, password string) error {
	if err := st.OpenHome(); err != nil {
		return err
	}
	st.log.Info("logging in", "email", email)
	loginLink := st.link("Log in")
	if err := wait.Until(wait.Clickable(loginLink, "log in link"), st.sess.StepTimeout()); err != nil {
		return &AuthenticationError{Email: email, Err: err}
	}
	if err := loginLink.Click(); err != nil {
		return &AuthenticationError{Email: email, Err: err}
	}
	emailField := st.page.Locator(selLoginEmail)
	if err := wait.Until(wait.Visible(emailField, selLoginEmail), st.sess.StepTimeout()); err != nil {
		return &AuthenticationError{Email: email, Err: err}
	}
	if err := emailField.Fill(email); err != nil {
		return &AuthenticationError{Email: email, Err: err}
	}
	if err := st.page.Locator(selLoginPassword).Fill(password); err != nil {
		return &AuthenticationError{Email: email, Err: err}
	}
	if err := st.page.Locator(selLoginButton).Click(); err != nil {
		return &AuthenticationError{Email: email, Err: err}
	}
	if err := wait.Until(
		wait.Visible(st.link("Log out"), "log out link"),
		st.sess.StepTimeout(),
	); err != nil {
		return &AuthenticationError{Email: email, Err: err}
	}
	st.log.Info("login successful")
	return nil
}

// SetCartQuantity clears the first line item's quantity field and enters
// the given value.
func (st *Steps) SetCartQuantity(value string) error {
	st.log.Info("setting cart quantity", "value", value)
	field := st.page.Locator(selQtyInput).First()
	if err := wait.Until(wait.Visible(field, selQtyInput), st.sess.StepTimeout()); err != nil {
		return err
	}
	if err := field.Fill(value); err != nil {
		return fmt.Errorf("could not set quantity: %w", err)
	}
	return nil
}

// markDocument tags the current document so a later wait can tell a
// freshly loaded one apart from it. Best effort: a page that rejects the
// script is logged and the caller's timeout still bounds the wait.
func (st *Steps) markDocument() {
	if _, err := st.page.Evaluate("() => { window.__docMark = true; }"); err != nil {
		st.log.Debug("could not mark document", "err", err)
	}
}

// documentReplaced is satisfied once the marked document is gone, the
// observable effect of a form post or navigation landing. Waiting on an
// element the old document also had would pass against stale state.
func (st *Steps) documentReplaced() wait.Condition {
	return wait.Func("document replaced", func() (bool, error) {
		marked, err := st.page.Evaluate("() => window.__docMark === true")
		if err != nil {
			// Execution context torn down mid-navigation.
			return true, nil
		}
		b, ok := marked.(bool)
		return !ok || !b, nil
	})
}

// UpdateCart submits the cart update control and waits for the refreshed
// cart document before returning, so follow-up reads never see the
// pre-update page.
func (st *Steps) UpdateCart() error {
	st.log.Info("updating cart")
	button := st.page.Locator(selUpdateCart).First()
	if err := wait.Until(wait.Clickable(button, selUpdateCart), st.sess.StepTimeout()); err != nil {
		return err
	}
	st.markDocument()
	if err := button.Click(); err != nil {
		return fmt.Errorf("could not update cart: %w", err)
	}
	if err := wait.Until(st.documentReplaced(), st.sess.StepTimeout()); err != nil {
		return err
	}
	return wait.Until(
		wait.Visible(st.page.Locator(selOrderSummary), selOrderSummary),
		st.sess.StepTimeout(),
	)
}

// CartQuantity returns the first line item's stored quantity value.
func (st *Steps) CartQuantity() (string, error) {
	field := st.page.Locator(selQtyInput).First()
	if err := wait.Until(wait.Visible(field, selQtyInput), st.sess.StepTimeout()); err != nil {
		return "", err
	}
	value, err := field.InputValue()
	if err != nil {
		return "", fmt.Errorf("could not read quantity: %w", err)
	}
	return value, nil
}

// RemoveFirstItem marks the first line item for removal, updates the cart
// and returns the resulting summary text.
func (st *Steps) RemoveFirstItem() (string, error) {
	st.log.Info("removing first cart item")
	box := st.page.Locator(selRemoveFromCart).First()
	if err := wait.Until(wait.Clickable(box, selRemoveFromCart), st.sess.StepTimeout()); err != nil {
		return "", err
	}
	if err := box.Check(); err != nil {
		return "", fmt.Errorf("could not mark item for removal: %w", err)
	}
	if err := st.UpdateCart(); err != nil {
		return "", err
	}
	summary := st.page.Locator(selOrderSummary)
	text, err := summary.TextContent()
	if err != nil {
		return "", fmt.Errorf("could not read cart summary: %w", err)
	}
	return text, nil
}

// CartIsEmpty probes the cart page for the empty-cart message. Absence is
// a valid outcome, not a failure.
func (st *Steps) CartIsEmpty() (bool, error) {
	return wait.Probe(
		wait.TextContains(st.page.Locator(selOrderSummary), MsgCartEmpty, selOrderSummary),
		st.sess.GateTimeout(),
	)
}

// OpenTab opens a sub-category tab by its visible label and waits for the
// tab's own page, told apart from the previous one by its title. Tabs all
// carry the generic category-page markup, so the title is the only signal
// that distinguishes the destination from the page the click left.
func (st *Steps) OpenTab(label string) error {
	st.log.Info("opening tab", "tab", label)
	l := st.link(label)
	if err := wait.Until(wait.Clickable(l, "tab link "+label), st.sess.StepTimeout()); err != nil {
		return err
	}
	if err := l.Click(); err != nil {
		return fmt.Errorf("could not open tab %q: %w", label, err)
	}
	return wait.Until(
		wait.TextContains(st.page.Locator(selPageTitle), label, selPageTitle),
		st.sess.StepTimeout(),
	)
}

// settleTimeout bounds the wait for a client-side re-render that exposes
// no completion signal. A known fragility of the target system, kept
// bounded here and not a pattern to reuse.
const settleTimeout = 2 * time.Second

// SelectSort requests a sort order by its visible label and waits for the
// re-render. Completion is detected by the first price text changing;
// when the order was already correct there is nothing observable to wait
// on, so the probe's bounded timeout doubles as the settle wait.
func (st *Steps) SelectSort(label string) error {
	st.log.Info("selecting sort order", "sort", label)
	sorter := st.page.Locator(selSortSelect)
	if err := wait.Until(wait.Clickable(sorter, selSortSelect), st.sess.StepTimeout()); err != nil {
		return err
	}
	before, _ := st.page.Locator(selPrices).First().TextContent(
		playwright.LocatorTextContentOptions{Timeout: playwright.Float(500)},
	)
	if _, err := sorter.SelectOption(playwright.SelectOptionValues{
		Labels: &[]string{label},
	}); err != nil {
		return fmt.Errorf("could not select sort %q: %w", label, err)
	}
	changed, err := wait.Probe(wait.Func("first price changed", func() (bool, error) {
		after, err := st.page.Locator(selPrices).First().TextContent(
			playwright.LocatorTextContentOptions{Timeout: playwright.Float(500)},
		)
		if err != nil {
			return false, nil
		}
		return after != before, nil
	}), settleTimeout)
	if err != nil {
		return err
	}
	if !changed {
		st.log.Debug("no observable re-render after sort; proceeding after bounded settle wait")
	}
	return nil
}

// WaitBillingForm blocks until the billing address form is visible. The
// timing scenario measures against this signal.
func (st *Steps) WaitBillingForm() error {
	return wait.Until(
		wait.Visible(st.page.Locator(selBillingFirstName), selBillingFirstName),
		st.sess.StepTimeout(),
	)
}

// ScrapePriceTexts returns the displayed price texts on the current page.
func (st *Steps) ScrapePriceTexts() ([]string, error) {
	texts, err := st.page.Locator(selPrices).AllTextContents()
	if err != nil {
		return nil, fmt.Errorf("could not scrape prices: %w", err)
	}
	return texts, nil
}

// AddReview submits a product review from a loaded product page and
// returns the result notification text. Requires prior authentication.
func (st *Steps) AddReview(title, body string, rating int) (string, error) {
	st.log.Info("adding product review", "title", title, "rating", rating)
	if _, err := st.page.Evaluate("window.scrollTo(0, document.body.scrollHeight)"); err != nil {
		return "", fmt.Errorf("could not scroll to review link: %w", err)
	}
	reviewLink := st.link("Add your review")
	if err := wait.Until(wait.Clickable(reviewLink, "add review link"), st.sess.StepTimeout()); err != nil {
		return "", err
	}
	if err := reviewLink.Click(); err != nil {
		return "", fmt.Errorf("could not open review form: %w", err)
	}
	titleField := st.page.Locator(selReviewTitle)
	if err := wait.Until(wait.Visible(titleField, selReviewTitle), st.sess.StepTimeout()); err != nil {
		return "", err
	}
	if err := titleField.Fill(title); err != nil {
		return "", fmt.Errorf("could not fill review title: %w", err)
	}
	if err := st.page.Locator(selReviewText).Fill(body); err != nil {
		return "", fmt.Errorf("could not fill review text: %w", err)
	}
	star := st.page.Locator(fmt.Sprintf("input[id^='addproductrating'][value='%d']", rating))
	if err := star.Click(); err != nil {
		return "", fmt.Errorf("could not select rating: %w", err)
	}
	if err := st.page.Locator(selReviewSubmit).Click(); err != nil {
		return "", fmt.Errorf("could not submit review: %w", err)
	}
	result := st.page.Locator(selReviewResult)
	if err := wait.Until(wait.Visible(result, selReviewResult), st.sess.StepTimeout()); err != nil {
		return "", err
	}
	text, err := result.TextContent()
	if err != nil {
		return "", fmt.Errorf("could not read review result: %w", err)
	}
	st.log.Info("review result", "text", text)
	return text, nil
}
