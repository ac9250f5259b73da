package shop

import (
	"errors"
	"fmt"

	"github.com/ParZival6677/shoptest/internal/wait"
)

// QuantityOutcome classifies how the storefront handled an invalid
// quantity update. The three outcomes are deliberately kept distinct; the
// target system's real behavior differs across inputs.
type QuantityOutcome int

const (
	// CartEmptied: the update removed the line item entirely. The caller
	// re-seeds the cart and continues; this is not a failure.
	CartEmptied QuantityOutcome = iota
	// ValidationShown: a visible validation error appeared.
	ValidationShown
	// QuantityCorrected: no error shown, but the stored quantity differs
	// from the submitted value (server clamped or rejected it silently).
	QuantityCorrected
)

// String returns the outcome name for logging.
func (o QuantityOutcome) String() string {
	switch o {
	case CartEmptied:
		return "cart emptied"
	case ValidationShown:
		return "validation shown"
	case QuantityCorrected:
		return "quantity corrected"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ErrQuantityAccepted reports that an invalid quantity was silently
// accepted with no notice, which no outcome permits.
var ErrQuantityAccepted = errors.New("invalid quantity accepted without correction or error")

// ClassifyQuantityOutcome inspects the cart after an invalid quantity was
// submitted and resolves it into exactly one outcome. Both explicit
// signals share a single probe, so a silent clamp costs one gate timeout
// rather than one per signal.
func (st *Steps) ClassifyQuantityOutcome(submitted string) (QuantityOutcome, error) {
	emptied := wait.TextContains(st.page.Locator(selOrderSummary), MsgCartEmpty, selOrderSummary)
	rejected := wait.Visible(st.page.Locator(selValidationErr).First(), selValidationErr)

	acknowledged, err := wait.Probe(wait.Any(emptied, rejected), st.sess.GateTimeout())
	if err != nil {
		return 0, err
	}
	if acknowledged {
		if empty, err := emptied.Satisfied(); err == nil && empty {
			st.log.Info("boundary outcome", "submitted", submitted, "outcome", CartEmptied)
			return CartEmptied, nil
		}
		st.log.Info("boundary outcome", "submitted", submitted, "outcome", ValidationShown)
		return ValidationShown, nil
	}

	stored, err := st.CartQuantity()
	if err != nil {
		return 0, err
	}
	if stored == submitted {
		return 0, fmt.Errorf("%w: quantity %q still stored", ErrQuantityAccepted, submitted)
	}
	st.log.Info("boundary outcome",
		"submitted", submitted, "stored", stored, "outcome", QuantityCorrected)
	return QuantityCorrected, nil
}
