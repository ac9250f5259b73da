package wait

import (
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Locator getters like IsEnabled auto-wait with the page default timeout.
// Conditions pass this short bound instead so the Until loop owns timing.
const getterTimeoutMillis = 100.0

// Visible reports the element matched by l being visible.
func Visible(l playwright.Locator, desc string) Condition {
	return Func("visible: "+desc, func() (bool, error) {
		return l.IsVisible()
	})
}

// Clickable reports the element matched by l being visible and enabled.
func Clickable(l playwright.Locator, desc string) Condition {
	return Func("clickable: "+desc, func() (bool, error) {
		visible, err := l.IsVisible()
		if err != nil || !visible {
			return false, err
		}
		enabled, err := l.IsEnabled(playwright.LocatorIsEnabledOptions{
			Timeout: playwright.Float(getterTimeoutMillis),
		})
		if err != nil {
			// Element detached mid-poll; try again next tick.
			return false, nil
		}
		return enabled, nil
	})
}

// Present reports at least one element matching l being attached. Callers
// probing for optional content treat absence as a valid outcome via Probe.
func Present(l playwright.Locator, desc string) Condition {
	return Func("present: "+desc, func() (bool, error) {
		count, err := l.Count()
		if err != nil {
			return false, err
		}
		return count > 0, nil
	})
}

// TextContains reports the element matched by l being visible with text
// containing substr.
func TextContains(l playwright.Locator, substr, desc string) Condition {
	return Func("text contains "+substr+": "+desc, func() (bool, error) {
		visible, err := l.IsVisible()
		if err != nil || !visible {
			return false, err
		}
		text, err := l.TextContent(playwright.LocatorTextContentOptions{
			Timeout: playwright.Float(getterTimeoutMillis),
		})
		if err != nil {
			return false, nil
		}
		return strings.Contains(text, substr), nil
	})
}

// Checked reports the checkbox matched by l being checked.
func Checked(l playwright.Locator, desc string) Condition {
	return Func("checked: "+desc, func() (bool, error) {
		checked, err := l.IsChecked(playwright.LocatorIsCheckedOptions{
			Timeout: playwright.Float(getterTimeoutMillis),
		})
		if err != nil {
			return false, nil
		}
		return checked, nil
	})
}
