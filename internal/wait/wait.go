// Package wait provides bounded explicit-wait primitives: a poll-until
// loop over pure page-state predicates, with a typed timeout error and a
// first-class probe for optional elements. It is the suite's only
// synchronization mechanism; nothing else blocks.
package wait

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// PollInterval is the fixed interval between condition evaluations.
const PollInterval = 250 * time.Millisecond

// Condition is a pure predicate over current page state. Satisfied is
// evaluated repeatedly and must not own resources or have side effects.
type Condition interface {
	// Describe names the condition for errors and the log stream.
	Describe() string
	// Satisfied reports whether the condition currently holds. An error
	// means the predicate could not be evaluated at all, not "false".
	Satisfied() (bool, error)
}

// NotReadyError reports a condition that did not hold within its timeout.
// Callers decide whether this is fatal or a recoverable optional-element
// probe result.
type NotReadyError struct {
	Condition string
	Timeout   time.Duration
	Elapsed   time.Duration
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("condition %q not satisfied after %v (timeout %v)",
		e.Condition, e.Elapsed.Round(time.Millisecond), e.Timeout)
}

// Until blocks until cond is satisfied or timeout elapses, polling at
// PollInterval. The condition is evaluated at least once. On timeout it
// returns a *NotReadyError carrying the condition and elapsed time.
func Until(cond Condition, timeout time.Duration) error {
	start := time.Now()
	for {
		ok, err := cond.Satisfied()
		if err != nil {
			return fmt.Errorf("evaluating condition %q: %w", cond.Describe(), err)
		}
		if ok {
			return nil
		}
		if time.Since(start) >= timeout {
			return &NotReadyError{
				Condition: cond.Describe(),
				Timeout:   timeout,
				Elapsed:   time.Since(start),
			}
		}
		time.Sleep(PollInterval)
	}
}

// Probe waits for an optional element. Absence within the timeout is a
// valid outcome (false, nil), not an error; evaluation errors still
// propagate. Optionality is visible in the contract rather than buried in
// suppressed failures.
func Probe(cond Condition, timeout time.Duration) (bool, error) {
	err := Until(cond, timeout)
	if err == nil {
		return true, nil
	}
	var nre *NotReadyError
	if errors.As(err, &nre) {
		return false, nil
	}
	return false, err
}

// Any combines conditions into one that is satisfied as soon as at least
// one of them is. It lets a single timeout cover several alternative
// signals instead of spending one timeout per signal.
func Any(conds ...Condition) Condition {
	descs := make([]string, len(conds))
	for i, c := range conds {
		descs[i] = c.Describe()
	}
	return Func("any of: "+strings.Join(descs, " | "), func() (bool, error) {
		for _, c := range conds {
			ok, err := c.Satisfied()
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	})
}

// Func adapts a plain predicate function into a Condition.
func Func(desc string, f func() (bool, error)) Condition {
	return funcCondition{desc: desc, f: f}
}

type funcCondition struct {
	desc string
	f    func() (bool, error)
}

func (c funcCondition) Describe() string         { return c.desc }
func (c funcCondition) Satisfied() (bool, error) { return c.f() }
