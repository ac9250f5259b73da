package wait

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUntilSatisfiedImmediately(t *testing.T) {
	calls := 0
	cond := Func("already true", func() (bool, error) {
		calls++
		return true, nil
	})

	start := time.Now()
	require.NoError(t, Until(cond, 5*time.Second))
	assert.Equal(t, 1, calls)
	assert.Less(t, time.Since(start), PollInterval)
}

func TestUntilEvaluatesAtLeastOnceWithZeroTimeout(t *testing.T) {
	calls := 0
	cond := Func("true on first try", func() (bool, error) {
		calls++
		return true, nil
	})

	require.NoError(t, Until(cond, 0))
	assert.Equal(t, 1, calls)
}

func TestUntilSatisfiedAfterPolling(t *testing.T) {
	calls := 0
	cond := Func("true on third try", func() (bool, error) {
		calls++
		return calls >= 3, nil
	})

	require.NoError(t, Until(cond, 5*time.Second))
	assert.Equal(t, 3, calls)
}

func TestUntilTimeoutReturnsNotReadyError(t *testing.T) {
	cond := Func("never true", func() (bool, error) { return false, nil })

	err := Until(cond, 2*PollInterval)
	require.Error(t, err)

	var nre *NotReadyError
	require.ErrorAs(t, err, &nre)
	assert.Equal(t, "never true", nre.Condition)
	assert.Equal(t, 2*PollInterval, nre.Timeout)
	assert.GreaterOrEqual(t, nre.Elapsed, nre.Timeout)
}

func TestUntilPropagatesEvaluationError(t *testing.T) {
	boom := errors.New("page gone")
	calls := 0
	cond := Func("broken", func() (bool, error) {
		calls++
		return false, boom
	})

	err := Until(cond, 5*time.Second)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls, "evaluation errors must abort immediately")

	var nre *NotReadyError
	assert.False(t, errors.As(err, &nre))
}

func TestProbePresent(t *testing.T) {
	cond := Func("present", func() (bool, error) { return true, nil })

	present, err := Probe(cond, time.Second)
	require.NoError(t, err)
	assert.True(t, present)
}

func TestProbeAbsentIsNotAnError(t *testing.T) {
	cond := Func("absent", func() (bool, error) { return false, nil })

	present, err := Probe(cond, PollInterval)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestProbePropagatesEvaluationError(t *testing.T) {
	boom := errors.New("page gone")
	cond := Func("broken", func() (bool, error) { return false, boom })

	present, err := Probe(cond, time.Second)
	require.ErrorIs(t, err, boom)
	assert.False(t, present)
}

func TestAnySatisfiedByEitherCondition(t *testing.T) {
	no := Func("no", func() (bool, error) { return false, nil })
	yes := Func("yes", func() (bool, error) { return true, nil })

	ok, err := Any(no, yes).Satisfied()
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Any(no, no).Satisfied()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAnyShortCircuitsOnFirstMatch(t *testing.T) {
	secondEvaluated := false
	first := Func("first", func() (bool, error) { return true, nil })
	second := Func("second", func() (bool, error) {
		secondEvaluated = true
		return true, nil
	})

	ok, err := Any(first, second).Satisfied()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, secondEvaluated)
}

func TestAnyPropagatesEvaluationError(t *testing.T) {
	boom := errors.New("page gone")
	broken := Func("broken", func() (bool, error) { return false, boom })
	yes := Func("yes", func() (bool, error) { return true, nil })

	_, err := Any(broken, yes).Satisfied()
	require.ErrorIs(t, err, boom)
}

func TestAnyDescribesItsParts(t *testing.T) {
	cond := Any(
		Func("cart empty", func() (bool, error) { return false, nil }),
		Func("error shown", func() (bool, error) { return false, nil }),
	)
	assert.Contains(t, cond.Describe(), "cart empty")
	assert.Contains(t, cond.Describe(), "error shown")
}

func TestNotReadyErrorMessageNamesCondition(t *testing.T) {
	err := &NotReadyError{Condition: "visible: .page-title", Timeout: time.Second, Elapsed: time.Second}
	assert.Contains(t, err.Error(), "visible: .page-title")
}
