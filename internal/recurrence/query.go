package recurrence

import (
	"time"

	ierr "github.com/vidinfra/recur/internal/errors"
)

// NextDates returns the next n occurrence dates of the rule starting at
// start (inclusive when start itself is an occurrence). The rule's own
// COUNT cap can shorten the result below n.
func NextDates(ruleText string, start time.Time, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, ierr.NewError("occurrence count must be positive").
			WithHintf("Requested %d occurrences", n).
			Mark(ierr.ErrValidation)
	}

	rule, err := ParseRule(ruleText)
	if err != nil {
		return nil, err
	}

	return generatorFor(rule).occurrencesFrom(start, walkBound{count: n}), nil
}

// NextDate returns the first occurrence strictly after the given
// reference date, or nil when the rule's COUNT cap leaves none.
func NextDate(ruleText string, after time.Time) (*time.Time, error) {
	rule, err := ParseRule(ruleText)
	if err != nil {
		return nil, err
	}

	date, ok := generatorFor(rule).next(after)
	if !ok {
		return nil, nil
	}
	return &date, nil
}

// Matches reports whether the date's calendar shape satisfies the rule.
// For interval rules this does not verify that the date lies on an
// interval-aligned boundary from any anchor, so it can accept dates the
// occurrence walk would never emit.
func Matches(ruleText string, date time.Time) (bool, error) {
	rule, err := ParseRule(ruleText)
	if err != nil {
		return false, err
	}

	return generatorFor(rule).matches(date), nil
}

// Between returns every occurrence inside the inclusive [start, end]
// window. Candidates before start are skipped without terminating the
// walk, the walk stops once a candidate passes end.
func Between(ruleText string, start, end time.Time) ([]time.Time, error) {
	rule, err := ParseRule(ruleText)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, ierr.NewError("invalid date window").
			WithHint("Window end must not be before window start").
			WithReportableDetails(map[string]any{
				"start": start,
				"end":   end,
			}).
			Mark(ierr.ErrValidation)
	}

	until := dateOf(end)
	return generatorFor(rule).occurrencesFrom(start, walkBound{until: &until}), nil
}
