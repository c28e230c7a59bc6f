package recurrence

import (
	"time"

	"github.com/vidinfra/recur/internal/types"
)

// walkBound limits an occurrence walk. A zero count means unbounded by
// count, a nil until means unbounded by date. The rule's own COUNT cap
// applies on top of either.
type walkBound struct {
	count int
	until *time.Time
}

// generator is one occurrence generation strategy. All strategies emit
// calendar dates as midnight UTC instants in strictly ascending order.
type generator interface {
	// occurrencesFrom returns occurrences on or after anchor until the
	// bound is exhausted. Candidates before anchor are skipped, not
	// emitted.
	occurrencesFrom(anchor time.Time, bound walkBound) []time.Time

	// next returns the first occurrence strictly after ref, or false
	// when the rule's COUNT cap leaves no later occurrence.
	next(ref time.Time) (time.Time, bool)

	// matches reports whether date's calendar shape satisfies the rule.
	// Interval phase relative to an anchor is not checked.
	matches(date time.Time) bool
}

// generatorFor selects the strategy for a rule's shape. The month-end
// clamped walk takes priority over generic expansion whenever a monthly
// rule carries a BYMONTHDAY, and the leap-day special case owns
// FREQ=YEARLY;BYMONTH=2;BYMONTHDAY=29 outright.
func generatorFor(rule Rule) generator {
	switch {
	case rule.Frequency == types.RECURRENCE_FREQUENCY_MONTHLY && rule.ByMonthDay != nil:
		return clampedMonthlyGenerator{rule: rule}
	case rule.Frequency == types.RECURRENCE_FREQUENCY_YEARLY && rule.isLeapDayRule():
		return leapDayYearlyGenerator{rule: rule}
	default:
		return genericGenerator{rule: rule}
	}
}

func (r Rule) isLeapDayRule() bool {
	return r.ByMonth != nil && *r.ByMonth == 2 &&
		r.ByMonthDay != nil && *r.ByMonthDay == 29
}

// dateOf truncates an instant to its calendar date as midnight UTC
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// lastDayOfMonth returns the number of days in the month, which handles
// leap year February automatically
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// isLeapYear reports whether year has a February 29
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// capCount folds the rule's COUNT cap into a bound's count limit
func capCount(rule Rule, bound walkBound) int {
	limit := bound.count
	if rule.Count != nil && (limit == 0 || *rule.Count < limit) {
		limit = *rule.Count
	}
	return limit
}
