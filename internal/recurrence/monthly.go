package recurrence

import "time"

// clampedMonthlyGenerator walks months by the rule interval and clamps
// the target day into each month. The business rule is bill on day D or
// the month's last day when D does not exist, which diverges from RFC
// 5545 semantics of skipping months without the literal day. That is
// why this path cannot delegate to the generic expansion.
type clampedMonthlyGenerator struct {
	rule Rule
}

// targetDay computes the clamped billing day for a given month.
// Non-positive BYMONTHDAY counts back from the month end, a positive
// day beyond the month end clamps down to the last day.
func (g clampedMonthlyGenerator) targetDay(year int, month time.Month) int {
	last := lastDayOfMonth(year, month)
	day := *g.rule.ByMonthDay

	switch {
	case day <= 0:
		day = last + day + 1
		if day < 1 {
			day = 1
		}
	case day > last:
		day = last
	}

	return day
}

// advance moves a (year, month) cursor forward by the rule interval,
// rolling the year whenever the month overflows December
func (g clampedMonthlyGenerator) advance(year int, month time.Month) (int, time.Month) {
	m := int(month) + g.rule.Interval
	for m > 12 {
		m -= 12
		year++
	}
	return year, time.Month(m)
}

func (g clampedMonthlyGenerator) occurrencesFrom(anchor time.Time, bound walkBound) []time.Time {
	var dates []time.Time

	limit := capCount(g.rule, bound)
	start := dateOf(anchor)
	year, month := start.Year(), start.Month()

	for {
		if limit > 0 && len(dates) >= limit {
			break
		}

		candidate := time.Date(year, month, g.targetDay(year, month), 0, 0, 0, 0, time.UTC)
		if bound.until != nil && candidate.After(*bound.until) {
			break
		}
		if !candidate.Before(start) {
			dates = append(dates, candidate)
		}

		year, month = g.advance(year, month)
	}

	return dates
}

// next clamps into the month containing ref and advances exactly one
// extra interval step when that first candidate is not strictly after
// ref. One retry always suffices, the stepped month is strictly later
// so its clamped day is strictly later too. Each candidate consumes one
// occurrence of the rule's COUNT cap, anchored at ref's month.
func (g clampedMonthlyGenerator) next(ref time.Time) (time.Time, bool) {
	refDate := dateOf(ref)
	year, month := refDate.Year(), refDate.Month()

	occurrence := 1
	candidate := time.Date(year, month, g.targetDay(year, month), 0, 0, 0, 0, time.UTC)
	if !candidate.After(refDate) {
		year, month = g.advance(year, month)
		candidate = time.Date(year, month, g.targetDay(year, month), 0, 0, 0, 0, time.UTC)
		occurrence++
	}

	if g.rule.Count != nil && occurrence > *g.rule.Count {
		return time.Time{}, false
	}
	return candidate, true
}

// matches compares date's day against the clamped target day of date's
// own month. It does not replay the interval walk from an anchor, so a
// date in a month the walk would skip can still match.
func (g clampedMonthlyGenerator) matches(date time.Time) bool {
	return date.Day() == g.targetDay(date.Year(), date.Month())
}
