package recurrence

import "time"

// leapYearScanLimit bounds the year walk so that a rule whose interval
// never lands on a leap year (ex every 2 years starting from an odd
// year) terminates instead of scanning forever. Leap years repeat on a
// 400 year cycle, so two full cycles is conclusive for any interval.
const leapYearScanLimit = 800

// leapDayYearlyGenerator handles the FREQ=YEARLY;BYMONTH=2;BYMONTHDAY=29
// special case. It emits February 29 only in leap years and skips
// non-leap years entirely. Unlike the monthly walk this never clamps
// to February 28.
type leapDayYearlyGenerator struct {
	rule Rule
}

func (g leapDayYearlyGenerator) occurrencesFrom(anchor time.Time, bound walkBound) []time.Time {
	var dates []time.Time

	limit := capCount(g.rule, bound)
	start := dateOf(anchor)

	for year, scanned := start.Year(), 0; scanned < leapYearScanLimit; year, scanned = year+g.rule.Interval, scanned+1 {
		if limit > 0 && len(dates) >= limit {
			break
		}
		if !isLeapYear(year) {
			continue
		}

		candidate := time.Date(year, time.February, 29, 0, 0, 0, 0, time.UTC)
		if bound.until != nil && candidate.After(*bound.until) {
			break
		}
		if !candidate.Before(start) {
			dates = append(dates, candidate)
		}
	}

	return dates
}

func (g leapDayYearlyGenerator) next(ref time.Time) (time.Time, bool) {
	refDate := dateOf(ref)

	emitted := 0
	for year, scanned := refDate.Year(), 0; scanned < leapYearScanLimit; year, scanned = year+g.rule.Interval, scanned+1 {
		if !isLeapYear(year) {
			continue
		}

		candidate := time.Date(year, time.February, 29, 0, 0, 0, 0, time.UTC)
		emitted++
		if g.rule.Count != nil && emitted > *g.rule.Count {
			return time.Time{}, false
		}
		if candidate.After(refDate) {
			return candidate, true
		}
	}

	return time.Time{}, false
}

// matches is true only for an actual February 29, which by construction
// only exists in leap years
func (g leapDayYearlyGenerator) matches(date time.Time) bool {
	return date.Month() == time.February && date.Day() == 29
}
