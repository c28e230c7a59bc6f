package recurrence

import (
	"time"

	"github.com/teambition/rrule-go"

	ierr "github.com/vidinfra/recur/internal/errors"
	"github.com/vidinfra/recur/internal/types"
)

var rruleFrequencies = map[types.RecurrenceFrequency]rrule.Frequency{
	types.RECURRENCE_FREQUENCY_DAILY:   rrule.DAILY,
	types.RECURRENCE_FREQUENCY_WEEKLY:  rrule.WEEKLY,
	types.RECURRENCE_FREQUENCY_MONTHLY: rrule.MONTHLY,
	types.RECURRENCE_FREQUENCY_YEARLY:  rrule.YEARLY,
}

var rruleWeekdays = map[types.WeekdayCode]rrule.Weekday{
	types.WEEKDAY_MONDAY:    rrule.MO,
	types.WEEKDAY_TUESDAY:   rrule.TU,
	types.WEEKDAY_WEDNESDAY: rrule.WE,
	types.WEEKDAY_THURSDAY:  rrule.TH,
	types.WEEKDAY_FRIDAY:    rrule.FR,
	types.WEEKDAY_SATURDAY:  rrule.SA,
	types.WEEKDAY_SUNDAY:    rrule.SU,
}

// genericGenerator delegates every rule shape without special-cased
// semantics to standard calendar expansion via rrule-go.
type genericGenerator struct {
	rule Rule
}

// normalizeAnchor pins the expansion start to noon UTC so that
// daylight-saving transitions can never shift the emitted calendar day
func normalizeAnchor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}

func (g genericGenerator) expander(anchor time.Time) (*rrule.RRule, error) {
	opt := rrule.ROption{
		Freq:     rruleFrequencies[g.rule.Frequency],
		Interval: g.rule.Interval,
		Dtstart:  normalizeAnchor(anchor),
	}
	if g.rule.Count != nil {
		opt.Count = *g.rule.Count
	}
	if g.rule.ByMonth != nil {
		opt.Bymonth = []int{*g.rule.ByMonth}
	}
	if g.rule.ByMonthDay != nil {
		opt.Bymonthday = []int{*g.rule.ByMonthDay}
	}
	if g.rule.ByDay != nil {
		opt.Byweekday = []rrule.Weekday{rruleWeekdays[*g.rule.ByDay]}
	}

	r, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Rule could not be expanded").
			Mark(ierr.ErrInvalidRule)
	}
	return r, nil
}

func (g genericGenerator) occurrencesFrom(anchor time.Time, bound walkBound) []time.Time {
	r, err := g.expander(anchor)
	if err != nil {
		return nil
	}

	limit := capCount(g.rule, bound)
	if limit == 0 && bound.until == nil {
		// unbounded expansion is the caller's bug, not a hang
		return nil
	}

	var dates []time.Time
	iter := r.Iterator()
	for {
		if limit > 0 && len(dates) >= limit {
			break
		}
		instant, ok := iter()
		if !ok {
			break
		}
		candidate := dateOf(instant)
		if bound.until != nil && candidate.After(*bound.until) {
			break
		}
		if candidate.Before(dateOf(anchor)) {
			continue
		}
		dates = append(dates, candidate)
	}

	return dates
}

func (g genericGenerator) next(ref time.Time) (time.Time, bool) {
	r, err := g.expander(ref)
	if err != nil {
		return time.Time{}, false
	}

	instant := r.After(normalizeAnchor(ref), false)
	if instant.IsZero() {
		return time.Time{}, false
	}
	return dateOf(instant), true
}

// matches checks the date's calendar shape against the rule's BYxxx
// constraints. Like the clamped monthly path it does not verify
// interval phase, there is no anchor to verify against.
func (g genericGenerator) matches(date time.Time) bool {
	switch g.rule.Frequency {
	case types.RECURRENCE_FREQUENCY_WEEKLY:
		return g.rule.ByDay == nil || date.Weekday() == g.rule.ByDay.Weekday()
	case types.RECURRENCE_FREQUENCY_YEARLY:
		if g.rule.ByMonth != nil && int(date.Month()) != *g.rule.ByMonth {
			return false
		}
		if g.rule.ByMonthDay != nil {
			day := *g.rule.ByMonthDay
			if day < 0 {
				day = lastDayOfMonth(date.Year(), date.Month()) + day + 1
			}
			return date.Day() == day
		}
		return true
	default:
		// DAILY and plain MONTHLY carry no day shape to check
		return true
	}
}
