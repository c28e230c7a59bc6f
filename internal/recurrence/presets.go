package recurrence

import (
	"fmt"
	"strings"
	"time"

	ierr "github.com/vidinfra/recur/internal/errors"
	"github.com/vidinfra/recur/internal/types"
)

// Presets for the common billing schedules. Each returns canonical rule
// text accepted by ParseRule.

// Monthly bills on the given day of every month, clamped to the month
// end when the day does not exist
func Monthly(day int) string {
	return fmt.Sprintf("FREQ=MONTHLY;BYMONTHDAY=%d", day)
}

// Yearly bills once a year on the given month and day
func Yearly(month, day int) string {
	return fmt.Sprintf("FREQ=YEARLY;BYMONTH=%d;BYMONTHDAY=%d", month, day)
}

// Weekly bills every week on the given weekday
func Weekly(weekday types.WeekdayCode) string {
	return fmt.Sprintf("FREQ=WEEKLY;BYDAY=%s", weekday)
}

// Daily bills every interval days
func Daily(interval int) string {
	if interval <= 1 {
		return "FREQ=DAILY"
	}
	return fmt.Sprintf("FREQ=DAILY;INTERVAL=%d", interval)
}

// Quarterly bills every three months on the given day, clamped
func Quarterly(day int) string {
	return fmt.Sprintf("FREQ=MONTHLY;INTERVAL=3;BYMONTHDAY=%d", day)
}

// SemiAnnual bills every six months on the given day, clamped
func SemiAnnual(day int) string {
	return fmt.Sprintf("FREQ=MONTHLY;INTERVAL=6;BYMONTHDAY=%d", day)
}

// EndOfMonth bills on the last calendar day of every month
func EndOfMonth() string {
	return "FREQ=MONTHLY;BYMONTHDAY=-1"
}

// billingPeriodByUnit maps singular interval units to the billing
// period vocabulary
var billingPeriodByUnit = map[string]types.BillingPeriod{
	"day":   types.BILLING_PERIOD_DAILY,
	"week":  types.BILLING_PERIOD_WEEKLY,
	"month": types.BILLING_PERIOD_MONTHLY,
	"year":  types.BILLING_PERIOD_ANNUAL,
}

// FromInterval builds canonical rule text for billing every count units
// of the given unit, deriving the day constraints from the anchor date.
// Unit accepts day, week, month and year along with their plural forms.
func FromInterval(unit string, count int, anchor time.Time) (string, error) {
	normalized := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(unit)), "s")
	period, ok := billingPeriodByUnit[normalized]
	if !ok {
		return "", ierr.NewError("unknown interval unit").
			WithHintf("Unit %q is not one of day, week, month or year", unit).
			Mark(ierr.ErrValidation)
	}

	return FromBillingPeriod(period, count, anchor)
}

// FromBillingPeriod builds canonical rule text for billing every count
// periods, deriving the day constraints from the anchor date.
func FromBillingPeriod(period types.BillingPeriod, count int, anchor time.Time) (string, error) {
	if err := period.Validate(); err != nil {
		return "", err
	}
	if count < 1 {
		return "", ierr.NewError("interval count must be positive").
			WithHintf("Got interval count %d", count).
			Mark(ierr.ErrValidation)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "FREQ=%s", period.Frequency())

	if count > 1 {
		fmt.Fprintf(&sb, ";INTERVAL=%d", count)
	}

	switch period.Frequency() {
	case types.RECURRENCE_FREQUENCY_WEEKLY:
		fmt.Fprintf(&sb, ";BYDAY=%s", types.WeekdayCodeFromTime(anchor.Weekday()))
	case types.RECURRENCE_FREQUENCY_MONTHLY:
		fmt.Fprintf(&sb, ";BYMONTHDAY=%d", anchor.Day())
	case types.RECURRENCE_FREQUENCY_YEARLY:
		fmt.Fprintf(&sb, ";BYMONTH=%d;BYMONTHDAY=%d", int(anchor.Month()), anchor.Day())
	}

	return sb.String(), nil
}
