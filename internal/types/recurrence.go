package types

import (
	"time"

	ierr "github.com/vidinfra/recur/internal/errors"
	"github.com/samber/lo"
)

// RecurrenceFrequency is the base unit of a recurrence rule ex DAILY, MONTHLY
type RecurrenceFrequency string

const (
	RECURRENCE_FREQUENCY_DAILY   RecurrenceFrequency = "DAILY"
	RECURRENCE_FREQUENCY_WEEKLY  RecurrenceFrequency = "WEEKLY"
	RECURRENCE_FREQUENCY_MONTHLY RecurrenceFrequency = "MONTHLY"
	RECURRENCE_FREQUENCY_YEARLY  RecurrenceFrequency = "YEARLY"
)

func (f RecurrenceFrequency) String() string {
	return string(f)
}

func (f RecurrenceFrequency) Validate() error {
	allowedValues := []RecurrenceFrequency{
		RECURRENCE_FREQUENCY_DAILY,
		RECURRENCE_FREQUENCY_WEEKLY,
		RECURRENCE_FREQUENCY_MONTHLY,
		RECURRENCE_FREQUENCY_YEARLY,
	}

	if !lo.Contains(allowedValues, f) {
		return ierr.NewError("invalid recurrence frequency").
			WithHint("Frequency must be one of DAILY, WEEKLY, MONTHLY or YEARLY").
			WithReportableDetails(map[string]any{
				"allowed_values": allowedValues,
				"provided_value": f,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// WeekdayCode is the two letter iCalendar weekday code ex MO, TU
type WeekdayCode string

const (
	WEEKDAY_MONDAY    WeekdayCode = "MO"
	WEEKDAY_TUESDAY   WeekdayCode = "TU"
	WEEKDAY_WEDNESDAY WeekdayCode = "WE"
	WEEKDAY_THURSDAY  WeekdayCode = "TH"
	WEEKDAY_FRIDAY    WeekdayCode = "FR"
	WEEKDAY_SATURDAY  WeekdayCode = "SA"
	WEEKDAY_SUNDAY    WeekdayCode = "SU"
)

var weekdayByCode = map[WeekdayCode]time.Weekday{
	WEEKDAY_MONDAY:    time.Monday,
	WEEKDAY_TUESDAY:   time.Tuesday,
	WEEKDAY_WEDNESDAY: time.Wednesday,
	WEEKDAY_THURSDAY:  time.Thursday,
	WEEKDAY_FRIDAY:    time.Friday,
	WEEKDAY_SATURDAY:  time.Saturday,
	WEEKDAY_SUNDAY:    time.Sunday,
}

var codeByWeekday = map[time.Weekday]WeekdayCode{
	time.Monday:    WEEKDAY_MONDAY,
	time.Tuesday:   WEEKDAY_TUESDAY,
	time.Wednesday: WEEKDAY_WEDNESDAY,
	time.Thursday:  WEEKDAY_THURSDAY,
	time.Friday:    WEEKDAY_FRIDAY,
	time.Saturday:  WEEKDAY_SATURDAY,
	time.Sunday:    WEEKDAY_SUNDAY,
}

func (w WeekdayCode) String() string {
	return string(w)
}

func (w WeekdayCode) Validate() error {
	if _, ok := weekdayByCode[w]; !ok {
		return ierr.NewError("invalid weekday code").
			WithHint("Weekday must be one of MO, TU, WE, TH, FR, SA, SU").
			WithReportableDetails(map[string]any{
				"provided_value": w,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Weekday returns the time.Weekday for the code. Validate first.
func (w WeekdayCode) Weekday() time.Weekday {
	return weekdayByCode[w]
}

// WeekdayCodeFromTime returns the code for a time.Weekday
func WeekdayCodeFromTime(d time.Weekday) WeekdayCode {
	return codeByWeekday[d]
}

// BillingPeriod is the billing period vocabulary used by callers
// ex MONTHLY, ANNUAL, WEEKLY, DAILY
type BillingPeriod string

const (
	BILLING_PERIOD_MONTHLY BillingPeriod = "MONTHLY"
	BILLING_PERIOD_ANNUAL  BillingPeriod = "ANNUAL"
	BILLING_PERIOD_WEEKLY  BillingPeriod = "WEEKLY"
	BILLING_PERIOD_DAILY   BillingPeriod = "DAILY"
)

func (p BillingPeriod) Validate() error {
	allowedValues := []BillingPeriod{
		BILLING_PERIOD_MONTHLY,
		BILLING_PERIOD_ANNUAL,
		BILLING_PERIOD_WEEKLY,
		BILLING_PERIOD_DAILY,
	}

	if !lo.Contains(allowedValues, p) {
		return ierr.NewError("invalid billing period").
			WithHint("Billing period must be one of MONTHLY, ANNUAL, WEEKLY or DAILY").
			WithReportableDetails(map[string]any{
				"allowed_values": allowedValues,
				"provided_value": p,
			}).
			Mark(ierr.ErrValidation)
	}

	return nil
}

// Frequency maps the billing period to its recurrence frequency
func (p BillingPeriod) Frequency() RecurrenceFrequency {
	switch p {
	case BILLING_PERIOD_ANNUAL:
		return RECURRENCE_FREQUENCY_YEARLY
	case BILLING_PERIOD_WEEKLY:
		return RECURRENCE_FREQUENCY_WEEKLY
	case BILLING_PERIOD_DAILY:
		return RECURRENCE_FREQUENCY_DAILY
	default:
		return RECURRENCE_FREQUENCY_MONTHLY
	}
}
