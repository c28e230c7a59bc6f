package recurrence

import (
	"strconv"
	"strings"

	ierr "github.com/vidinfra/recur/internal/errors"
	"github.com/vidinfra/recur/internal/types"
)

// Rule is a parsed recurrence rule. It is an immutable value re-derived
// from its text form on every query, never cached or persisted.
type Rule struct {
	// Frequency is the base unit of the recurrence ex MONTHLY
	Frequency types.RecurrenceFrequency

	// Interval is the multiplier on the frequency, every N units.
	// Defaults to 1 when absent from the rule text.
	Interval int

	// ByMonthDay is the day of month constraint. Positive values are
	// literal days, zero and negative values count back from the last
	// day of the month (-1 is the last day).
	ByMonthDay *int

	// ByMonth is the 1-12 month constraint used by yearly rules
	ByMonth *int

	// ByDay is the weekday constraint used by weekly rules
	ByDay *types.WeekdayCode

	// Count caps the total number of occurrences the rule produces
	Count *int
}

// Rule text keys. Unrecognized keys are ignored by the parser.
const (
	keyFreq       = "FREQ"
	keyInterval   = "INTERVAL"
	keyByMonthDay = "BYMONTHDAY"
	keyByMonth    = "BYMONTH"
	keyByDay      = "BYDAY"
	keyCount      = "COUNT"
)

// ParseRule parses a semicolon separated KEY=VALUE rule string into a
// Rule. It fails when the input is empty or carries no recognizable
// FREQ, and when a recognized key carries a malformed value. Key order
// is irrelevant and unknown keys are skipped.
func ParseRule(text string) (Rule, error) {
	rule := Rule{Interval: 1}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return rule, ierr.NewError("empty recurrence rule").
			WithHint("Recurrence rule text must not be empty").
			Mark(ierr.ErrInvalidRule)
	}

	seenFreq := false
	for _, segment := range strings.Split(trimmed, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}

		key, value, found := strings.Cut(segment, "=")
		if !found {
			continue
		}
		key = strings.ToUpper(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case keyFreq:
			freq := types.RecurrenceFrequency(strings.ToUpper(value))
			if err := freq.Validate(); err != nil {
				return rule, ierr.WithError(err).
					WithHintf("Unrecognized FREQ value %q", value).
					Mark(ierr.ErrInvalidRule)
			}
			rule.Frequency = freq
			seenFreq = true

		case keyInterval:
			interval, err := parseRuleInt(key, value, 1, 0)
			if err != nil {
				return rule, err
			}
			rule.Interval = interval

		case keyByMonthDay:
			day, err := parseRuleInt(key, value, -31, 31)
			if err != nil {
				return rule, err
			}
			if day == 0 {
				return rule, ierr.NewError("rule value out of range").
					WithHint("BYMONTHDAY must not be zero").
					Mark(ierr.ErrInvalidRule)
			}
			rule.ByMonthDay = &day

		case keyByMonth:
			month, err := parseRuleInt(key, value, 1, 12)
			if err != nil {
				return rule, err
			}
			rule.ByMonth = &month

		case keyByDay:
			weekday := types.WeekdayCode(strings.ToUpper(value))
			if err := weekday.Validate(); err != nil {
				return rule, ierr.WithError(err).
					WithHintf("Unrecognized BYDAY value %q", value).
					Mark(ierr.ErrInvalidRule)
			}
			rule.ByDay = &weekday

		case keyCount:
			count, err := parseRuleInt(key, value, 1, 0)
			if err != nil {
				return rule, err
			}
			rule.Count = &count
		}
	}

	if !seenFreq {
		return rule, ierr.NewError("recurrence rule has no frequency").
			WithHint("Rule text must contain a FREQ key with one of DAILY, WEEKLY, MONTHLY or YEARLY").
			WithReportableDetails(map[string]any{
				"rule": text,
			}).
			Mark(ierr.ErrInvalidRule)
	}

	return rule, nil
}

// parseRuleInt parses an integer rule value and enforces an inclusive
// range. A max of 0 with a positive min means no upper limit.
func parseRuleInt(key, value string, min, max int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHintf("%s must be an integer, got %q", key, value).
			Mark(ierr.ErrInvalidRule)
	}
	if n < min || (max != 0 && n > max) {
		return 0, ierr.NewError("rule value out of range").
			WithHintf("%s value %d is out of range", key, n).
			WithReportableDetails(map[string]any{
				"key":   key,
				"value": n,
			}).
			Mark(ierr.ErrInvalidRule)
	}
	return n, nil
}

// ValidationResult is the outcome of a non-throwing rule pre-flight check
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// Validate attempts to parse the rule text and reports the outcome
// without ever returning an error. This is the only place a parse
// failure is swallowed.
func Validate(text string) ValidationResult {
	if _, err := ParseRule(text); err != nil {
		msg := ierr.Hint(err)
		if msg == "" {
			msg = err.Error()
		}
		return ValidationResult{Valid: false, Error: msg}
	}
	return ValidationResult{Valid: true}
}
