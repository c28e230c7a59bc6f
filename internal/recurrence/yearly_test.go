package recurrence

import (
	"testing"
	"time"
)

func TestNextDates_LeapDayYearly(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		count int
		want  []time.Time
	}{
		{
			name:  "from a leap day",
			start: date(2024, time.February, 29),
			count: 3,
			want: []time.Time{
				date(2024, time.February, 29),
				date(2028, time.February, 29),
				date(2032, time.February, 29),
			},
		},
		{
			name:  "from a non leap year skips ahead",
			start: date(2025, time.January, 1),
			count: 2,
			want: []time.Time{
				date(2028, time.February, 29),
				date(2032, time.February, 29),
			},
		},
		{
			name:  "century non leap year is skipped",
			start: date(2096, time.January, 1),
			count: 2,
			want: []time.Time{
				date(2096, time.February, 29),
				date(2104, time.February, 29),
			},
		},
	}

	rule := "FREQ=YEARLY;BYMONTH=2;BYMONTHDAY=29"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextDates(rule, tt.start, tt.count)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertDates(t, got, tt.want)
		})
	}
}

func TestNextDate_LeapDayYearly(t *testing.T) {
	rule := "FREQ=YEARLY;BYMONTH=2;BYMONTHDAY=29"

	got, err := NextDate(rule, date(2024, time.February, 29))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || !got.Equal(date(2028, time.February, 29)) {
		t.Errorf("got %v, want 2028-02-29", got)
	}

	got, err = NextDate(rule, date(2025, time.June, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || !got.Equal(date(2028, time.February, 29)) {
		t.Errorf("got %v, want 2028-02-29", got)
	}
}

// An interval stepping only through odd years can never land on a leap
// year. The walk must terminate and report no occurrence instead of
// scanning forever.
func TestNextDate_LeapDayYearlyUnreachableInterval(t *testing.T) {
	rule := "FREQ=YEARLY;BYMONTH=2;BYMONTHDAY=29;INTERVAL=2"

	got, err := NextDate(rule, date(2025, time.January, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("got %s, want none", got.Format("2006-01-02"))
	}
}

func TestBetween_LeapDayYearly(t *testing.T) {
	rule := "FREQ=YEARLY;BYMONTH=2;BYMONTHDAY=29"

	got, err := Between(rule, date(2024, time.January, 1), date(2033, time.December, 31))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDates(t, got, []time.Time{
		date(2024, time.February, 29),
		date(2028, time.February, 29),
		date(2032, time.February, 29),
	})
}

func TestMatches_LeapDayYearly(t *testing.T) {
	rule := "FREQ=YEARLY;BYMONTH=2;BYMONTHDAY=29"

	matched, err := Matches(rule, date(2024, time.February, 29))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !matched {
		t.Errorf("expected leap day to match")
	}

	// never clamped to February 28
	matched, err = Matches(rule, date(2025, time.February, 28))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matched {
		t.Errorf("expected February 28 not to match")
	}
}
