package money

import (
	"github.com/shopspring/decimal"

	ierr "github.com/vidinfra/recur/internal/errors"
	"github.com/vidinfra/recur/internal/types"
)

// StorageDecimalPlaces is the fixed number of decimal places in the
// canonical string form. This is the only form persisted or exchanged
// across the boundary.
const StorageDecimalPlaces int32 = 4

// Money is an immutable currency-safe amount. The amount is an exact
// decimal, never binary floating point, and the currency is fixed at
// construction. Every operation returns a new value.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// New creates a Money value. An empty currency falls back to the
// default currency.
func New(amount decimal.Decimal, currency string) Money {
	return Money{amount: amount, currency: normalize(currency)}
}

// NewFromString creates a Money value from a decimal formatted string
func NewFromString(amount string, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, ierr.WithError(err).
			WithHintf("Amount %q is not a valid decimal", amount).
			Mark(ierr.ErrValidation)
	}
	return New(d, currency), nil
}

// NewFromFloat creates a Money value from a numeric literal
func NewFromFloat(amount float64, currency string) Money {
	return New(decimal.NewFromFloat(amount), currency)
}

// Zero returns the zero amount in the given currency
func Zero(currency string) Money {
	return New(decimal.Zero, currency)
}

func normalize(currency string) string {
	code := types.NormalizeCurrencyCode(currency)
	if code == "" {
		return types.DEFAULT_CURRENCY
	}
	return code
}

// Amount returns the exact decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the lowercase 3 letter currency code
func (m Money) Currency() string {
	return m.currency
}

func (m Money) checkCurrency(other Money) error {
	if m.currency != other.currency {
		return ierr.NewError("currency mismatch").
			WithHintf("Cannot combine %s with %s", m.currency, other.currency).
			WithReportableDetails(map[string]any{
				"left_currency":  m.currency,
				"right_currency": other.currency,
			}).
			Mark(ierr.ErrCurrencyMismatch)
	}
	return nil
}

// Add returns m + other. Fails when the currencies differ, amounts are
// never silently converted.
func (m Money) Add(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Sub returns m - other. Fails when the currencies differ.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.checkCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

// Mul returns m scaled by a dimensionless factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor), currency: m.currency}
}

// Div returns m divided by a dimensionless divisor
func (m Money) Div(divisor decimal.Decimal) (Money, error) {
	if divisor.IsZero() {
		return Money{}, ierr.NewError("division by zero").
			WithHint("Divisor must not be zero").
			Mark(ierr.ErrInvalidOperation)
	}
	return Money{amount: m.amount.Div(divisor), currency: m.currency}, nil
}

// Percent returns the given percentage of m, ex Percent(10) is 10% of m
func (m Money) Percent(percent decimal.Decimal) Money {
	return Money{
		amount:   m.amount.Mul(percent).Div(decimal.NewFromInt(100)),
		currency: m.currency,
	}
}

// Sum adds a collection of Money values. An empty collection sums to
// zero in the default currency by convention. Any element whose
// currency differs from the first fails the whole sum.
func Sum(values []Money) (Money, error) {
	if len(values) == 0 {
		return Zero(types.DEFAULT_CURRENCY), nil
	}

	total := values[0]
	for _, v := range values[1:] {
		added, err := total.Add(v)
		if err != nil {
			return Money{}, err
		}
		total = added
	}
	return total, nil
}

// Round rounds the amount to the given number of decimal places using
// half-up rounding, ex 0.335 rounds to 0.34 at two places
func (m Money) Round(places int32) Money {
	return Money{amount: m.amount.Round(places), currency: m.currency}
}

// RoundToCurrency rounds the amount to the currency's own precision
func (m Money) RoundToCurrency() Money {
	return m.Round(types.GetCurrencyPrecision(m.currency))
}

// Cmp three-way compares two amounts, -1 when m is smaller, 0 when
// equal, 1 when larger. Fails when the currencies differ.
func (m Money) Cmp(other Money) (int, error) {
	if err := m.checkCurrency(other); err != nil {
		return 0, err
	}
	return m.amount.Cmp(other.amount), nil
}

// Equal reports whether two Money values have the same currency and
// the same amount
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than zero
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative reports whether the amount is less than zero
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// String returns the canonical fixed 4 decimal place form used for
// storage round trips, ex "10.0000"
func (m Money) String() string {
	return m.amount.StringFixed(StorageDecimalPlaces)
}
