package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/vidinfra/recur/internal/types"
)

// Display fraction digit bounds for formatted amounts
const (
	displayMinFractionDigits = 2
	displayMaxFractionDigits = 4
)

// Display returns the amount formatted for display in English with the
// currency symbol, ex "$1,234.50"
func (m Money) Display() string {
	return m.DisplayIn(language.English)
}

// DisplayIn returns the amount formatted for the given locale with the
// currency symbol and two to four fraction digits. Amounts too large to
// round trip through float64 at display precision keep their exact
// digits and give up locale grouping rather than show wrong ones.
func (m Money) DisplayIn(tag language.Tag) string {
	rounded := m.amount.Round(displayMaxFractionDigits)

	amount, _ := rounded.Float64()
	if !decimal.NewFromFloat(amount).Round(displayMaxFractionDigits).Equal(rounded) {
		places := -rounded.Exponent()
		if places < displayMinFractionDigits {
			places = displayMinFractionDigits
		}
		return types.GetCurrencySymbol(m.currency) + rounded.StringFixed(places)
	}

	printer := message.NewPrinter(tag)
	return printer.Sprintf("%s%v",
		types.GetCurrencySymbol(m.currency),
		number.Decimal(amount,
			number.MinFractionDigits(displayMinFractionDigits),
			number.MaxFractionDigits(displayMaxFractionDigits),
		),
	)
}

// DisplayInLocale is a convenience for callers holding a BCP 47 tag as
// a string, ex from configuration. Unparseable tags fall back to
// English.
func (m Money) DisplayInLocale(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return m.DisplayIn(tag)
}
