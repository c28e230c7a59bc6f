package money

import (
	"encoding/json"

	ierr "github.com/vidinfra/recur/internal/errors"
)

// wireMoney is the boundary form of a Money value, a fixed 4 decimal
// place amount string plus the currency code
type wireMoney struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireMoney{
		Amount:   m.String(),
		Currency: m.currency,
	})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var wire wireMoney
	if err := json.Unmarshal(data, &wire); err != nil {
		return ierr.WithError(err).
			WithHint("Money must be an object with amount and currency").
			Mark(ierr.ErrValidation)
	}

	parsed, err := NewFromString(wire.Amount, wire.Currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
