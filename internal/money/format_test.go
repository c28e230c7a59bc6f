package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDisplay(t *testing.T) {
	assert.Equal(t, "$1,234.50", mustMoney(t, "1234.5", "usd").Display())
	assert.Equal(t, "€20.00", mustMoney(t, "20", "eur").Display())
	assert.Equal(t, "₹99.99", mustMoney(t, "99.99", "inr").Display())

	// between two and four fraction digits
	assert.Equal(t, "$10.1234", mustMoney(t, "10.1234", "usd").Display())
	assert.Equal(t, "$10.00", mustMoney(t, "10", "usd").Display())
}

func TestDisplayIn_Locale(t *testing.T) {
	m := mustMoney(t, "1234.5", "eur")
	assert.Equal(t, "€1.234,50", m.DisplayIn(language.German))
	assert.Equal(t, "€1,234.50", m.DisplayIn(language.English))
}

func TestDisplayInLocale(t *testing.T) {
	m := mustMoney(t, "5", "usd")
	assert.Equal(t, "$5,00", m.DisplayInLocale("de"))
	// unparseable tags fall back to English
	assert.Equal(t, "$5.00", m.DisplayInLocale("???"))
}

func TestDisplay_LargeAmountsKeepExactDigits(t *testing.T) {
	// beyond float64 precision the exact digits win over locale grouping
	m := mustMoney(t, "90071992547409919.99", "usd")
	assert.Equal(t, "$90071992547409919.99", m.Display())

	whole := mustMoney(t, "12345678901234567890", "eur")
	assert.Equal(t, "€12345678901234567890.00", whole.DisplayIn(language.German))
}

func TestJSONRoundTrip(t *testing.T) {
	original := mustMoney(t, "10.5", "eur")

	data, err := original.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"10.5000","currency":"eur"}`, string(data))

	var restored Money
	require.NoError(t, restored.UnmarshalJSON(data))
	assert.True(t, original.Equal(restored))
}

func TestUnmarshalJSON_Invalid(t *testing.T) {
	var m Money
	assert.Error(t, m.UnmarshalJSON([]byte(`{"amount":"abc","currency":"usd"}`)))
	assert.Error(t, m.UnmarshalJSON([]byte(`"10.00"`)))
}
