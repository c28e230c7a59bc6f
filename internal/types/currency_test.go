package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCurrencyConfig(t *testing.T) {
	usd := GetCurrencyConfig("usd")
	assert.Equal(t, "$", usd.Symbol)
	assert.Equal(t, int32(2), usd.Precision)

	// codes are normalized
	assert.Equal(t, "$", GetCurrencySymbol("USD"))
	assert.Equal(t, "€", GetCurrencySymbol(" eur "))

	// zero decimal currency
	assert.Equal(t, int32(0), GetCurrencyPrecision("jpy"))

	// unknown codes fall back to the code itself with default precision
	unknown := GetCurrencyConfig("xyz")
	assert.Equal(t, "XYZ", unknown.Symbol)
	assert.Equal(t, DEFAULT_CURRENCY_PRECISION, unknown.Precision)
}

func TestIsValidCurrencyCode(t *testing.T) {
	assert.True(t, IsValidCurrencyCode("usd"))
	assert.True(t, IsValidCurrencyCode("EUR"))
	assert.False(t, IsValidCurrencyCode(""))
	assert.False(t, IsValidCurrencyCode("us"))
	assert.False(t, IsValidCurrencyCode("usdd"))
	assert.False(t, IsValidCurrencyCode("u1d"))
}
