package types

import "strings"

// CurrencyConfig holds the formatting configuration for a currency
type CurrencyConfig struct {
	// Symbol is the display symbol ex $ for usd
	Symbol string
	// Precision is the number of decimal places used when rounding
	// amounts for display or storage in the currency
	Precision int32
}

// currencyConfigs is a map of 3 letter ISO currency codes in lowercase
// to their configuration
var currencyConfigs = map[string]CurrencyConfig{
	"usd": {Symbol: "$", Precision: 2},
	"eur": {Symbol: "€", Precision: 2},
	"gbp": {Symbol: "£", Precision: 2},
	"aud": {Symbol: "AU$", Precision: 2},
	"cad": {Symbol: "CA$", Precision: 2},
	"chf": {Symbol: "CHF", Precision: 2},
	"sek": {Symbol: "kr", Precision: 2},
	"nzd": {Symbol: "NZ$", Precision: 2},
	"hkd": {Symbol: "HK$", Precision: 2},
	"sgd": {Symbol: "S$", Precision: 2},
	"jpy": {Symbol: "¥", Precision: 0},
	"cny": {Symbol: "¥", Precision: 2},
	"inr": {Symbol: "₹", Precision: 2},
	"brl": {Symbol: "R$", Precision: 2},
	"rub": {Symbol: "₽", Precision: 2},
	"mxn": {Symbol: "MX$", Precision: 2},
	"krw": {Symbol: "₩", Precision: 0},
	"try": {Symbol: "₺", Precision: 2},
	"zar": {Symbol: "R", Precision: 2},
	"myr": {Symbol: "RM", Precision: 2},
}

// DEFAULT_CURRENCY is the currency assumed when none is provided
const DEFAULT_CURRENCY = "usd"

// DEFAULT_CURRENCY_PRECISION is the precision for unknown currencies
const DEFAULT_CURRENCY_PRECISION int32 = 2

// NormalizeCurrencyCode lowercases and trims a currency code
func NormalizeCurrencyCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// IsValidCurrencyCode reports whether code looks like a 3 letter ISO code
func IsValidCurrencyCode(code string) bool {
	code = NormalizeCurrencyCode(code)
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// GetCurrencyConfig returns the config for a currency code with
// sensible defaults for unknown codes
func GetCurrencyConfig(code string) CurrencyConfig {
	if config, ok := currencyConfigs[NormalizeCurrencyCode(code)]; ok {
		return config
	}
	return CurrencyConfig{Symbol: strings.ToUpper(code), Precision: DEFAULT_CURRENCY_PRECISION}
}

// GetCurrencySymbol returns the symbol for a given currency code
// if the code is not found, it returns the code itself
func GetCurrencySymbol(code string) string {
	return GetCurrencyConfig(code).Symbol
}

// GetCurrencyPrecision returns the rounding precision for a currency code
func GetCurrencyPrecision(code string) int32 {
	return GetCurrencyConfig(code).Precision
}
