package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSupportedCurrency(t *testing.T) {
	assert.True(t, IsSupportedCurrency("JPY"))
	assert.True(t, IsSupportedCurrency("TWD"))
	assert.False(t, IsSupportedCurrency("VND"))
	assert.False(t, IsSupportedCurrency("jpy"))
	assert.False(t, IsSupportedCurrency(""))
}

func TestFormatPrice(t *testing.T) {
	rates := map[string]float64{
		"JPY": 1,
		"USD": 0.0067,
		"KRW": 9.1,
		"EUR": 0.0061,
	}

	assert.Equal(t, "¥1,000", FormatPrice(1000, "JPY", rates))
	assert.Equal(t, "$6.70", FormatPrice(1000, "USD", rates))
	// Zero-decimal currency rounds to a whole amount with grouping.
	assert.Equal(t, "₩9,100", FormatPrice(1000, "KRW", rates))
	assert.Equal(t, "€6.10", FormatPrice(1000, "EUR", rates))
}

func TestFormatPriceMissingRateDefaultsToOne(t *testing.T) {
	assert.Equal(t, "$1,000.00", FormatPrice(1000, "USD", map[string]float64{}))
	assert.Equal(t, "¥500", FormatPrice(500, "JPY", nil))
}

func TestFormatPriceUnknownSymbolFallsBackToCode(t *testing.T) {
	got := FormatPrice(100, "XYZ", map[string]float64{"XYZ": 1})
	assert.Equal(t, "XYZ 100.00", got)
}
