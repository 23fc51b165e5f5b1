package utils

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SupportedCurrencies are the 11 display currencies. All stored amounts are JPY.
var SupportedCurrencies = []string{
	"JPY", "USD", "CNY", "KRW", "TWD", "HKD", "THB", "AUD", "SGD", "GBP", "EUR",
}

// Currencies rendered without fractional digits.
var zeroDecimalCurrencies = map[string]bool{
	"JPY": true,
	"KRW": true,
	"VND": true,
	"IDR": true,
}

var currencySymbols = map[string]string{
	"JPY": "¥",
	"USD": "$",
	"CNY": "CN¥",
	"KRW": "₩",
	"TWD": "NT$",
	"HKD": "HK$",
	"THB": "฿",
	"AUD": "A$",
	"SGD": "S$",
	"GBP": "£",
	"EUR": "€",
}

var pricePrinter = message.NewPrinter(language.English)

// IsSupportedCurrency reports whether code is one of the 11 display currencies.
func IsSupportedCurrency(code string) bool {
	for _, c := range SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

// FormatPrice converts a JPY amount into the given currency and formats it.
// A missing rate falls back to 1, so the amount renders as-is in the
// requested currency (e.g. before rates have been fetched).
func FormatPrice(amountJPY float64, code string, rates map[string]float64) string {
	rate := 1.0
	if r, ok := rates[code]; ok {
		rate = r
	}
	amount := decimal.NewFromFloat(amountJPY).Mul(decimal.NewFromFloat(rate))

	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code + " "
	}

	if zeroDecimalCurrencies[code] {
		return symbol + pricePrinter.Sprintf("%d", amount.Round(0).IntPart())
	}
	value, _ := amount.Round(2).Float64()
	return symbol + pricePrinter.Sprintf("%.2f", value)
}
