package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		code     string
		expected string
	}{
		{"cad with grouping", 1234.5, "CAD", "$1,234.50"},
		{"usd", 12.5, "USD", "$12.50"},
		{"gbp", 12.5, "GBP", "£12.50"},
		{"hkd prefixed symbol", 12.5, "HKD", "HK$12.50"},
		{"jpy zero decimals rounds half up", 12.5, "JPY", "¥13"},
		{"jpy zero", 0, "JPY", "¥0"},
		{"eur suffix symbol", 1234.5, "EUR", "1.234,50 €"},
		{"brl symbol with space", 12.5, "BRL", "R$ 12,50"},
		{"inr lakh grouping", 1234567.89, "INR", "₹12,34,567.89"},
		{"inr small amount", 999.0, "INR", "₹999.00"},
		{"unknown code falls back", 12.5, "XYZ", "XYZ 12.50"},
		{"lowercase code accepted", 12.5, "usd", "$12.50"},
		{"negative", -12.5, "USD", "-$12.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.amount, tt.code))
		})
	}
}

func TestFormatCurrency_RoundsHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, "$0.35", FormatCurrency(0.345, "USD"))
	assert.Equal(t, "¥2", FormatCurrency(1.5, "JPY"))
}

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "$", CurrencySymbol("USD"))
	assert.Equal(t, "HK$", CurrencySymbol("HKD"))
	assert.Equal(t, "₹", CurrencySymbol("INR"))
	assert.Equal(t, "ABC", CurrencySymbol("abc"))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, time.August, 15, 19, 30, 0, 0, time.UTC)
	assert.Equal(t, "Aug 15, 2025, 7:30 PM", FormatDate(ts))
	assert.Equal(t, "7:30 PM", FormatTime(ts))
}

func TestFormatMonthDay(t *testing.T) {
	ts := time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC)
	md := FormatMonthDay(ts)
	assert.Equal(t, "AUG", md.Month)
	assert.Equal(t, "5", md.Day)
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AL", Initials("Ada Lovelace"))
	assert.Equal(t, "M", Initials("madonna"))
	assert.Equal(t, "MJ", Initials("mary jane watson"))
	assert.Equal(t, "", Initials(""))
	assert.Equal(t, "", Initials("   "))
}
