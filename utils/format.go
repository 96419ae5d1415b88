package utils

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// currencyFormat captures the localized display convention the shop's
// checkout uses for each supported currency: symbol placement, grouping
// and decimal separators, and the currency's decimal-place convention.
type currencyFormat struct {
	symbol    string
	decimals  int32
	group     string
	decimal   string
	suffix    bool // symbol rendered after the amount
	space     bool // space between symbol and amount
	lakhGroup bool // Indian 2,2,3 digit grouping
}

var currencyFormats = map[string]currencyFormat{
	"CAD": {symbol: "$", decimals: 2, group: ",", decimal: "."},
	"USD": {symbol: "$", decimals: 2, group: ",", decimal: "."},
	"AUD": {symbol: "$", decimals: 2, group: ",", decimal: "."},
	"NZD": {symbol: "$", decimals: 2, group: ",", decimal: "."},
	"SGD": {symbol: "$", decimals: 2, group: ",", decimal: "."},
	"MXN": {symbol: "$", decimals: 2, group: ",", decimal: "."},
	"HKD": {symbol: "HK$", decimals: 2, group: ",", decimal: "."},
	"GBP": {symbol: "£", decimals: 2, group: ",", decimal: "."},
	"INR": {symbol: "₹", decimals: 2, group: ",", decimal: ".", lakhGroup: true},
	"EUR": {symbol: "€", decimals: 2, group: ".", decimal: ",", suffix: true, space: true},
	"BRL": {symbol: "R$", decimals: 2, group: ".", decimal: ",", space: true},
	"JPY": {symbol: "¥", decimals: 0, group: ",", decimal: "."},
}

// FormatCurrency renders an amount in the given ISO 4217 currency using
// that currency's localized convention, e.g. 12.5 + "USD" -> "$12.50",
// 1234.5 + "CAD" -> "$1,234.50", 12.5 + "JPY" -> "¥13". Unknown codes
// fall back to "CODE 12.50". Rounding is half away from zero, matching
// the shop frontend.
func FormatCurrency(amount float64, code string) string {
	upper := strings.ToUpper(strings.TrimSpace(code))
	f, ok := currencyFormats[upper]
	if !ok {
		f = currencyFormat{symbol: upper, decimals: 2, group: ",", decimal: ".", space: true}
	}

	d := decimal.NewFromFloat(amount).Round(f.decimals)
	negative := d.IsNegative()

	fixed := d.Abs().StringFixed(f.decimals)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	if !f.suffix {
		b.WriteString(f.symbol)
		if f.space {
			b.WriteString(" ")
		}
	}
	b.WriteString(groupDigits(intPart, f.group, f.lakhGroup))
	if f.decimals > 0 {
		b.WriteString(f.decimal)
		b.WriteString(fracPart)
	}
	if f.suffix {
		if f.space {
			b.WriteString(" ")
		}
		b.WriteString(f.symbol)
	}
	return b.String()
}

// CurrencySymbol returns the bare symbol for a currency code, or the
// code itself when the currency is not in the table.
func CurrencySymbol(code string) string {
	upper := strings.ToUpper(strings.TrimSpace(code))
	if f, ok := currencyFormats[upper]; ok {
		return f.symbol
	}
	return upper
}

// groupDigits inserts the grouping separator into an integer digit
// string. Lakh grouping separates the last three digits, then pairs:
// "1234567" -> "12,34,567".
func groupDigits(digits, sep string, lakh bool) string {
	if len(digits) <= 3 {
		return digits
	}

	var groups []string
	rest := digits
	groups = append(groups, rest[len(rest)-3:])
	rest = rest[:len(rest)-3]

	size := 3
	if lakh {
		size = 2
	}
	for len(rest) > size {
		groups = append(groups, rest[len(rest)-size:])
		rest = rest[:len(rest)-size]
	}
	if rest != "" {
		groups = append(groups, rest)
	}

	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return strings.Join(groups, sep)
}

// FormatDate renders a timestamp for list rows, e.g. "Aug 15, 2025, 7:30 PM".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006, 3:04 PM")
}

// FormatTime renders the time-of-day portion only.
func FormatTime(t time.Time) string {
	return t.Format("3:04 PM")
}

// MonthDay is the schedule card date badge.
type MonthDay struct {
	Month string `json:"month"`
	Day   string `json:"day"`
}

func FormatMonthDay(t time.Time) MonthDay {
	return MonthDay{
		Month: strings.ToUpper(t.Format("Jan")),
		Day:   strconv.Itoa(t.Day()),
	}
}

// Initials derives up to two avatar-fallback initials from a display
// name: "Ada Lovelace" -> "AL", "madonna" -> "M".
func Initials(name string) string {
	fields := strings.Fields(name)
	if len(fields) > 2 {
		fields = fields[:2]
	}

	var b strings.Builder
	for _, f := range fields {
		r := []rune(f)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
