package inventory

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var hundred = decimal.NewFromInt(100)

// FormatCurrency renders d as US dollars with thousands separators and two
// decimals, e.g. 1234.5 => "$1,234.50".
func FormatCurrency(d decimal.Decimal) string {
	p := message.NewPrinter(language.AmericanEnglish)
	v := d.Round(2).InexactFloat64()
	if v < 0 {
		return p.Sprintf("-$%.2f", -v)
	}
	return p.Sprintf("$%.2f", v)
}

// FormatPercent renders a percentage with one decimal, e.g. 47.25 => "47.3%".
func FormatPercent(v float64) string {
	return decimal.NewFromFloat(v).Round(1).StringFixed(1) + "%"
}
