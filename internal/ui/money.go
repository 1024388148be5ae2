package ui

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Money formats amounts with a currency symbol and the locale's digit
// grouping, at most two fraction digits.
type Money struct {
	p      *message.Printer
	symbol string
}

// NewMoney builds a formatter for locale (a BCP 47 tag). An unparsable tag
// falls back to Japanese.
func NewMoney(locale, symbol string) Money {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Japanese
	}
	return Money{p: message.NewPrinter(tag), symbol: symbol}
}

func (m Money) Format(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = math.Abs(v)
	}
	return sign + m.symbol + m.p.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}
