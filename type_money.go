package exmini

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	// RMB is the colloquial code for CNY found in ledgers.
	money.AddCurrency("RMB", "¥", "$1", ".", ",", 2)
}

// fraction returns the number of minor digits of a currency, 2 when unknown.
func fraction(currency string) int {
	if c := money.GetCurrency(strings.ToUpper(currency)); c != nil {
		return c.Fraction
	}
	return 2
}

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minMinor = decimal.NewFromInt(math.MinInt64)
)

// FormatAmount formats value with the digits and thousands grouping of the
// currency, without the currency symbol, e.g. "1,000.00".
func FormatAmount(value decimal.Decimal, currency string) string {
	f := fraction(currency)
	minor := value.Shift(int32(f)).Round(0)
	if minor.Cmp(maxMinor) > 0 || minor.Cmp(minMinor) < 0 {
		// go-money counts in int64 minor units.
		return groupThousands(value.StringFixed(int32(f)))
	}
	return money.NewFormatter(f, ".", ",", "", "1").Format(minor.IntPart())
}

// groupThousands inserts a "," every three digits of the integer part of a
// fixed point number.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	integer, frac, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}

// FormatNullAmount is FormatAmount for optional values, "?" when null.
func FormatNullAmount(value decimal.NullDecimal, currency string) string {
	if !value.Valid {
		return "?"
	}
	return FormatAmount(value.Decimal, currency)
}

// FormatRate formats a rate with all its digits, "?" when null.
func FormatRate(rate decimal.NullDecimal) string {
	if !rate.Valid {
		return "?"
	}
	return rate.Decimal.String()
}
