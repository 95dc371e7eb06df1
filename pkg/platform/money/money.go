// Package money holds the amount conventions shared by checkout and payout:
// decimal amounts at two places, ledger amounts in int64 cents.
package money

import (
	"strings"

	"github.com/shopspring/decimal"

	dErrors "agora/pkg/domain-errors"
)

const Places = 2

var hundred = decimal.NewFromInt(100)

// Round rounds to two places, half away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// ToCents converts an amount to integer cents, rounding half away from zero.
func ToCents(d decimal.Decimal) int64 {
	return d.Mul(hundred).Round(0).IntPart()
}

func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -Places)
}

// NormalizeCurrency trims and upper-cases a currency code, which must be
// non-empty and at most three characters.
func NormalizeCurrency(s string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(s))
	if c == "" {
		return "", dErrors.New(dErrors.CodeValidation, "currency is required")
	}
	if len(c) > 3 {
		return "", dErrors.New(dErrors.CodeValidation, "currency must be at most 3 characters")
	}
	return c, nil
}
