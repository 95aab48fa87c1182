package entity

import (
	"fmt"
	"math"
	"strings"

	errs "github.com/amirhossein-jamali/agency-ledger/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// MaxAmountInCents caps a single entry so that running balances stay far from int64 limits
const MaxAmountInCents int64 = 100_000_000_000_000

var maxAmount = decimal.New(MaxAmountInCents, -MaxDecimalPlaces)

// ParseAmount validates a positive decimal string and converts it to minor units.
// "10" becomes 1000, "10.5" becomes 1050, "10.505" is rejected.
func ParseAmount(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidAmount, amount)
	}
	if !value.IsPositive() {
		return 0, fmt.Errorf("%w: must be greater than zero", errs.ErrInvalidAmount)
	}
	if !value.Equal(value.Truncate(MaxDecimalPlaces)) {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	if value.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%w: %s exceeds %s", errs.ErrAmountOverflow, amount, maxAmount.StringFixed(MaxDecimalPlaces))
	}

	return value.Shift(MaxDecimalPlaces).IntPart(), nil
}

// FormatCents renders minor units with exactly two decimal places, e.g. -1015 becomes "-10.15"
func FormatCents(amountInCents int64) string {
	return CentsToDecimal(amountInCents).StringFixed(MaxDecimalPlaces)
}

// CentsToDecimal converts minor units to a decimal value
func CentsToDecimal(amountInCents int64) decimal.Decimal {
	return decimal.New(amountInCents, -MaxDecimalPlaces)
}

// DecimalToCents converts a decimal value holding whole minor units back to int64
func DecimalToCents(value decimal.Decimal) int64 {
	return value.Shift(MaxDecimalPlaces).IntPart()
}

// addCents adds two amounts, reporting ErrAmountOverflow instead of wrapping
func addCents(a, b int64) (int64, error) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, errs.ErrAmountOverflow
	}
	return a + b, nil
}
