package core

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// maxMoneyDigits bounds the integer part of a typed amount.
const maxMoneyDigits = 15

var maxMoney = decimal.New(1, maxMoneyDigits)

// ParseQuantity reads a whole, non-negative unit count.
func ParseQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	qty, err := strconv.Atoi(raw)
	if err != nil {
		return 0, NewValidationError("quantity", raw, "must be a whole number")
	}
	if qty < 0 {
		return 0, NewValidationError("quantity", raw, "must not be negative")
	}
	return qty, nil
}

// ParseMoney reads a non-negative decimal amount for field. A leading "$" is
// accepted. Exponent forms and amounts with more than maxMoneyDigits integer
// digits are out of range.
func ParseMoney(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "$")
	if strings.ContainsAny(raw, "eE") {
		return decimal.Zero, NewValidationError(field, raw, "out of range")
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, NewValidationError(field, raw, "must be a decimal number")
	}
	if d.IsNegative() {
		return decimal.Zero, NewValidationError(field, raw, "must not be negative")
	}
	if d.GreaterThanOrEqual(maxMoney) {
		return decimal.Zero, NewValidationError(field, raw, "out of range")
	}
	return d, nil
}
