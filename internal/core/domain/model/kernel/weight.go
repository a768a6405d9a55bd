package kernel

import (
	"fmt"

	"saleweight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// WeightDisplayDigits is the number of decimal digits a weight is rendered with.
const WeightDisplayDigits = 2

// Weight is a non-negative shipping weight expressed in a carrier weight unit.
// The unit itself is carried by the caller; Weight only holds the magnitude.
// The zero value is a valid zero weight.
type Weight struct {
	value decimal.Decimal
}

// ZeroWeight returns a weight of exactly zero.
func ZeroWeight() Weight {
	return Weight{value: decimal.Zero}
}

// NewWeight returns a Weight holding value as-is.
// Negative values are rejected.
func NewWeight(value decimal.Decimal) (Weight, error) {
	if value.IsNegative() {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid",
			fmt.Errorf("%s is negative", value.String()),
		)
	}
	return Weight{value: value}, nil
}

// CeilWeight rounds raw up to the next whole unit.
//
//	w, _ := kernel.CeilWeight(decimal.RequireFromString("7.5"))
//	fmt.Println(w) // 8.00
func CeilWeight(raw decimal.Decimal) (Weight, error) {
	return NewWeight(raw.Ceil())
}

// Add returns the sum of both weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{value: w.value.Add(other.value)}
}

// Decimal returns the magnitude.
func (w Weight) Decimal() decimal.Decimal {
	return w.value
}

// IsZero reports whether the weight is exactly zero.
func (w Weight) IsZero() bool {
	return w.value.IsZero()
}

// IsEqual compares magnitudes, ignoring representation ("8" equals "8.00").
func (w Weight) IsEqual(other Weight) bool {
	return w.value.Equal(other.value)
}

// String renders the weight with WeightDisplayDigits decimals, e.g. "1000.00".
func (w Weight) String() string {
	return w.value.StringFixed(WeightDisplayDigits)
}
