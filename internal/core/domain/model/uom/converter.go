package uom

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrIncompatibleUnits is returned when converting between units of different categories.
var ErrIncompatibleUnits = errors.New("units are not in the same category")

// FactorConverter converts quantities between units of the same category.
// It never rounds; callers round once after all conversions.
type FactorConverter struct{}

// NewFactorConverter returns the converter used by the weight services.
// It holds no state and is safe for concurrent use.
func NewFactorConverter() FactorConverter {
	return FactorConverter{}
}

// Convert expresses qty, given in from, in the to unit: qty × from.factor / to.factor.
// Units with the same symbol return qty untouched. Units of different
// categories fail with ErrIncompatibleUnits. Non-terminating divisions are
// cut at decimal.DivisionPrecision digits.
//
//	qty, _ := converter.Convert(kg, decimal.NewFromInt(1), g) // 1000
func (FactorConverter) Convert(from Unit, qty decimal.Decimal, to Unit) (decimal.Decimal, error) {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return decimal.Zero, err
	}

	if from.IsEqual(to) {
		return qty, nil
	}

	if from.category != to.category {
		return decimal.Zero, fmt.Errorf("%w: %s (%s) to %s (%s)",
			ErrIncompatibleUnits, from.symbol, from.category, to.symbol, to.category)
	}

	return qty.Mul(from.factor).Div(to.factor), nil
}
