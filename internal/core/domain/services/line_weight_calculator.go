package services

import (
	"saleweight/internal/core/domain/model/kernel"
	"saleweight/internal/core/domain/model/sale"
	"saleweight/internal/core/domain/model/uom"
	"saleweight/internal/core/ports"
	"saleweight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineWeightCalculator computes the weight a carrier must be told for one
// sale line.
//
// Algorithm:
//   - lines without a product, with a non-positive quantity or selling a
//     service weigh zero, whatever the product's data
//   - the product must have a weight, otherwise MissingWeightError
//   - the quantity is brought to the product's default unit, multiplied by
//     the product weight and brought to the target weight unit
//   - the result is rounded up to a whole unit, once, after all conversions
//
// Conversions only happen between units whose symbols differ.
//
//	calc := NewLineWeightCalculator(uom.NewFactorConverter())
//	w, err := calc.Calculate(line, kg)
//	var missing *MissingWeightError
//	if errors.As(err, &missing) {
//	    // ask someone to set the weight on missing.ProductName
//	}
type LineWeightCalculator struct {
	converter ports.UnitConverter
}

// conversionDigits bounds the precision kept before rounding up. Divisions
// that do not terminate are cut at decimal.DivisionPrecision digits, so the
// last digits of a converted weight are noise and must not push the ceiling
// up by a whole unit: 2 u of a 6 kg dozen is 1.0000000000000002 kg.
var conversionDigits = int32(decimal.DivisionPrecision - 2)

// NewLineWeightCalculator creates a calculator that delegates every unit
// conversion to converter.
//
//	calc := NewLineWeightCalculator(uom.NewFactorConverter())
func NewLineWeightCalculator(converter ports.UnitConverter) LineWeightCalculator {
	return LineWeightCalculator{converter: converter}
}

// Calculate returns the shipping weight of line expressed in target.
//
// Returns:
//   - a zero weight for lines that ship nothing, without looking at target
//   - *MissingWeightError when the shipped product has no weight
//   - the converter's error, unchanged, when a conversion fails
//   - errs.ValueIsRequiredError when line is nil
func (c LineWeightCalculator) Calculate(line *sale.Line, target uom.Unit) (kernel.Weight, error) {
	if line == nil {
		return kernel.Weight{}, errs.NewValueIsRequiredError("line")
	}

	if !line.Ships() {
		return kernel.ZeroWeight(), nil
	}

	p := line.Product()
	weight, ok := p.Weight()
	if !ok {
		return kernel.Weight{}, NewMissingWeightError(p.Name())
	}

	qty := line.Quantity()
	if !line.Unit().IsEqual(p.DefaultUnit()) {
		converted, err := c.converter.Convert(line.Unit(), qty, p.DefaultUnit())
		if err != nil {
			return kernel.Weight{}, err
		}
		qty = converted
	}

	raw := weight.Mul(qty)

	if !p.WeightUnit().IsEqual(target) {
		converted, err := c.converter.Convert(p.WeightUnit(), raw, target)
		if err != nil {
			return kernel.Weight{}, err
		}
		raw = converted
	}

	return kernel.CeilWeight(raw.Round(conversionDigits))
}
