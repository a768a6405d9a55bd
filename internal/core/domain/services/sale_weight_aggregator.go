package services

import (
	"saleweight/internal/core/domain/model/kernel"
	"saleweight/internal/core/domain/model/sale"
	"saleweight/internal/core/domain/model/uom"
)

// SaleWeight is the package weight of a sale together with the weight of
// each line, in the order the lines appear on the sale.
type SaleWeight struct {
	Total kernel.Weight
	Lines []kernel.Weight
}

// SaleWeightAggregator sums line weights into a sale's package weight.
// All lines are weighed in one unit: the sale's weight unit, unless the
// caller asks for another one with WeighIn.
//
// The first line that cannot be weighed fails the whole sale; no partial
// total is ever returned.
type SaleWeightAggregator struct {
	calculator LineWeightCalculator
}

// NewSaleWeightAggregator creates an aggregator weighing lines with calculator.
//
//	calc := NewLineWeightCalculator(uom.NewFactorConverter())
//	agg := NewSaleWeightAggregator(calc)
//	total, err := agg.Aggregate(s)
func NewSaleWeightAggregator(calculator LineWeightCalculator) SaleWeightAggregator {
	return SaleWeightAggregator{calculator: calculator}
}

// Aggregate returns the package weight of s in s.WeightUnit().
func (a SaleWeightAggregator) Aggregate(s *sale.Sale) (kernel.Weight, error) {
	if err := s.Validate(); err != nil {
		return kernel.Weight{}, err
	}

	result, err := a.WeighIn(s, s.WeightUnit())
	if err != nil {
		return kernel.Weight{}, err
	}
	return result.Total, nil
}

// WeighIn weighs every line of s in target and returns the per-line weights
// and their total.
func (a SaleWeightAggregator) WeighIn(s *sale.Sale, target uom.Unit) (SaleWeight, error) {
	if err := s.Validate(); err != nil {
		return SaleWeight{}, err
	}

	lines := s.Lines()
	result := SaleWeight{
		Total: kernel.ZeroWeight(),
		Lines: make([]kernel.Weight, 0, len(lines)),
	}

	for _, line := range lines {
		w, err := a.calculator.Calculate(line, target)
		if err != nil {
			return SaleWeight{}, err
		}
		result.Lines = append(result.Lines, w)
		result.Total = result.Total.Add(w)
	}

	return result, nil
}
