package queries

import (
	"errors"
	"strings"

	"saleweight/internal/core/domain/model/kernel"
	"saleweight/internal/core/domain/model/uom"
	"saleweight/internal/pkg/guard"
)

var (
	ErrGetLineWeightQueryIsNotConstructed = errors.New(
		"GetLineWeightQuery must be created via NewGetLineWeightQuery constructor",
	)
)

// GetLineWeightQuery asks for the shipping weight of one sale line.
//
// Example:
//
//	weight := decimal.RequireFromString("2.5")
//	query := NewGetLineWeightQuery(LineInput{
//	    Product: &ProductInput{
//	        Name: "Rice bag", Type: "goods", DefaultUnit: "u",
//	        Weight: &weight, WeightUnit: "kg",
//	    },
//	    Quantity: decimal.NewFromInt(3),
//	    Unit:     "u",
//	}, "kg")
//
//	resp, err := handler.Handle(ctx, query) // resp.Weight is 8.00
type GetLineWeightQuery struct {
	line       LineInput
	weightUnit string

	guard guard.ConstructorGuard
}

// NewGetLineWeightQuery creates the query. weightUnit may be empty to use the
// service's carrier weight unit.
func NewGetLineWeightQuery(line LineInput, weightUnit string) GetLineWeightQuery {
	return GetLineWeightQuery{
		line:       line,
		weightUnit: strings.TrimSpace(weightUnit),
		guard:      guard.NewConstructorGuard(),
	}
}

func (q GetLineWeightQuery) Validate() error {
	return q.guard.Validate(ErrGetLineWeightQueryIsNotConstructed)
}

func (q GetLineWeightQuery) Line() LineInput {
	return q.line
}

func (q GetLineWeightQuery) WeightUnit() string {
	return q.weightUnit
}

// GetLineWeightQueryResponse is the weight of the line in WeightUnit.
type GetLineWeightQueryResponse struct {
	Weight     kernel.Weight
	WeightUnit uom.Unit
}
