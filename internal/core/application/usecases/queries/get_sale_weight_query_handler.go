package queries

import (
	"context"

	"saleweight/internal/core/domain/model/kernel"
	"saleweight/internal/core/domain/model/sale"
	"saleweight/internal/core/domain/services"
	"saleweight/internal/core/ports"
)

// GetSaleWeightQueryHandler computes the package weight of a sale.
//
// Every line is weighed in the sale's weight unit: the unit named by the query
// or, when none is named, the service's carrier weight unit.
type GetSaleWeightQueryHandler struct {
	builder           lineBuilder
	aggregator        services.SaleWeightAggregator
	defaultWeightUnit string
}

func NewGetSaleWeightQueryHandler(
	units ports.UnitRepository,
	aggregator services.SaleWeightAggregator,
	defaultWeightUnit string,
) GetSaleWeightQueryHandler {
	return GetSaleWeightQueryHandler{
		builder:           lineBuilder{units: units},
		aggregator:        aggregator,
		defaultWeightUnit: defaultWeightUnit,
	}
}

// Handle builds the sale and weighs it. Any line failure, including a
// *services.MissingWeightError, fails the whole query.
func (h GetSaleWeightQueryHandler) Handle(ctx context.Context, query GetSaleWeightQuery) (GetSaleWeightQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSaleWeightQueryResponse{}, err
	}

	weightUnit, err := h.builder.weightUnit(ctx, query.WeightUnit(), h.defaultWeightUnit)
	if err != nil {
		return GetSaleWeightQueryResponse{}, err
	}

	inputs := query.Lines()
	lines := make([]*sale.Line, 0, len(inputs))
	for _, in := range inputs {
		line, lineErr := h.builder.buildLine(ctx, in)
		if lineErr != nil {
			return GetSaleWeightQueryResponse{}, lineErr
		}
		lines = append(lines, line)
	}

	saleID := kernel.NewUUID()
	if id := query.SaleID(); id != nil {
		saleID = *id
	}

	s, err := sale.NewSale(saleID, weightUnit, lines...)
	if err != nil {
		return GetSaleWeightQueryResponse{}, err
	}

	result, err := h.aggregator.WeighIn(s, s.WeightUnit())
	if err != nil {
		return GetSaleWeightQueryResponse{}, err
	}

	return GetSaleWeightQueryResponse{
		SaleID:     s.ID(),
		Weight:     result.Total,
		WeightUnit: s.WeightUnit(),
		Lines:      result.Lines,
	}, nil
}
