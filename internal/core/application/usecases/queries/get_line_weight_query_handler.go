package queries

import (
	"context"

	"saleweight/internal/core/domain/services"
	"saleweight/internal/core/ports"
)

// GetLineWeightQueryHandler weighs a single sale line.
type GetLineWeightQueryHandler struct {
	builder           lineBuilder
	calculator        services.LineWeightCalculator
	defaultWeightUnit string
}

// NewGetLineWeightQueryHandler creates the handler. defaultWeightUnit is the
// symbol of the carrier unit used when the query names none.
func NewGetLineWeightQueryHandler(
	units ports.UnitRepository,
	calculator services.LineWeightCalculator,
	defaultWeightUnit string,
) GetLineWeightQueryHandler {
	return GetLineWeightQueryHandler{
		builder:           lineBuilder{units: units},
		calculator:        calculator,
		defaultWeightUnit: defaultWeightUnit,
	}
}

// Handle resolves the line's units, builds the line and weighs it.
// A *services.MissingWeightError is returned unchanged.
func (h GetLineWeightQueryHandler) Handle(ctx context.Context, query GetLineWeightQuery) (GetLineWeightQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLineWeightQueryResponse{}, err
	}

	target, err := h.builder.weightUnit(ctx, query.WeightUnit(), h.defaultWeightUnit)
	if err != nil {
		return GetLineWeightQueryResponse{}, err
	}

	line, err := h.builder.buildLine(ctx, query.Line())
	if err != nil {
		return GetLineWeightQueryResponse{}, err
	}

	weight, err := h.calculator.Calculate(line, target)
	if err != nil {
		return GetLineWeightQueryResponse{}, err
	}

	return GetLineWeightQueryResponse{
		Weight:     weight,
		WeightUnit: target,
	}, nil
}
