package queries

import (
	"context"

	"saleweight/internal/core/domain/model/uom"
	"saleweight/internal/core/ports"
)

// GetAllUnitsQueryHandler lists every unit of the catalog.
type GetAllUnitsQueryHandler struct {
	units ports.UnitRepository
}

func NewGetAllUnitsQueryHandler(units ports.UnitRepository) GetAllUnitsQueryHandler {
	return GetAllUnitsQueryHandler{units: units}
}

func (h GetAllUnitsQueryHandler) Handle(ctx context.Context, query GetAllUnitsQuery) ([]uom.Unit, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.units.GetAll(ctx)
}

// GetUnitQueryHandler returns one unit of the catalog.
type GetUnitQueryHandler struct {
	units ports.UnitRepository
}

func NewGetUnitQueryHandler(units ports.UnitRepository) GetUnitQueryHandler {
	return GetUnitQueryHandler{units: units}
}

func (h GetUnitQueryHandler) Handle(ctx context.Context, query GetUnitQuery) (uom.Unit, error) {
	if err := query.Validate(); err != nil {
		return uom.Unit{}, err
	}
	return h.units.Get(ctx, query.Symbol())
}
