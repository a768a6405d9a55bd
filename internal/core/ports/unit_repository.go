package ports

import (
	"context"

	"saleweight/internal/core/domain/model/uom"
)

// UnitRepository gives read access to the unit catalog.
type UnitRepository interface {
	// Get returns the unit with the given symbol.
	// Returns errs.ObjectNotFoundError when no unit has that symbol.
	Get(ctx context.Context, symbol string) (uom.Unit, error)

	// GetAll returns every unit, in catalog order.
	GetAll(ctx context.Context) ([]uom.Unit, error)
}
