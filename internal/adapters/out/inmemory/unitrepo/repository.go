package unitrepo

import (
	"context"
	"fmt"

	"saleweight/internal/core/domain/model/uom"
	"saleweight/internal/pkg/errs"
)

// InMemoryUnitRepository implements ports.UnitRepository over a fixed catalog.
// It is read-only after construction and safe for concurrent use.
type InMemoryUnitRepository struct {
	bySymbol map[string]UnitDTO
	order    []string
}

// NewInMemoryUnitRepository builds a catalog from units. Symbols must be unique.
//
// Example:
//
//	repo, err := unitrepo.NewInMemoryUnitRepository(uom.DefaultUnits())
//	if err != nil {
//		return fmt.Errorf("failed to load units: %w", err)
//	}
func NewInMemoryUnitRepository(units []uom.Unit) (*InMemoryUnitRepository, error) {
	r := &InMemoryUnitRepository{
		bySymbol: make(map[string]UnitDTO, len(units)),
		order:    make([]string, 0, len(units)),
	}

	for _, u := range units {
		if err := u.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.bySymbol[u.Symbol()]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause("units",
				fmt.Errorf("duplicate unit symbol %q", u.Symbol()))
		}
		r.bySymbol[u.Symbol()] = fromDomain(u)
		r.order = append(r.order, u.Symbol())
	}

	return r, nil
}

// Get retrieves a unit by symbol.
func (r *InMemoryUnitRepository) Get(ctx context.Context, symbol string) (uom.Unit, error) {
	if err := ctx.Err(); err != nil {
		return uom.Unit{}, err
	}

	dto, ok := r.bySymbol[symbol]
	if !ok {
		return uom.Unit{}, errs.NewObjectNotFoundError("unit", symbol)
	}

	return toDomain(dto)
}

// GetAll retrieves every unit in the order the catalog was built.
func (r *InMemoryUnitRepository) GetAll(ctx context.Context) ([]uom.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	units := make([]uom.Unit, 0, len(r.order))
	for _, symbol := range r.order {
		u, err := toDomain(r.bySymbol[symbol])
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}

	return units, nil
}
