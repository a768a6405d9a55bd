package queries

import (
	"errors"
	"strings"

	"saleweight/internal/pkg/errs"
	"saleweight/internal/pkg/guard"
)

var (
	ErrGetAllUnitsQueryIsNotConstructed = errors.New(
		"GetAllUnitsQuery must be created via NewGetAllUnitsQuery constructor",
	)
	ErrGetUnitQueryIsNotConstructed = errors.New(
		"GetUnitQuery must be created via NewGetUnitQuery constructor",
	)
)

// GetAllUnitsQuery lists the unit catalog.
type GetAllUnitsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllUnitsQuery() GetAllUnitsQuery {
	return GetAllUnitsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllUnitsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllUnitsQueryIsNotConstructed)
}

// GetUnitQuery looks a unit up by symbol.
type GetUnitQuery struct {
	symbol string

	guard guard.ConstructorGuard
}

func NewGetUnitQuery(symbol string) (GetUnitQuery, error) {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return GetUnitQuery{}, errs.NewValueIsRequiredError("symbol")
	}
	return GetUnitQuery{symbol: symbol, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUnitQuery) Validate() error {
	return q.guard.Validate(ErrGetUnitQueryIsNotConstructed)
}

func (q GetUnitQuery) Symbol() string {
	return q.symbol
}
