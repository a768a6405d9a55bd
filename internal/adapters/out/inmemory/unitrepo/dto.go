// Package unitrepo keeps the unit catalog in process memory.
// Units are stored as plain records and mapped back to domain units on read,
// so callers never share state with the catalog.
package unitrepo

import (
	"saleweight/internal/core/domain/model/uom"

	"github.com/shopspring/decimal"
)

// UnitDTO is the stored form of a unit.
type UnitDTO struct {
	Symbol   string
	Name     string
	Category string
	Factor   decimal.Decimal
	Rounding decimal.Decimal
}

func fromDomain(u uom.Unit) UnitDTO {
	return UnitDTO{
		Symbol:   u.Symbol(),
		Name:     u.Name(),
		Category: u.Category().String(),
		Factor:   u.Factor(),
		Rounding: u.Rounding(),
	}
}

func toDomain(dto UnitDTO) (uom.Unit, error) {
	return uom.NewUnit(dto.Symbol, dto.Name, uom.Category(dto.Category), dto.Factor, dto.Rounding)
}
