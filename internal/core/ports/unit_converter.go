// Package ports defines the contracts between the weight domain and the
// collaborators that supply unit data and conversions.
package ports

import (
	"saleweight/internal/core/domain/model/uom"

	"github.com/shopspring/decimal"
)

// UnitConverter expresses a quantity given in one unit in another unit.
// Implementations must be free of side effects and must not round.
type UnitConverter interface {
	Convert(from uom.Unit, qty decimal.Decimal, to uom.Unit) (decimal.Decimal, error)
}
