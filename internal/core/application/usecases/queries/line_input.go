package queries

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"saleweight/internal/core/domain/model/kernel"
	"saleweight/internal/core/domain/model/product"
	"saleweight/internal/core/domain/model/sale"
	"saleweight/internal/core/domain/model/uom"
	"saleweight/internal/core/ports"
	"saleweight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ProductInput describes the product of a sale line as the caller knows it.
// Units are given by symbol.
type ProductInput struct {
	// ID is optional; a random identifier is used when empty.
	ID          string
	Name        string
	Type        string
	DefaultUnit string

	// Weight of one DefaultUnit in WeightUnit; nil when not configured.
	Weight     *decimal.Decimal
	WeightUnit string
}

// LineInput describes a sale line. Product is nil for lines selling nothing.
type LineInput struct {
	Product  *ProductInput
	Quantity decimal.Decimal
	Unit     string
}

// lineBuilder turns request data into domain objects.
type lineBuilder struct {
	units ports.UnitRepository
}

func (b lineBuilder) buildLine(ctx context.Context, in LineInput) (*sale.Line, error) {
	var (
		p    *product.Product
		unit uom.Unit
		err  error
	)

	if in.Product != nil {
		if p, err = b.buildProduct(ctx, *in.Product); err != nil {
			return nil, err
		}
	}

	// lines that weigh nothing tolerate unknown units
	ships := p != nil && in.Quantity.IsPositive() && !p.Type().IsService()

	if strings.TrimSpace(in.Unit) != "" {
		if unit, err = b.units.Get(ctx, in.Unit); err != nil {
			if ships || !errors.Is(err, errs.ErrObjectNotFound) {
				return nil, err
			}
			unit = uom.Unit{}
		}
	}

	return sale.NewLine(p, in.Quantity, unit)
}

func (b lineBuilder) buildProduct(ctx context.Context, in ProductInput) (*product.Product, error) {
	id := kernel.NewUUID()
	if in.ID != "" {
		parsed, err := kernel.UUIDFromString(in.ID)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("product.id", err)
		}
		id = parsed
	}

	productType, typeErr := product.ParseType(in.Type)
	defaultUnit, unitErr := b.units.Get(ctx, in.DefaultUnit)
	if err := errors.Join(typeErr, unitErr); err != nil {
		return nil, err
	}

	p, err := product.NewProduct(id, in.Name, productType, defaultUnit)
	if err != nil {
		return nil, err
	}

	if in.Weight != nil {
		weightUnit, err := b.units.Get(ctx, in.WeightUnit)
		if err != nil {
			return nil, err
		}
		if err = p.SetWeight(*in.Weight, weightUnit); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// weightUnit resolves the target weight unit, falling back to fallback when
// symbol is blank.
func (b lineBuilder) weightUnit(ctx context.Context, symbol, fallback string) (uom.Unit, error) {
	if strings.TrimSpace(symbol) == "" {
		symbol = fallback
	}

	unit, err := b.units.Get(ctx, symbol)
	if err != nil {
		return uom.Unit{}, err
	}
	if !unit.IsWeight() {
		return uom.Unit{}, errs.NewValueIsInvalidErrorWithCause(
			"weightUnit is invalid",
			fmt.Errorf("%s is a %s unit, not a weight unit", unit.Symbol(), unit.Category()),
		)
	}

	return unit, nil
}
