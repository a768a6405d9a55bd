package sale

import (
	"errors"
	"fmt"

	"saleweight/internal/core/domain/model/product"
	"saleweight/internal/core/domain/model/uom"
	"saleweight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrLineIsNotConstructed is returned when a Line was not created through NewLine.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// Line is one row of a sale.
type Line struct {
	// product is nil for lines that do not sell anything
	product *product.Product

	quantity decimal.Decimal

	// unit the quantity is counted in; zero Unit on product-less lines without one
	unit uom.Unit

	isConstructed bool
}

// NewLine creates a sale line. p may be nil. When the line ships goods, unit
// is required and must be in the same category as the product's default unit.
// Lines that weigh nothing (no product, quantity <= 0 or a service) accept any
// unit, including none.
//
//	line, err := sale.NewLine(coffee, decimal.NewFromInt(3), units.Get("u"))
func NewLine(p *product.Product, quantity decimal.Decimal, unit uom.Unit) (*Line, error) {
	line := &Line{
		quantity:      quantity,
		isConstructed: true,
	}

	if err := errors.Join(
		line.setProduct(p),
		line.setUnit(p, quantity, unit),
	); err != nil {
		return nil, err
	}

	return line, nil
}

func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// Product returns the sold product, or nil.
func (l *Line) Product() *product.Product {
	return l.product
}

func (l *Line) Quantity() decimal.Decimal {
	return l.quantity
}

func (l *Line) Unit() uom.Unit {
	return l.unit
}

// Ships reports whether the line moves physical goods: it has a product that
// is not a service and a positive quantity.
func (l *Line) Ships() bool {
	return l.product != nil && l.quantity.IsPositive() && !l.product.Type().IsService()
}

func (l *Line) setProduct(p *product.Product) error {
	if p == nil {
		return nil
	}
	if err := p.Validate(); err != nil {
		return err
	}
	l.product = p
	return nil
}

func (l *Line) setUnit(p *product.Product, quantity decimal.Decimal, unit uom.Unit) error {
	ships := p != nil && p.Validate() == nil && quantity.IsPositive() && !p.Type().IsService()

	if err := unit.Validate(); err != nil {
		if !ships {
			return nil
		}
		return errs.NewValueIsRequiredErrorWithCause("unit", err)
	}

	if ships && unit.Category() != p.DefaultUnit().Category() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit is invalid",
			fmt.Errorf("%s is a %s unit but %s is counted in %s",
				unit.Symbol(), unit.Category(), p.Name(), p.DefaultUnit().Category()),
		)
	}

	l.unit = unit
	return nil
}
