package product

import (
	"errors"
	"fmt"
	"strings"

	"saleweight/internal/core/domain/model/kernel"
	"saleweight/internal/core/domain/model/uom"
	"saleweight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created through NewProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is the catalog entry a sale line refers to.
//
// Invariants:
//   - id, name, type and default unit are always valid
//   - weight and weightUnit are either both absent or both present
//   - weightUnit, when present, belongs to the weight category
type Product struct {
	id          kernel.UUID
	name        string
	productType Type
	defaultUnit uom.Unit

	// weight of one defaultUnit, expressed in weightUnit (nil when not configured)
	weight     *decimal.Decimal
	weightUnit uom.Unit

	isConstructed bool
}

// NewProduct creates a product with no weight configured.
//
//	p, err := product.NewProduct(kernel.NewUUID(), "Coffee beans 1kg", product.Goods, unit)
//	if err != nil {
//	    return err
//	}
//	err = p.SetWeight(decimal.RequireFromString("1.05"), kg)
func NewProduct(id kernel.UUID, name string, productType Type, defaultUnit uom.Unit) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setType(productType),
		p.setDefaultUnit(defaultUnit),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name is the display name used when reporting data problems on the product.
func (p *Product) Name() string {
	return p.name
}

func (p *Product) Type() Type {
	return p.productType
}

func (p *Product) DefaultUnit() uom.Unit {
	return p.defaultUnit
}

// Weight returns the weight of one default unit and whether one is configured.
// A configured weight of zero counts as not configured.
func (p *Product) Weight() (decimal.Decimal, bool) {
	if p.weight == nil || p.weight.IsZero() {
		return decimal.Zero, false
	}
	return *p.weight, true
}

// WeightUnit returns the unit Weight is expressed in. It is the zero Unit
// when no weight was ever set.
func (p *Product) WeightUnit() uom.Unit {
	return p.weightUnit
}

// SetWeight configures the weight of one default unit.
// weight must not be negative and unit must be a weight unit.
func (p *Product) SetWeight(weight decimal.Decimal, unit uom.Unit) error {
	if err := unit.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("weightUnit", err)
	}

	if err := errors.Join(validateWeight(weight), validateWeightUnit(unit)); err != nil {
		return err
	}

	p.weight = &weight
	p.weightUnit = unit
	return nil
}

// ClearWeight removes the configured weight.
func (p *Product) ClearWeight() {
	p.weight = nil
	p.weightUnit = uom.Unit{}
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setType(productType Type) error {
	if err := productType.Validate(); err != nil {
		return err
	}
	p.productType = productType
	return nil
}

func (p *Product) setDefaultUnit(unit uom.Unit) error {
	if err := unit.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("defaultUnit", err)
	}
	p.defaultUnit = unit
	return nil
}

func validateWeight(weight decimal.Decimal) error {
	if weight.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid", fmt.Errorf("%s is negative", weight))
	}
	return nil
}

func validateWeightUnit(unit uom.Unit) error {
	if !unit.IsWeight() {
		return errs.NewValueIsInvalidErrorWithCause(
			"weightUnit is invalid",
			fmt.Errorf("%s is a %s unit, not a weight unit", unit.Symbol(), unit.Category()),
		)
	}
	return nil
}
