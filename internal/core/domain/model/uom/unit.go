package uom

import (
	"errors"
	"fmt"
	"strings"

	"saleweight/internal/pkg/errs"
	"saleweight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrUnitIsNotConstructed is returned when a zero-value Unit is used.
var ErrUnitIsNotConstructed = errs.NewValueIsRequiredError("unit must be created via NewUnit constructor")

// Unit is an immutable unit of measure.
//
//	kg, _ := uom.NewUnit("kg", "Kilogram", uom.CategoryWeight, decimal.NewFromInt(1), decimal.RequireFromString("0.01"))
//	g, _ := uom.NewUnit("g", "Gram", uom.CategoryWeight, decimal.RequireFromString("0.001"), decimal.NewFromInt(1))
type Unit struct { //nolint:recvcheck //using for validation
	symbol   string
	name     string
	category Category
	factor   decimal.Decimal
	rounding decimal.Decimal
	guard    guard.ConstructorGuard
}

// NewUnit validates and builds a Unit.
// factor is the size of the unit in its category's base unit and must be positive.
// rounding is the display precision of quantities in this unit and must be positive.
func NewUnit(symbol, name string, category Category, factor, rounding decimal.Decimal) (Unit, error) {
	u := Unit{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		u.setSymbol(symbol),
		u.setName(name),
		u.setCategory(category),
		u.setFactor(factor),
		u.setRounding(rounding),
	); err != nil {
		return Unit{}, err
	}

	return u, nil
}

func (u Unit) Validate() error {
	return u.guard.Validate(ErrUnitIsNotConstructed)
}

func (u Unit) Symbol() string {
	return u.symbol
}

func (u Unit) Name() string {
	return u.name
}

func (u Unit) Category() Category {
	return u.category
}

func (u Unit) Factor() decimal.Decimal {
	return u.factor
}

func (u Unit) Rounding() decimal.Decimal {
	return u.rounding
}

// IsWeight reports whether the unit measures mass.
func (u Unit) IsWeight() bool {
	return u.category == CategoryWeight
}

// IsEqual compares units by symbol only. Two distinct records sharing a
// symbol are the same unit and never need a conversion between them.
func (u Unit) IsEqual(other Unit) bool {
	return u.symbol == other.symbol
}

func (u Unit) String() string {
	return u.symbol
}

func (u *Unit) setSymbol(symbol string) error {
	symbol = strings.TrimSpace(symbol)
	if symbol == "" {
		return errs.NewValueIsRequiredError("symbol")
	}
	u.symbol = symbol
	return nil
}

func (u *Unit) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *Unit) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	u.category = category
	return nil
}

func (u *Unit) setFactor(factor decimal.Decimal) error {
	if !factor.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("factor is invalid", fmt.Errorf("%s is not greater than 0", factor))
	}
	u.factor = factor
	return nil
}

func (u *Unit) setRounding(rounding decimal.Decimal) error {
	if !rounding.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("rounding is invalid", fmt.Errorf("%s is not greater than 0", rounding))
	}
	u.rounding = rounding
	return nil
}
