package sale

import (
	"errors"
	"fmt"

	"saleweight/internal/core/domain/model/kernel"
	"saleweight/internal/core/domain/model/uom"
	"saleweight/internal/pkg/errs"
)

var (
	// ErrSaleIsNotConstructed is returned when a Sale was not created through NewSale.
	ErrSaleIsNotConstructed = errors.New("Sale must be created via NewSale constructor")
)

// Sale is the aggregate root holding the lines whose weights make up the
// package weight. Every line is weighed in the sale's weight unit.
type Sale struct {
	id kernel.UUID

	// weightUnit is the carrier unit the package weight is reported in
	weightUnit uom.Unit

	lines []*Line

	isConstructed bool
}

// NewSale creates a sale reporting its weight in weightUnit.
//
//	s, err := sale.NewSale(kernel.NewUUID(), kg, line1, line2)
//	if err != nil {
//	    return err
//	}
func NewSale(id kernel.UUID, weightUnit uom.Unit, lines ...*Line) (*Sale, error) {
	s := &Sale{
		lines:         make([]*Line, 0, len(lines)),
		isConstructed: true,
	}

	errList := []error{s.setID(id), s.setWeightUnit(weightUnit)}
	for _, line := range lines {
		errList = append(errList, s.AddLine(line))
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Sale) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSaleIsNotConstructed
	}
	return nil
}

func (s *Sale) ID() kernel.UUID {
	return s.id
}

func (s *Sale) WeightUnit() uom.Unit {
	return s.weightUnit
}

// Lines returns the lines in insertion order. The slice is a copy.
func (s *Sale) Lines() []*Line {
	return append([]*Line(nil), s.lines...)
}

// AddLine appends a constructed line.
func (s *Sale) AddLine(line *Line) error {
	if err := line.Validate(); err != nil {
		return err
	}
	s.lines = append(s.lines, line)
	return nil
}

func (s *Sale) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Sale) setWeightUnit(unit uom.Unit) error {
	if err := unit.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("weightUnit", err)
	}
	if !unit.IsWeight() {
		return errs.NewValueIsInvalidErrorWithCause(
			"weightUnit is invalid",
			fmt.Errorf("%s is a %s unit, not a weight unit", unit.Symbol(), unit.Category()),
		)
	}
	s.weightUnit = unit
	return nil
}
