package queries

import (
	"errors"
	"strings"

	"saleweight/internal/core/domain/model/kernel"
	"saleweight/internal/core/domain/model/uom"
	"saleweight/internal/pkg/errs"
	"saleweight/internal/pkg/guard"
)

var (
	ErrGetSaleWeightQueryIsNotConstructed = errors.New(
		"GetSaleWeightQuery must be created via NewGetSaleWeightQuery constructor",
	)
)

// GetSaleWeightQuery asks for the package weight of a sale.
//
// Example:
//
//	query, err := NewGetSaleWeightQuery("", "g", []LineInput{line1, line2})
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
type GetSaleWeightQuery struct {
	// saleID is nil when the caller did not identify the sale
	saleID     *kernel.UUID
	weightUnit string
	lines      []LineInput

	guard guard.ConstructorGuard
}

// NewGetSaleWeightQuery creates the query. saleID and weightUnit are optional;
// a malformed saleID is rejected.
func NewGetSaleWeightQuery(saleID string, weightUnit string, lines []LineInput) (GetSaleWeightQuery, error) {
	q := GetSaleWeightQuery{
		weightUnit: strings.TrimSpace(weightUnit),
		lines:      append([]LineInput(nil), lines...),
		guard:      guard.NewConstructorGuard(),
	}

	if saleID != "" {
		id, err := kernel.UUIDFromString(saleID)
		if err != nil {
			return GetSaleWeightQuery{}, errs.NewValueIsInvalidErrorWithCause("id", err)
		}
		q.saleID = &id
	}

	return q, nil
}

func (q GetSaleWeightQuery) Validate() error {
	return q.guard.Validate(ErrGetSaleWeightQueryIsNotConstructed)
}

// SaleID returns the identifier given by the caller, or nil.
func (q GetSaleWeightQuery) SaleID() *kernel.UUID {
	return q.saleID
}

func (q GetSaleWeightQuery) WeightUnit() string {
	return q.weightUnit
}

func (q GetSaleWeightQuery) Lines() []LineInput {
	return append([]LineInput(nil), q.lines...)
}

// GetSaleWeightQueryResponse is the package weight of the sale with the
// weight of each line, all in WeightUnit.
type GetSaleWeightQueryResponse struct {
	SaleID     kernel.UUID
	Weight     kernel.Weight
	WeightUnit uom.Unit
	Lines      []kernel.Weight
}
