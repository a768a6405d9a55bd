package http

import (
	"encoding/json"

	"saleweight/internal/core/application/usecases/queries"
	"saleweight/internal/core/domain/model/kernel"
	"saleweight/internal/core/domain/model/uom"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx JSON response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Unit struct {
	Symbol   string      `json:"symbol"`
	Name     string      `json:"name"`
	Category string      `json:"category"`
	Factor   json.Number `json:"factor"`
	Rounding json.Number `json:"rounding"`
}

type Product struct {
	Id          *string          `json:"id,omitempty"`
	Name        string           `json:"name"`
	Type        string           `json:"type"`
	DefaultUnit string           `json:"defaultUnit"`
	Weight      *decimal.Decimal `json:"weight,omitempty"`
	WeightUnit  *string          `json:"weightUnit,omitempty"`
}

type SaleLine struct {
	Product  *Product        `json:"product,omitempty"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     *string         `json:"unit,omitempty"`
}

type LineWeightRequest struct {
	Line       SaleLine `json:"line"`
	WeightUnit *string  `json:"weightUnit,omitempty"`
}

type LineWeightResponse struct {
	Weight     json.Number `json:"weight"`
	WeightUnit string      `json:"weightUnit"`
}

type SaleWeightRequest struct {
	Id         *string    `json:"id,omitempty"`
	WeightUnit *string    `json:"weightUnit,omitempty"`
	Lines      []SaleLine `json:"lines"`
}

type SaleWeightResponse struct {
	Id         string        `json:"id"`
	Weight     json.Number   `json:"weight"`
	WeightUnit string        `json:"weightUnit"`
	Lines      []json.Number `json:"lines"`
}

func toUnitDTO(u uom.Unit) Unit {
	return Unit{
		Symbol:   u.Symbol(),
		Name:     u.Name(),
		Category: u.Category().String(),
		Factor:   json.Number(u.Factor().String()),
		Rounding: json.Number(u.Rounding().String()),
	}
}

func toWeightNumber(w kernel.Weight) json.Number {
	return json.Number(w.String())
}

func (l SaleLine) toInput() queries.LineInput {
	in := queries.LineInput{
		Quantity: l.Quantity,
		Unit:     deref(l.Unit),
	}

	if l.Product != nil {
		in.Product = &queries.ProductInput{
			ID:          deref(l.Product.Id),
			Name:        l.Product.Name,
			Type:        l.Product.Type,
			DefaultUnit: l.Product.DefaultUnit,
			Weight:      l.Product.Weight,
			WeightUnit:  deref(l.Product.WeightUnit),
		}
	}

	return in
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
