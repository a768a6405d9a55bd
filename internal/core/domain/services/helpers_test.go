package services_test

import (
	"testing"

	"saleweight/internal/core/domain/model/kernel"
	"saleweight/internal/core/domain/model/product"
	"saleweight/internal/core/domain/model/sale"
	"saleweight/internal/core/domain/model/uom"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUnitConverter struct{ mock.Mock }

func (m *MockUnitConverter) Convert(from uom.Unit, qty decimal.Decimal, to uom.Unit) (decimal.Decimal, error) {
	args := m.Called(from, qty, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func unit(t *testing.T, symbol string) uom.Unit {
	t.Helper()
	for _, u := range uom.DefaultUnits() {
		if u.Symbol() == symbol {
			return u
		}
	}
	t.Fatalf("unknown unit %s", symbol)
	return uom.Unit{}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func symbolIs(symbol string) any {
	return mock.MatchedBy(func(u uom.Unit) bool { return u.Symbol() == symbol })
}

func decimalIs(s string) any {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec(s)) })
}

// newProduct builds a product counted in defaultUnit. weight may be empty for
// a product with no weight configured.
func newProduct(
	t *testing.T,
	name string,
	productType product.Type,
	defaultUnit string,
	weight string,
	weightUnit string,
) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), name, productType, unit(t, defaultUnit))
	require.NoError(t, err)
	if weight != "" {
		require.NoError(t, p.SetWeight(dec(weight), unit(t, weightUnit)))
	}
	return p
}

func newLine(t *testing.T, p *product.Product, qty string, lineUnit string) *sale.Line {
	t.Helper()
	u := uom.Unit{}
	if lineUnit != "" {
		u = unit(t, lineUnit)
	}
	line, err := sale.NewLine(p, dec(qty), u)
	require.NoError(t, err)
	return line
}
