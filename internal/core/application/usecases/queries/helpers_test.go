package queries_test

import (
	"context"
	"testing"

	"saleweight/internal/adapters/out/inmemory/unitrepo"
	"saleweight/internal/core/domain/model/uom"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUnitRepository struct{ mock.Mock }

func (m *MockUnitRepository) Get(ctx context.Context, symbol string) (uom.Unit, error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(uom.Unit), args.Error(1)
}

func (m *MockUnitRepository) GetAll(ctx context.Context) ([]uom.Unit, error) {
	args := m.Called(ctx)
	if units := args.Get(0); units != nil {
		return units.([]uom.Unit), args.Error(1)
	}
	return nil, args.Error(1)
}

func newUnitRepository(t *testing.T) *unitrepo.InMemoryUnitRepository {
	t.Helper()
	repo, err := unitrepo.NewInMemoryUnitRepository(uom.DefaultUnits())
	require.NoError(t, err)
	return repo
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
