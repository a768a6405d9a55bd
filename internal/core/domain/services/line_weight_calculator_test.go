package services_test

import (
	"errors"
	"testing"

	"saleweight/internal/core/domain/model/kernel"
	"saleweight/internal/core/domain/model/product"
	"saleweight/internal/core/domain/model/uom"
	"saleweight/internal/core/domain/services"
	"saleweight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLineWeightCalculator_ZeroWeightLines(t *testing.T) {
	kg := unit(t, uom.SymbolKilogram)

	testCases := []struct {
		name    string
		product func(t *testing.T) *product.Product
		qty     string
	}{
		{
			name:    "no product",
			product: func(*testing.T) *product.Product { return nil },
			qty:     "5",
		},
		{
			name: "zero quantity with weight missing",
			product: func(t *testing.T) *product.Product {
				return newProduct(t, "Crate", product.Goods, uom.SymbolUnit, "", "")
			},
			qty: "0",
		},
		{
			name: "negative quantity with weight missing",
			product: func(t *testing.T) *product.Product {
				return newProduct(t, "Crate", product.Goods, uom.SymbolUnit, "", "")
			},
			qty: "-4",
		},
		{
			name: "negative quantity with weight set",
			product: func(t *testing.T) *product.Product {
				return newProduct(t, "Crate", product.Goods, uom.SymbolUnit, "12", uom.SymbolKilogram)
			},
			qty: "-1",
		},
		{
			name: "service with weight missing",
			product: func(t *testing.T) *product.Product {
				return newProduct(t, "Installation", product.Service, uom.SymbolUnit, "", "")
			},
			qty: "3",
		},
		{
			name: "service with weight set",
			product: func(t *testing.T) *product.Product {
				return newProduct(t, "Installation", product.Service, uom.SymbolUnit, "40", uom.SymbolKilogram)
			},
			qty: "3",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.product(t)
			lineUnit := ""
			if p != nil {
				lineUnit = uom.SymbolDozen
			}
			converter := new(MockUnitConverter)
			calc := services.NewLineWeightCalculator(converter)

			w, err := calc.Calculate(newLine(t, p, tc.qty, lineUnit), kg)

			require.NoError(t, err)
			assert.True(t, w.IsZero())
			converter.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestLineWeightCalculator_MissingWeight(t *testing.T) {
	p := newProduct(t, "Cast iron pan", product.Goods, uom.SymbolUnit, "", "")
	calc := services.NewLineWeightCalculator(uom.NewFactorConverter())

	_, err := calc.Calculate(newLine(t, p, "1", uom.SymbolUnit), unit(t, uom.SymbolKilogram))

	require.ErrorIs(t, err, services.ErrMissingWeight)
	var missing *services.MissingWeightError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Cast iron pan", missing.ProductName)
	assert.Equal(t, "Weight is missing on the product Cast iron pan", missing.Message())
	assert.Equal(t, "weight is missing: product Cast iron pan", err.Error())
}

func TestLineWeightCalculator_ZeroConfiguredWeightIsMissing(t *testing.T) {
	p := newProduct(t, "Feather", product.Assets, uom.SymbolUnit, "0", uom.SymbolGram)
	calc := services.NewLineWeightCalculator(uom.NewFactorConverter())

	_, err := calc.Calculate(newLine(t, p, "1", uom.SymbolUnit), unit(t, uom.SymbolGram))

	require.ErrorIs(t, err, services.ErrMissingWeight)
}

func TestLineWeightCalculator_SameUnitsSkipConversion(t *testing.T) {
	p := newProduct(t, "Rice bag", product.Goods, uom.SymbolUnit, "2.5", uom.SymbolKilogram)
	converter := new(MockUnitConverter)
	calc := services.NewLineWeightCalculator(converter)

	w, err := calc.Calculate(newLine(t, p, "3", uom.SymbolUnit), unit(t, uom.SymbolKilogram))

	require.NoError(t, err)
	assert.Equal(t, "8.00", w.String())
	converter.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything)
}

func TestLineWeightCalculator_KilogramsReportedInGrams(t *testing.T) {
	p := newProduct(t, "Kettle", product.Goods, uom.SymbolUnit, "1.0", uom.SymbolKilogram)
	calc := services.NewLineWeightCalculator(uom.NewFactorConverter())

	w, err := calc.Calculate(newLine(t, p, "1", uom.SymbolUnit), unit(t, uom.SymbolGram))

	require.NoError(t, err)
	assert.Equal(t, "1000.00", w.String())
}

func TestLineWeightCalculator_ConvertsQuantityThenWeight(t *testing.T) {
	p := newProduct(t, "Egg", product.Goods, uom.SymbolUnit, "0.0125", uom.SymbolKilogram)
	converter := new(MockUnitConverter)
	mock.InOrder(
		converter.On("Convert", symbolIs(uom.SymbolDozen), decimalIs("2"), symbolIs(uom.SymbolUnit)).
			Return(dec("24"), nil).Once(),
		converter.On("Convert", symbolIs(uom.SymbolKilogram), decimalIs("0.3"), symbolIs(uom.SymbolGram)).
			Return(dec("300"), nil).Once(),
	)
	calc := services.NewLineWeightCalculator(converter)

	w, err := calc.Calculate(newLine(t, p, "2", uom.SymbolDozen), unit(t, uom.SymbolGram))

	require.NoError(t, err)
	assert.Equal(t, "300.00", w.String())
	converter.AssertExpectations(t)
}

func TestLineWeightCalculator_RoundsOnceAfterConversions(t *testing.T) {
	calc := services.NewLineWeightCalculator(uom.NewFactorConverter())

	t.Run("intermediate fractions are kept", func(t *testing.T) {
		// half a dozen of 0.1 kg is 0.6 kg; rounding it to 1 kg first would give 1000 g
		p := newProduct(t, "Soap", product.Goods, uom.SymbolUnit, "0.1", uom.SymbolKilogram)

		w, err := calc.Calculate(newLine(t, p, "0.5", uom.SymbolDozen), unit(t, uom.SymbolGram))

		require.NoError(t, err)
		assert.Equal(t, "600.00", w.String())
	})

	t.Run("fractions round up", func(t *testing.T) {
		p := newProduct(t, "Pin", product.Goods, uom.SymbolUnit, "0.4", uom.SymbolGram)

		w, err := calc.Calculate(newLine(t, p, "1", uom.SymbolUnit), unit(t, uom.SymbolKilogram))

		require.NoError(t, err)
		assert.Equal(t, "1.00", w.String())
	})

	t.Run("exact products do not gain a unit", func(t *testing.T) {
		p := newProduct(t, "Tile", product.Goods, uom.SymbolUnit, "0.7", uom.SymbolKilogram)

		w, err := calc.Calculate(newLine(t, p, "10", uom.SymbolUnit), unit(t, uom.SymbolKilogram))

		require.NoError(t, err)
		assert.Equal(t, "7.00", w.String())
	})

	t.Run("non-terminating quantity conversion does not gain a unit", func(t *testing.T) {
		// 2 u is 1/6 dozen, cut to 0.1666666666666667 by the division
		p := newProduct(t, "Egg tray", product.Goods, uom.SymbolDozen, "6", uom.SymbolKilogram)

		w, err := calc.Calculate(newLine(t, p, "2", uom.SymbolUnit), unit(t, uom.SymbolKilogram))

		require.NoError(t, err)
		assert.Equal(t, "1.00", w.String())
	})

	t.Run("quantity conversion still rounds fractions up", func(t *testing.T) {
		p := newProduct(t, "Egg tray", product.Goods, uom.SymbolDozen, "6", uom.SymbolKilogram)

		w, err := calc.Calculate(newLine(t, p, "3", uom.SymbolUnit), unit(t, uom.SymbolKilogram))

		require.NoError(t, err)
		// 3 u is 1.5 kg
		assert.Equal(t, "2.00", w.String())
	})

	t.Run("divisible quantity conversion", func(t *testing.T) {
		p := newProduct(t, "Egg tray", product.Goods, uom.SymbolDozen, "3", uom.SymbolKilogram)

		w, err := calc.Calculate(newLine(t, p, "4", uom.SymbolUnit), unit(t, uom.SymbolKilogram))

		require.NoError(t, err)
		assert.Equal(t, "1.00", w.String())
	})

	t.Run("pounds to kilograms", func(t *testing.T) {
		p := newProduct(t, "Dumbbell", product.Goods, uom.SymbolUnit, "10", uom.SymbolPound)

		w, err := calc.Calculate(newLine(t, p, "2", uom.SymbolUnit), unit(t, uom.SymbolKilogram))

		require.NoError(t, err)
		// 20 lb = 9.0718474 kg
		assert.Equal(t, "10.00", w.String())
	})
}

func TestLineWeightCalculator_UnitsComparedBySymbol(t *testing.T) {
	p := newProduct(t, "Rice bag", product.Goods, uom.SymbolUnit, "2.5", uom.SymbolKilogram)
	converter := new(MockUnitConverter)
	calc := services.NewLineWeightCalculator(converter)

	otherKg, err := uom.NewUnit(uom.SymbolKilogram, "Carrier kilogram", uom.CategoryWeight, dec("1"), dec("1"))
	require.NoError(t, err)

	w, err := calc.Calculate(newLine(t, p, "1", uom.SymbolUnit), otherKg)

	require.NoError(t, err)
	assert.Equal(t, "3.00", w.String())
	converter.AssertNotCalled(t, "Convert", mock.Anything, mock.Anything, mock.Anything)
}

func TestLineWeightCalculator_ConversionErrorsPropagate(t *testing.T) {
	conversionErr := errors.New("no conversion path")

	t.Run("quantity conversion", func(t *testing.T) {
		p := newProduct(t, "Egg", product.Goods, uom.SymbolUnit, "0.05", uom.SymbolKilogram)
		converter := new(MockUnitConverter)
		converter.On("Convert", mock.Anything, mock.Anything, mock.Anything).Return(dec("0"), conversionErr).Once()
		calc := services.NewLineWeightCalculator(converter)

		w, err := calc.Calculate(newLine(t, p, "1", uom.SymbolDozen), unit(t, uom.SymbolKilogram))

		require.ErrorIs(t, err, conversionErr)
		assert.True(t, w.IsZero())
		converter.AssertExpectations(t)
	})

	t.Run("weight conversion", func(t *testing.T) {
		p := newProduct(t, "Egg", product.Goods, uom.SymbolUnit, "0.05", uom.SymbolKilogram)
		calc := services.NewLineWeightCalculator(uom.NewFactorConverter())

		_, err := calc.Calculate(newLine(t, p, "1", uom.SymbolUnit), unit(t, uom.SymbolLiter))

		require.ErrorIs(t, err, uom.ErrIncompatibleUnits)
	})
}

func TestLineWeightCalculator_NilLine(t *testing.T) {
	calc := services.NewLineWeightCalculator(uom.NewFactorConverter())

	w, err := calc.Calculate(nil, unit(t, uom.SymbolKilogram))

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, kernel.Weight{}, w)
}
