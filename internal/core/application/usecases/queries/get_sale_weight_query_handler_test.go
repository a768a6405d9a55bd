package queries_test

import (
	"context"
	"errors"
	"testing"

	"saleweight/internal/core/application/usecases/queries"
	"saleweight/internal/core/domain/model/uom"
	"saleweight/internal/core/domain/services"
	"saleweight/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type GetSaleWeightQueryHandlerTestSuite struct {
	suite.Suite
	handler queries.GetSaleWeightQueryHandler
}

func (suite *GetSaleWeightQueryHandlerTestSuite) SetupTest() {
	aggregator := services.NewSaleWeightAggregator(
		services.NewLineWeightCalculator(uom.NewFactorConverter()),
	)
	suite.handler = queries.NewGetSaleWeightQueryHandler(newUnitRepository(suite.T()), aggregator, uom.SymbolKilogram)
}

func (suite *GetSaleWeightQueryHandlerTestSuite) TestHandle_EmptySale_WeighsZero() {
	query, err := queries.NewGetSaleWeightQuery("", "", nil)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(resp.Weight.IsZero())
	suite.Empty(resp.Lines)
	suite.Equal("kg", resp.WeightUnit.Symbol())
	suite.NoError(resp.SaleID.Validate())
}

func (suite *GetSaleWeightQueryHandlerTestSuite) TestHandle_SumsRoundedLineWeights() {
	lines := []queries.LineInput{
		riceLine("3", "u"),
		{Quantity: dec("4")},
		{
			Product: &queries.ProductInput{
				Name:        "Flour",
				Type:        "goods",
				DefaultUnit: "u",
				Weight:      decPtr("500"),
				WeightUnit:  "g",
			},
			Quantity: dec("3"),
			Unit:     "u",
		},
	}
	query, err := queries.NewGetSaleWeightQuery("550e8400-e29b-41d4-a716-446655440000", "", lines)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("550e8400-e29b-41d4-a716-446655440000", resp.SaleID.String())
	suite.Require().Len(resp.Lines, 3)
	suite.Equal("8.00", resp.Lines[0].String())
	suite.Equal("0.00", resp.Lines[1].String())
	suite.Equal("2.00", resp.Lines[2].String())
	suite.Equal("10.00", resp.Weight.String())
}

func (suite *GetSaleWeightQueryHandlerTestSuite) TestHandle_ExplicitWeightUnit() {
	query, err := queries.NewGetSaleWeightQuery("", "g", []queries.LineInput{riceLine("1", "u")})
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal("g", resp.WeightUnit.Symbol())
	suite.Equal("2500.00", resp.Weight.String())
}

func (suite *GetSaleWeightQueryHandlerTestSuite) TestHandle_LineMissingWeight_FailsWholeSale() {
	broken := riceLine("1", "u")
	broken.Product.Name = "Mystery box"
	broken.Product.Weight = nil
	query, err := queries.NewGetSaleWeightQuery("", "", []queries.LineInput{riceLine("3", "u"), broken})
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)

	var missing *services.MissingWeightError
	suite.Require().True(errors.As(err, &missing))
	suite.Equal("Mystery box", missing.ProductName)
	suite.Equal(queries.GetSaleWeightQueryResponse{}, resp)
}

func (suite *GetSaleWeightQueryHandlerTestSuite) TestHandle_InvalidLine_ReturnsError() {
	line := riceLine("1", "m")
	query, err := queries.NewGetSaleWeightQuery("", "", []queries.LineInput{line})
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.Contains(err.Error(), "m is a length unit but Rice bag is counted in unit")
}

func (suite *GetSaleWeightQueryHandlerTestSuite) TestHandle_NonWeightSaleUnit_ReturnsInvalid() {
	query, err := queries.NewGetSaleWeightQuery("", "l", nil)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *GetSaleWeightQueryHandlerTestSuite) TestHandle_QueryNotConstructed_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetSaleWeightQuery{})

	suite.ErrorIs(err, queries.ErrGetSaleWeightQueryIsNotConstructed)
}

func TestGetSaleWeightQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetSaleWeightQueryHandlerTestSuite))
}
