package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"saleweight/internal/adapters/in/http"
	"saleweight/internal/adapters/out/inmemory/unitrepo"
	"saleweight/internal/core/application/usecases/queries"
	"saleweight/internal/core/domain/model/uom"
	"saleweight/internal/core/domain/services"
	"saleweight/internal/core/ports"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger

	units      ports.UnitRepository
	calculator services.LineWeightCalculator
	aggregator services.SaleWeightAggregator
}

// NewCompositionRoot loads the unit catalog and wires the domain services.
// The configured carrier weight unit must exist in the catalog and be a
// weight unit.
func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	repo, err := unitrepo.NewInMemoryUnitRepository(uom.DefaultUnits())
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to load unit catalog: %w", err)
	}

	calculator := services.NewLineWeightCalculator(uom.NewFactorConverter())

	root := CompositionRoot{
		config:     config,
		logger:     logger,
		units:      repo,
		calculator: calculator,
		aggregator: services.NewSaleWeightAggregator(calculator),
	}

	if err = root.checkCarrierWeightUnit(); err != nil {
		return CompositionRoot{}, err
	}

	return root, nil
}

func (c *CompositionRoot) CreateGetAllUnitsQueryHandler() queries.GetAllUnitsQueryHandler {
	return queries.NewGetAllUnitsQueryHandler(c.units)
}

func (c *CompositionRoot) CreateGetUnitQueryHandler() queries.GetUnitQueryHandler {
	return queries.NewGetUnitQueryHandler(c.units)
}

func (c *CompositionRoot) CreateGetLineWeightQueryHandler() queries.GetLineWeightQueryHandler {
	return queries.NewGetLineWeightQueryHandler(c.units, c.calculator, c.config.CarrierWeightUnit)
}

func (c *CompositionRoot) CreateGetSaleWeightQueryHandler() queries.GetSaleWeightQueryHandler {
	return queries.NewGetSaleWeightQueryHandler(c.units, c.aggregator, c.config.CarrierWeightUnit)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateGetAllUnitsQueryHandler(),
		c.CreateGetUnitQueryHandler(),
		c.CreateGetLineWeightQueryHandler(),
		c.CreateGetSaleWeightQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) checkCarrierWeightUnit() error {
	query, err := queries.NewGetUnitQuery(c.config.CarrierWeightUnit)
	if err != nil {
		return fmt.Errorf("carrier weight unit: %w", err)
	}

	unit, err := c.CreateGetUnitQueryHandler().Handle(context.Background(), query)
	if err != nil {
		return fmt.Errorf("carrier weight unit: %w", err)
	}
	if !unit.IsWeight() {
		return fmt.Errorf("carrier weight unit: %s is a %s unit", unit.Symbol(), unit.Category())
	}

	return nil
}
