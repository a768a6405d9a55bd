package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"saleweight/internal/core/application/usecases/queries"
	"saleweight/internal/core/domain/model/uom"
	"saleweight/internal/core/domain/services"
	"saleweight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements ServerInterface on top of the query handlers.
type Server struct {
	getAllUnitsHandler   queries.GetAllUnitsQueryHandler
	getUnitHandler       queries.GetUnitQueryHandler
	getLineWeightHandler queries.GetLineWeightQueryHandler
	getSaleWeightHandler queries.GetSaleWeightQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	getAllUnitsHandler queries.GetAllUnitsQueryHandler,
	getUnitHandler queries.GetUnitQueryHandler,
	getLineWeightHandler queries.GetLineWeightQueryHandler,
	getSaleWeightHandler queries.GetSaleWeightQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		getAllUnitsHandler:   getAllUnitsHandler,
		getUnitHandler:       getUnitHandler,
		getLineWeightHandler: getLineWeightHandler,
		getSaleWeightHandler: getSaleWeightHandler,
		logger:               logger.With("component", "http"),
	}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetUnits handles GET /api/v1/units - lists the unit catalog.
func (s *Server) GetUnits(ctx echo.Context) error {
	units, err := s.getAllUnitsHandler.Handle(ctx.Request().Context(), queries.NewGetAllUnitsQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve units")
	}

	response := make([]Unit, len(units))
	for i, u := range units {
		response[i] = toUnitDTO(u)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUnit handles GET /api/v1/units/{symbol}.
func (s *Server) GetUnit(ctx echo.Context, symbol string) error {
	query, err := queries.NewGetUnitQuery(symbol)
	if err != nil {
		return s.fail(ctx, err, "Invalid unit symbol")
	}

	u, err := s.getUnitHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve unit")
	}

	return ctx.JSON(http.StatusOK, toUnitDTO(u))
}

// GetSaleLineWeight handles POST /api/v1/sale-lines/weight - weighs one line.
func (s *Server) GetSaleLineWeight(ctx echo.Context) error {
	var request LineWeightRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	query := queries.NewGetLineWeightQuery(request.Line.toInput(), deref(request.WeightUnit))

	resp, err := s.getLineWeightHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to compute line weight")
	}

	return ctx.JSON(http.StatusOK, LineWeightResponse{
		Weight:     toWeightNumber(resp.Weight),
		WeightUnit: resp.WeightUnit.Symbol(),
	})
}

// GetSaleWeight handles POST /api/v1/sales/weight - weighs a whole sale.
func (s *Server) GetSaleWeight(ctx echo.Context) error {
	var request SaleWeightRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines := make([]queries.LineInput, len(request.Lines))
	for i, line := range request.Lines {
		lines[i] = line.toInput()
	}

	query, err := queries.NewGetSaleWeightQuery(deref(request.Id), deref(request.WeightUnit), lines)
	if err != nil {
		return s.fail(ctx, err, "Invalid sale")
	}

	resp, err := s.getSaleWeightHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to compute sale weight")
	}

	lineWeights := make([]json.Number, len(resp.Lines))
	for i, w := range resp.Lines {
		lineWeights[i] = toWeightNumber(w)
	}

	return ctx.JSON(http.StatusOK, SaleWeightResponse{
		Id:         resp.SaleID.String(),
		Weight:     toWeightNumber(resp.Weight),
		WeightUnit: resp.WeightUnit.Symbol(),
		Lines:      lineWeights,
	})
}

// fail maps a use case error to a status code. Unexpected errors are logged
// and answered with fallback so internals do not leak to the client.
func (s *Server) fail(ctx echo.Context, err error, fallback string) error {
	var missing *services.MissingWeightError

	code, message := http.StatusInternalServerError, fallback
	switch {
	case errors.As(err, &missing):
		code, message = http.StatusUnprocessableEntity, missing.Message()
	case errors.Is(err, uom.ErrIncompatibleUnits):
		code, message = http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		code, message = http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code, message = http.StatusBadRequest, err.Error()
	default:
		s.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}
