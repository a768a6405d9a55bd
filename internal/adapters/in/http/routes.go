package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists the operations of openapi.yaml.
type ServerInterface interface {
	// GET /health
	GetHealth(ctx echo.Context) error
	// GET /api/v1/units
	GetUnits(ctx echo.Context) error
	// GET /api/v1/units/{symbol}
	GetUnit(ctx echo.Context, symbol string) error
	// POST /api/v1/sale-lines/weight
	GetSaleLineWeight(ctx echo.Context) error
	// POST /api/v1/sales/weight
	GetSaleWeight(ctx echo.Context) error
}

// ServerInterfaceWrapper binds path parameters before calling the handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

func (w *ServerInterfaceWrapper) GetUnits(ctx echo.Context) error {
	return w.Handler.GetUnits(ctx)
}

func (w *ServerInterfaceWrapper) GetUnit(ctx echo.Context) error {
	var symbol string

	err := runtime.BindStyledParameterWithOptions("simple", "symbol", ctx.Param("symbol"), &symbol,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter symbol: %s", err))
	}

	return w.Handler.GetUnit(ctx, symbol)
}

func (w *ServerInterfaceWrapper) GetSaleLineWeight(ctx echo.Context) error {
	return w.Handler.GetSaleLineWeight(ctx)
}

func (w *ServerInterfaceWrapper) GetSaleWeight(ctx echo.Context) error {
	return w.Handler.GetSaleWeight(ctx)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation of si on router.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET("/health", wrapper.GetHealth)
	router.GET("/api/v1/units", wrapper.GetUnits)
	router.GET("/api/v1/units/:symbol", wrapper.GetUnit)
	router.POST("/api/v1/sale-lines/weight", wrapper.GetSaleLineWeight)
	router.POST("/api/v1/sales/weight", wrapper.GetSaleWeight)
}
