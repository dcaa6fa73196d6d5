package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-reservation/internal/handler"
)

// RegisterTrains registers the train registry endpoints under /v1 and
// applies the provided middleware (rate limiting) to the whole group.
func RegisterTrains(e *echo.Echo, h *handler.TrainHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)
	// Register a new train; creation also seeds the seat inventory.
	g.POST("/trains", h.CreateTrain)
	// List every registered train.
	g.GET("/trains", h.ListTrains)
	// Route search must be registered before the :number param route so
	// "search" is not captured as a train number.
	g.GET("/trains/search", h.SearchTrains)
	// Look up one train by its number.
	g.GET("/trains/:number", h.GetTrain)
	// Delete a train; the departure_date query parameter must match the
	// stored record.
	g.DELETE("/trains/:number", h.DeleteTrain)
}
