package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-reservation/internal/handler"
)

// RegisterBookings registers the seat inventory endpoints under /v1 and
// applies the provided middleware (rate limiting) to the whole group.
func RegisterBookings(e *echo.Echo, h *handler.BookingHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1/trains/:number", mw...)
	// Book the lowest available seat of a requested type.
	g.POST("/bookings", h.BookTicket)
	// Cancel a booking; cancelling a free seat is an idempotent success.
	g.DELETE("/seats/:seat", h.CancelTicket)
	// Full seat listing with derived Booked/Available status.
	g.GET("/seats", h.ListSeats)
	// Per-type availability summary plus the total seat count.
	g.GET("/availability", h.GetAvailability)
}
