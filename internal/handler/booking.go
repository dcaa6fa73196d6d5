package handler // handler package contains booking and seat view handlers

import (
	"net/http" // http defines status code constants
	"strconv"  // strconv parses the seat number path param
	"strings"  // strings normalizes text input
	"time"     // time stamps the published events

	"github.com/iliyamo/railway-reservation/internal/model"
	"github.com/iliyamo/railway-reservation/internal/queue"
	"github.com/iliyamo/railway-reservation/internal/repository"
	queue_publisher "github.com/iliyamo/railway-reservation/internal/service"
	"github.com/labstack/echo/v4"
)

// BookingHandler exposes the seat inventory over HTTP: booking,
// cancellation, the seat listing and the availability summary.
// Successful bookings and cancellations additionally publish a ticket
// event; publish failures never fail the request.
type BookingHandler struct {
	SeatRepo *repository.SeatRepo // inventory access
}

// NewBookingHandler constructs a BookingHandler with the given repository.
func NewBookingHandler(seatRepo *repository.SeatRepo) *BookingHandler {
	if seatRepo == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{SeatRepo: seatRepo}
}

// BookTicket handles POST /v1/trains/:number/bookings. It books the
// lowest available seat of the requested type for the passenger and
// returns the assigned seat number.
func (h *BookingHandler) BookTicket(c echo.Context) error {
	number := strings.TrimSpace(c.Param("number"))

	var body struct {
		PassengerName   string `json:"passenger_name"`
		PassengerAge    int    `json:"passenger_age"`
		PassengerGender string `json:"passenger_gender"`
		SeatType        string `json:"seat_type"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	name := strings.TrimSpace(body.PassengerName)
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "passenger_name is required"})
	}
	if body.PassengerAge <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "passenger_age must be greater than zero"})
	}
	// Normalize the seat type so "window" and "Window" book the same pool.
	seatType := normalizeSeatType(body.SeatType)
	if !model.ValidSeatType(seatType) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat_type must be Window, Aisle or Middle"})
	}
	gender := strings.TrimSpace(body.PassengerGender)

	seat, err := h.SeatRepo.Book(c.Request().Context(), number, name, body.PassengerAge, gender, seatType)
	if err != nil {
		return repoError(c, err)
	}

	// Fire-and-forget event for downstream consumers; a broker outage
	// must not undo a booking that already committed.
	_ = queue_publisher.PublishTicketBooked(c.Request().Context(), queue.TicketBookedEvent{
		TrainNumber:   number,
		SeatNumber:    seat,
		SeatType:      seatType,
		PassengerName: name,
		BookedAt:      time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"train_number": number,
		"seat_number":  seat,
		"seat_type":    seatType,
	})
}

// normalizeSeatType maps case-insensitive input onto the stored labels.
// Unknown values pass through unchanged and fail the ValidSeatType check.
func normalizeSeatType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "window":
		return model.SeatTypeWindow
	case "aisle":
		return model.SeatTypeAisle
	case "middle":
		return model.SeatTypeMiddle
	}
	return strings.TrimSpace(t)
}

// CancelTicket handles DELETE /v1/trains/:number/seats/:seat. It frees
// the seat and clears the passenger fields; cancelling a seat that is
// already free succeeds as a no-op.
func (h *BookingHandler) CancelTicket(c echo.Context) error {
	number := strings.TrimSpace(c.Param("number"))
	seat, err := strconv.Atoi(c.Param("seat"))
	if err != nil || seat < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat must be a positive integer"})
	}

	if err := h.SeatRepo.Cancel(c.Request().Context(), number, seat); err != nil {
		return repoError(c, err)
	}

	_ = queue_publisher.PublishTicketCancelled(c.Request().Context(), queue.TicketCancelledEvent{
		TrainNumber: number,
		SeatNumber:  seat,
		CancelledAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{
		"train_number": number,
		"seat_number":  seat,
		"status":       "Available",
	})
}

// ListSeats handles GET /v1/trains/:number/seats and returns the full
// inventory ordered by seat number, each entry carrying its derived
// Booked/Available status.
func (h *BookingHandler) ListSeats(c echo.Context) error {
	number := strings.TrimSpace(c.Param("number"))
	seats, err := h.SeatRepo.ListByTrain(c.Request().Context(), number)
	if err != nil {
		return repoError(c, err)
	}

	type seatView struct {
		model.Seat
		Status string `json:"status"`
	}
	views := make([]seatView, 0, len(seats))
	for _, s := range seats {
		views = append(views, seatView{Seat: s, Status: s.Status()})
	}
	return c.JSON(http.StatusOK, echo.Map{"seats": views})
}

// GetAvailability handles GET /v1/trains/:number/availability and
// returns per-type available/booked counts plus the total seat count.
func (h *BookingHandler) GetAvailability(c echo.Context) error {
	number := strings.TrimSpace(c.Param("number"))
	summary, total, err := h.SeatRepo.Availability(c.Request().Context(), number)
	if err != nil {
		return repoError(c, err)
	}
	if summary == nil {
		summary = []repository.TypeAvailability{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"availability": summary,
		"total_seats":  total,
	})
}
