package handler // handler package contains train registry handlers

import (
	"net/http" // http defines status code constants
	"strings"  // strings trims form input
	"time"     // time parses the departure date

	"github.com/iliyamo/railway-reservation/internal/model"
	"github.com/iliyamo/railway-reservation/internal/repository"
	"github.com/labstack/echo/v4"
)

// departureDateLayout is the wire format for departure dates; it is
// also the stored ISO-8601 form, so parsing doubles as normalization.
const departureDateLayout = "2006-01-02"

// TrainHandler exposes the train registry over HTTP. It binds and trims
// form input, hands it to the repository and renders typed results; all
// business rules live in the repository layer.
type TrainHandler struct {
	TrainRepo *repository.TrainRepo // registry access
	SeatRepo  *repository.SeatRepo  // inventory access for the detail view
}

// NewTrainHandler constructs a TrainHandler with the given repositories.
func NewTrainHandler(trainRepo *repository.TrainRepo, seatRepo *repository.SeatRepo) *TrainHandler {
	if trainRepo == nil || seatRepo == nil {
		panic("nil repository passed to NewTrainHandler")
	}
	return &TrainHandler{TrainRepo: trainRepo, SeatRepo: seatRepo}
}

// CreateTrain handles POST /v1/trains and registers a new train. The
// departure date must be YYYY-MM-DD; creating the train also seeds its
// seat inventory.
func (h *TrainHandler) CreateTrain(c echo.Context) error {
	var body struct {
		Number        string `json:"train_number"`
		Name          string `json:"train_name"`
		DepartureDate string `json:"departure_date"`
		Start         string `json:"starting_destination"`
		End           string `json:"ending_destination"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	t := model.Train{
		Number:        strings.TrimSpace(body.Number),
		Name:          strings.TrimSpace(body.Name),
		DepartureDate: strings.TrimSpace(body.DepartureDate),
		Start:         strings.TrimSpace(body.Start),
		End:           strings.TrimSpace(body.End),
	}
	if t.Number == "" || t.Name == "" || t.DepartureDate == "" || t.Start == "" || t.End == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	// Normalize the date to its ISO form before it reaches the store.
	day, err := time.Parse(departureDateLayout, t.DepartureDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "departure_date must be YYYY-MM-DD"})
	}
	t.DepartureDate = day.Format(departureDateLayout)

	if err := h.TrainRepo.Create(c.Request().Context(), &t); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

// ListTrains handles GET /v1/trains and returns every registered train.
func (h *TrainHandler) ListTrains(c echo.Context) error {
	trains, err := h.TrainRepo.ListAll(c.Request().Context())
	if err != nil {
		return repoError(c, err)
	}
	if trains == nil {
		trains = []model.Train{}
	}
	return c.JSON(http.StatusOK, echo.Map{"trains": trains})
}

// GetTrain handles GET /v1/trains/:number and returns one train.
func (h *TrainHandler) GetTrain(c echo.Context) error {
	number := strings.TrimSpace(c.Param("number"))
	t, err := h.TrainRepo.GetByNumber(c.Request().Context(), number)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// SearchTrains handles GET /v1/trains/search?from=&to= and returns the
// trains running between the two destinations.
func (h *TrainHandler) SearchTrains(c echo.Context) error {
	from := strings.TrimSpace(c.QueryParam("from"))
	to := strings.TrimSpace(c.QueryParam("to"))
	if from == "" || to == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "from and to are required"})
	}
	trains, err := h.TrainRepo.SearchByRoute(c.Request().Context(), from, to)
	if err != nil {
		return repoError(c, err)
	}
	if trains == nil {
		trains = []model.Train{}
	}
	return c.JSON(http.StatusOK, echo.Map{"trains": trains})
}

// DeleteTrain handles DELETE /v1/trains/:number?departure_date= and
// removes the train together with its seat inventory. The supplied
// departure date must equal the stored one; a mismatch is rejected.
func (h *TrainHandler) DeleteTrain(c echo.Context) error {
	number := strings.TrimSpace(c.Param("number"))
	date := strings.TrimSpace(c.QueryParam("departure_date"))
	if date == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "departure_date is required"})
	}
	day, err := time.Parse(departureDateLayout, date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "departure_date must be YYYY-MM-DD"})
	}

	if err := h.TrainRepo.Delete(c.Request().Context(), number, day.Format(departureDateLayout)); err != nil {
		return repoError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": number})
}
