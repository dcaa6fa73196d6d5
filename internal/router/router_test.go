package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-reservation/internal/database"
	"github.com/iliyamo/railway-reservation/internal/handler"
	"github.com/iliyamo/railway-reservation/internal/repository"
)

// newTestServer wires the full route table against an in-memory store,
// exercising the same registration main performs.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := database.InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	seats := repository.NewSeatRepo(db)
	trains := repository.NewTrainRepo(db, seats, 0)

	e := echo.New()
	RegisterRoutes(e)
	RegisterTrains(e, handler.NewTrainHandler(trains, seats))
	RegisterBookings(e, handler.NewBookingHandler(seats))
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutesEndToEnd(t *testing.T) {
	e := newTestServer(t)

	if rec := do(e, http.MethodGet, "/healthz", ""); rec.Code != http.StatusOK {
		t.Errorf("healthz: status %d", rec.Code)
	}

	create := `{"train_number":"T1","train_name":"Express","departure_date":"2025-01-01","starting_destination":"A","ending_destination":"B"}`
	if rec := do(e, http.MethodPost, "/v1/trains", create); rec.Code != http.StatusCreated {
		t.Fatalf("create train: status %d body %s", rec.Code, rec.Body.String())
	}

	// The literal "search" segment must win over the :number param route.
	if rec := do(e, http.MethodGet, "/v1/trains/search?from=A&to=B", ""); rec.Code != http.StatusOK {
		t.Errorf("route search: status %d body %s", rec.Code, rec.Body.String())
	}
	if rec := do(e, http.MethodGet, "/v1/trains/T1", ""); rec.Code != http.StatusOK {
		t.Errorf("get train: status %d", rec.Code)
	}

	book := `{"passenger_name":"Alice","passenger_age":30,"passenger_gender":"Female","seat_type":"Window"}`
	if rec := do(e, http.MethodPost, "/v1/trains/T1/bookings", book); rec.Code != http.StatusCreated {
		t.Errorf("book: status %d body %s", rec.Code, rec.Body.String())
	}
	if rec := do(e, http.MethodGet, "/v1/trains/T1/seats", ""); rec.Code != http.StatusOK {
		t.Errorf("list seats: status %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/v1/trains/T1/availability", ""); rec.Code != http.StatusOK {
		t.Errorf("availability: status %d", rec.Code)
	}
	if rec := do(e, http.MethodDelete, "/v1/trains/T1/seats/4", ""); rec.Code != http.StatusOK {
		t.Errorf("cancel: status %d", rec.Code)
	}
	if rec := do(e, http.MethodDelete, "/v1/trains/T1?departure_date=2025-01-01", ""); rec.Code != http.StatusOK {
		t.Errorf("delete train: status %d body %s", rec.Code, rec.Body.String())
	}
}
