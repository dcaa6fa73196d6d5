package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-reservation/internal/database"
	"github.com/iliyamo/railway-reservation/internal/repository"
)

// newTestHandlers wires both handlers against a fresh in-memory store.
func newTestHandlers(t *testing.T) (*TrainHandler, *BookingHandler) {
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
	return NewTrainHandler(trains, seats), NewBookingHandler(seats)
}

// request runs a handler through a fresh Echo context and returns the recorder.
func request(t *testing.T, h echo.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func createTrain(t *testing.T, th *TrainHandler, number string) {
	t.Helper()
	body := `{"train_number":"` + number + `","train_name":"Express","departure_date":"2025-01-01","starting_destination":"A","ending_destination":"B"}`
	rec := request(t, th.CreateTrain, http.MethodPost, "/v1/trains", body, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create train %s: status %d body %s", number, rec.Code, rec.Body.String())
	}
}

func TestCreateTrainEndpoint(t *testing.T) {
	th, _ := newTestHandlers(t)

	createTrain(t, th, "RJ12_EXP")

	// A train number with a space fails validation.
	bad := `{"train_number":"12 34","train_name":"Express","departure_date":"2025-01-01","starting_destination":"A","ending_destination":"B"}`
	rec := request(t, th.CreateTrain, http.MethodPost, "/v1/trains", bad, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("spaced train number: status %d, want 400", rec.Code)
	}

	// Missing fields are rejected before touching the registry.
	rec = request(t, th.CreateTrain, http.MethodPost, "/v1/trains", `{"train_number":"T2"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing fields: status %d, want 400", rec.Code)
	}

	// A malformed date is rejected.
	badDate := `{"train_number":"T3","train_name":"Express","departure_date":"01/02/2025","starting_destination":"A","ending_destination":"B"}`
	rec = request(t, th.CreateTrain, http.MethodPost, "/v1/trains", badDate, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed date: status %d, want 400", rec.Code)
	}

	// Re-registering the same number conflicts.
	dup := `{"train_number":"RJ12_EXP","train_name":"Other","departure_date":"2025-02-02","starting_destination":"C","ending_destination":"D"}`
	rec = request(t, th.CreateTrain, http.MethodPost, "/v1/trains", dup, nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate train: status %d, want 409", rec.Code)
	}
}

func TestGetAndListTrainEndpoints(t *testing.T) {
	th, _ := newTestHandlers(t)
	createTrain(t, th, "T1")

	rec := request(t, th.GetTrain, http.MethodGet, "/v1/trains/T1", "", map[string]string{"number": "T1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("get train: status %d", rec.Code)
	}
	var got struct {
		Number string `json:"train_number"`
		Name   string `json:"train_name"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Number != "T1" || got.Name != "Express" {
		t.Errorf("get train = %+v", got)
	}

	rec = request(t, th.GetTrain, http.MethodGet, "/v1/trains/GHOST", "", map[string]string{"number": "GHOST"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown train: status %d, want 404", rec.Code)
	}

	rec = request(t, th.ListTrains, http.MethodGet, "/v1/trains", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list trains: status %d", rec.Code)
	}
	var list struct {
		Trains []struct {
			Number string `json:"train_number"`
		} `json:"trains"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Trains) != 1 || list.Trains[0].Number != "T1" {
		t.Errorf("list trains = %+v", list)
	}
}

func TestSearchTrainsEndpoint(t *testing.T) {
	th, _ := newTestHandlers(t)
	createTrain(t, th, "T1")

	rec := request(t, th.SearchTrains, http.MethodGet, "/v1/trains/search?from=A&to=B", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("search: status %d", rec.Code)
	}
	var list struct {
		Trains []struct {
			Number string `json:"train_number"`
		} `json:"trains"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Trains) != 1 || list.Trains[0].Number != "T1" {
		t.Errorf("search = %+v", list)
	}

	rec = request(t, th.SearchTrains, http.MethodGet, "/v1/trains/search?from=A", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("search missing side: status %d, want 400", rec.Code)
	}

	rec = request(t, th.SearchTrains, http.MethodGet, "/v1/trains/search?from=X&to=Y", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("empty search: status %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list.Trains) != 0 {
		t.Errorf("empty search returned %+v", list)
	}
}

func TestDeleteTrainEndpoint(t *testing.T) {
	th, _ := newTestHandlers(t)
	createTrain(t, th, "T1")

	rec := request(t, th.DeleteTrain, http.MethodDelete, "/v1/trains/T1", "", map[string]string{"number": "T1"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("delete without date: status %d, want 400", rec.Code)
	}

	rec = request(t, th.DeleteTrain, http.MethodDelete, "/v1/trains/T1?departure_date=2025-12-31", "", map[string]string{"number": "T1"})
	if rec.Code != http.StatusConflict {
		t.Errorf("delete with wrong date: status %d, want 409", rec.Code)
	}

	rec = request(t, th.DeleteTrain, http.MethodDelete, "/v1/trains/T1?departure_date=2025-01-01", "", map[string]string{"number": "T1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = request(t, th.GetTrain, http.MethodGet, "/v1/trains/T1", "", map[string]string{"number": "T1"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("train still present after delete: status %d", rec.Code)
	}
}
