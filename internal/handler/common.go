package handler // handler package contains the HTTP view layer

import (
	"errors"
	"net/http"

	"github.com/iliyamo/railway-reservation/internal/repository"
	"github.com/labstack/echo/v4"
)

// repoError maps the repository sentinels onto HTTP responses so every
// handler renders failures the same way. Unknown errors become a
// generic 500 without leaking driver details to the client.
func repoError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrTrainNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
	case errors.Is(err, repository.ErrSeatNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
	case errors.Is(err, repository.ErrDuplicateTrain):
		return c.JSON(http.StatusConflict, echo.Map{"error": "train already exists"})
	case errors.Is(err, repository.ErrDateMismatch):
		return c.JSON(http.StatusConflict, echo.Map{"error": "departure date does not match the stored record"})
	case errors.Is(err, repository.ErrNoAvailableSeat):
		return c.JSON(http.StatusConflict, echo.Map{"error": "no available seat of the requested type"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
