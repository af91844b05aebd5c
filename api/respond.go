package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"ativos.GO/core/errs"
)

// Error maps service errors onto HTTP status codes: validation failures
// become 400, missing records 404, everything else 500.
func Error(c echo.Context, err error) error {
	switch {
	case errs.IsValidation(err):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errs.IsNotFound(err):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}

// IDParam parses a numeric path parameter.
func IDParam(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errs.Validationf("invalid %s %q", name, raw)
	}
	return uint(id), nil
}
