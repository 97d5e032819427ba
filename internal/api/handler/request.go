package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ryde/user-graph/internal/core/ports"
)

// bindAndValidate decodes the body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}

// parsePagination reads the page and limit query parameters. Absent values
// fall back to the defaults applied by the core.
func parsePagination(c echo.Context) (ports.Pagination, error) {
	var p ports.Pagination
	err := echo.QueryParamsBinder(c).
		Int("page", &p.Page).
		Int("limit", &p.Limit).
		BindError()
	if err != nil {
		return p, echo.NewHTTPError(http.StatusBadRequest, "page and limit must be integers")
	}
	if p.Page < 0 || p.Limit < 0 {
		return p, echo.NewHTTPError(http.StatusBadRequest, "page and limit must be positive")
	}
	if p.Page > ports.MaxPage {
		return p, echo.NewHTTPError(http.StatusBadRequest, "page is out of range")
	}
	return p, nil
}

// parseRadius returns nil when the radius query parameter is absent.
func parseRadius(c echo.Context) (*float64, error) {
	if c.QueryParam("radius") == "" {
		return nil, nil
	}
	var r float64
	if err := echo.QueryParamsBinder(c).Float64("radius", &r).BindError(); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "radius must be a number of kilometers")
	}
	return &r, nil
}

func parseDate(s string) (*time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "dob must be formatted as "+dateLayout)
	}
	return &t, nil
}
