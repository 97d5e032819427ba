package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ryde/user-graph/internal/api/middleware"
)

type caller struct {
	ID   string
	Role string
}

// callerFrom extracts the identity injected by the Auth middleware. A missing
// user id means the route was mounted without Auth; reject with 401.
func callerFrom(c echo.Context) (caller, error) {
	id, _ := c.Get(middleware.ContextUserID).(string)
	if id == "" {
		return caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ := c.Get(middleware.ContextRole).(string)
	return caller{ID: id, Role: role}, nil
}
