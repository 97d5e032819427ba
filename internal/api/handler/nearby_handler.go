package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ryde/user-graph/internal/api/metrics"
	"github.com/ryde/user-graph/internal/core/ports"
)

// NearbyHandler serves proximity searches around the caller's stored location.
type NearbyHandler struct {
	service ports.NearbyService
}

func NewNearbyHandler(service ports.NearbyService) *NearbyHandler {
	return &NearbyHandler{service: service}
}

// Users handles GET /v1/users/nearby.
//
// @Summary      Active users near the caller
// @Description  Ordered by distance, nearest first. Distances are great-circle kilometers rounded to two decimals.
// @Tags         nearby
// @Produce      json
// @Security     BearerAuth
// @Param        radius  query     number  false  "Radius in km (default 10)"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  nearbyResponse
// @Failure      400     {object}  errorResponse
// @Router       /v1/users/nearby [get]
func (h *NearbyHandler) Users(c echo.Context) error {
	return h.search(c, "users", h.service.NearbyUsers)
}

// Friends handles GET /v1/friendships/nearby.
//
// @Summary      Friends near the caller
// @Tags         nearby
// @Produce      json
// @Security     BearerAuth
// @Param        radius  query     number  false  "Radius in km (default 10)"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  nearbyResponse
// @Failure      400     {object}  errorResponse
// @Router       /v1/friendships/nearby [get]
func (h *NearbyHandler) Friends(c echo.Context) error {
	return h.search(c, "friends", h.service.NearbyFriends)
}

type nearbyFunc func(ctx context.Context, in ports.NearbyInput) (*ports.NearbyResult, error)

func (h *NearbyHandler) search(c echo.Context, scope string, fn nearbyFunc) error {
	who, err := callerFrom(c)
	if err != nil {
		return err
	}
	page, err := parsePagination(c)
	if err != nil {
		return err
	}
	radius, err := parseRadius(c)
	if err != nil {
		return err
	}

	res, err := fn(c.Request().Context(), ports.NearbyInput{CallerID: who.ID, RadiusKm: radius, Page: page})
	if err != nil {
		return err
	}
	metrics.NearbySearchesTotal.WithLabelValues(scope).Inc()
	metrics.NearbyResultSize.WithLabelValues(scope).Observe(float64(res.Meta.Total))
	return c.JSON(http.StatusOK, toNearbyResponse(res))
}
