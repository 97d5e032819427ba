package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ryde/user-graph/internal/core/ports"
)

// AdminHandler exposes operator endpoints. Routes are mounted behind RBAC.
type AdminHandler struct {
	stats ports.StatsService
}

func NewAdminHandler(stats ports.StatsService) *AdminHandler {
	return &AdminHandler{stats: stats}
}

// Stats handles GET /v1/admin/stats.
//
// @Summary      Graph statistics
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	st, err := h.stats.Snapshot(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStatsResponse(st))
}
