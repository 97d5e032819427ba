package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ryde/user-graph/internal/api/metrics"
	"github.com/ryde/user-graph/internal/core/domain"
	"github.com/ryde/user-graph/internal/core/ports"
)

// FriendshipHandler handles HTTP requests for the friendship graph.
type FriendshipHandler struct {
	service ports.FriendshipService
}

func NewFriendshipHandler(service ports.FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{service: service}
}

// Request handles POST /v1/friendships.
//
// @Summary      Send a friend request
// @Description  Re-opens a previously declined relationship instead of creating a new one.
// @Tags         friendships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      friendRequestRequest  true  "Target user"
// @Success      201   {object}  friendshipResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/friendships [post]
func (h *FriendshipHandler) Request(c echo.Context) error {
	who, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req friendRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	v, err := h.service.Request(c.Request().Context(), who.ID, req.UserID)
	if err != nil {
		countRejection(err)
		return err
	}
	metrics.FriendshipTransitionsTotal.WithLabelValues("request").Inc()
	return c.JSON(http.StatusCreated, toFriendshipResponse(*v))
}

// Act handles POST /v1/friendships/:id/action.
//
// @Summary      Accept, decline, block or unblock
// @Description  Only the recipient may accept or decline; either party may block; only the blocker may unblock.
// @Tags         friendships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Friendship id"
// @Param        body  body      friendshipActionRequest  true  "Action"
// @Success      200   {object}  friendshipResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/friendships/{id}/action [post]
func (h *FriendshipHandler) Act(c echo.Context) error {
	who, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req friendshipActionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	v, err := h.service.Act(c.Request().Context(), c.Param("id"), req.Action, who.ID)
	if err != nil {
		countRejection(err)
		return err
	}
	metrics.FriendshipTransitionsTotal.WithLabelValues(req.Action).Inc()
	return c.JSON(http.StatusOK, toFriendshipResponse(*v))
}

// List handles GET /v1/friendships.
//
// @Summary      List the caller's relationships
// @Tags         friendships
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "pending, accepted, declined or blocked"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  listResponse[friendshipResponse]
// @Router       /v1/friendships [get]
func (h *FriendshipHandler) List(c echo.Context) error {
	return h.listFriendships(c, func(userID string, page ports.Pagination) (*ports.FriendshipPage, error) {
		return h.service.ListMine(c.Request().Context(), userID, c.QueryParam("status"), page)
	})
}

// Pending handles GET /v1/friendships/pending.
//
// @Summary      List requests waiting on the caller
// @Tags         friendships
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  listResponse[friendshipResponse]
// @Router       /v1/friendships/pending [get]
func (h *FriendshipHandler) Pending(c echo.Context) error {
	return h.listFriendships(c, func(userID string, page ports.Pagination) (*ports.FriendshipPage, error) {
		return h.service.ListPending(c.Request().Context(), userID, page)
	})
}

// Sent handles GET /v1/friendships/sent.
//
// @Summary      List the caller's unanswered requests
// @Tags         friendships
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  listResponse[friendshipResponse]
// @Router       /v1/friendships/sent [get]
func (h *FriendshipHandler) Sent(c echo.Context) error {
	return h.listFriendships(c, func(userID string, page ports.Pagination) (*ports.FriendshipPage, error) {
		return h.service.ListSent(c.Request().Context(), userID, page)
	})
}

func (h *FriendshipHandler) listFriendships(c echo.Context, fetch func(string, ports.Pagination) (*ports.FriendshipPage, error)) error {
	who, err := callerFrom(c)
	if err != nil {
		return err
	}
	page, err := parsePagination(c)
	if err != nil {
		return err
	}
	res, err := fetch(who.ID, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFriendshipList(res))
}

// Friends handles GET /v1/friendships/friends.
//
// @Summary      List the caller's friends
// @Tags         friendships
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  listResponse[friendResponse]
// @Router       /v1/friendships/friends [get]
func (h *FriendshipHandler) Friends(c echo.Context) error {
	who, err := callerFrom(c)
	if err != nil {
		return err
	}
	page, err := parsePagination(c)
	if err != nil {
		return err
	}
	res, err := h.service.ListFriends(c.Request().Context(), who.ID, page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFriendList(res))
}

// Search handles GET /v1/friendships/search?q=.
//
// @Summary      Search the caller's friends by name
// @Tags         friendships
// @Produce      json
// @Security     BearerAuth
// @Param        q      query     string  true   "Name fragment"
// @Param        page   query     int     false  "Page (1-based)"
// @Param        limit  query     int     false  "Page size (max 100)"
// @Success      200    {object}  listResponse[userResponse]
// @Router       /v1/friendships/search [get]
func (h *FriendshipHandler) Search(c echo.Context) error {
	who, err := callerFrom(c)
	if err != nil {
		return err
	}
	page, err := parsePagination(c)
	if err != nil {
		return err
	}
	res, err := h.service.SearchFriends(c.Request().Context(), who.ID, c.QueryParam("q"), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserList(res))
}

// Status handles GET /v1/friendships/status?user_id=.
//
// @Summary      Relationship between the caller and another user
// @Tags         friendships
// @Produce      json
// @Security     BearerAuth
// @Param        user_id  query     string  true  "Other user id"
// @Success      200      {object}  friendshipStatusResponse
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/friendships/status [get]
func (h *FriendshipHandler) Status(c echo.Context) error {
	who, err := callerFrom(c)
	if err != nil {
		return err
	}
	other := c.QueryParam("user_id")
	if other == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	st, err := h.service.StatusWith(c.Request().Context(), who.ID, other)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, friendshipStatusResponse{
		AreFriends:     st.AreFriends,
		Status:         string(st.Status),
		FriendshipID:   st.FriendshipID,
		CanSendRequest: st.CanSendRequest,
	})
}

func countRejection(err error) {
	reason := "other"
	switch {
	case errors.Is(err, domain.ErrInvalidTransition):
		reason = "invalid_transition"
	case errors.Is(err, domain.ErrBlocked):
		reason = "blocked"
	case errors.Is(err, domain.ErrDuplicateRequest):
		reason = "duplicate"
	case errors.Is(err, domain.ErrConflict):
		reason = "conflict"
	case errors.Is(err, domain.ErrNotFound):
		reason = "not_found"
	case errors.Is(err, domain.ErrBadRequest):
		reason = "bad_request"
	}
	metrics.FriendshipRejectionsTotal.WithLabelValues(reason).Inc()
}
