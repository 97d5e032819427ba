package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ryde/user-graph/internal/core/ports"
)

// UserHandler handles HTTP requests for user profiles.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Me handles GET /v1/users/me.
//
// @Summary      Get the caller's profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	who, err := callerFrom(c)
	if err != nil {
		return err
	}
	p, err := h.service.Get(c.Request().Context(), who.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(*p))
}

// Get handles GET /v1/users/:id.
//
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	p, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(*p))
}

// List handles GET /v1/users.
//
// @Summary      List users, newest first
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size (max 100)"
// @Success      200    {object}  listResponse[userResponse]
// @Failure      400    {object}  errorResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	page, err := parsePagination(c)
	if err != nil {
		return err
	}
	res, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserList(res))
}

// Search handles GET /v1/users/search?q=.
//
// @Summary      Search users by name
// @Description  Case-insensitive substring match; a blank query returns an empty page.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        q      query     string  true   "Name fragment"
// @Param        page   query     int     false  "Page (1-based)"
// @Param        limit  query     int     false  "Page size (max 100)"
// @Success      200    {object}  listResponse[userResponse]
// @Router       /v1/users/search [get]
func (h *UserHandler) Search(c echo.Context) error {
	who, err := callerFrom(c)
	if err != nil {
		return err
	}
	page, err := parsePagination(c)
	if err != nil {
		return err
	}
	res, err := h.service.SearchByName(c.Request().Context(), who.ID, c.QueryParam("q"), page)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserList(res))
}

// Update handles PATCH /v1/users/:id.
//
// @Summary      Update a profile
// @Description  Only the account owner or an admin may update a profile.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "User id"
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	who, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := ports.UpdateProfileInput{
		ActorID:          who.ID,
		ActorRole:        who.Role,
		UserID:           c.Param("id"),
		Name:             req.Name,
		ClearDateOfBirth: req.ClearDOB,
		Address:          req.Address,
		Description:      req.Description,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		ClearLocation:    req.ClearLocation,
	}
	if req.DateOfBirth != nil && !req.ClearDOB {
		dob, err := parseDate(*req.DateOfBirth)
		if err != nil {
			return err
		}
		input.DateOfBirth = dob
	}

	p, err := h.service.UpdateProfile(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(*p))
}

// ChangePassword handles POST /v1/users/me/password.
//
// @Summary      Change the caller's password
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  changePasswordRequest  true  "Current and new password"
// @Success      204
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/users/me/password [post]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	who, err := callerFrom(c)
	if err != nil {
		return err
	}
	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.service.ChangePassword(c.Request().Context(), ports.ChangePasswordInput{
		UserID:          who.ID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Deactivate handles DELETE /v1/users/:id.
//
// @Summary      Deactivate an account
// @Description  Soft delete. Only the account owner or an admin may deactivate it.
// @Tags         users
// @Security     BearerAuth
// @Param        id   path  string  true  "User id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Deactivate(c echo.Context) error {
	who, err := callerFrom(c)
	if err != nil {
		return err
	}
	if err := h.service.Deactivate(c.Request().Context(), who.ID, who.Role, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
