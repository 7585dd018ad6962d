package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soaeast/crm-api/internal/core/domain"
	"github.com/soaeast/crm-api/internal/core/ports"
)

// defaultInvitePassword seeds invited accounts until the member logs in and
// changes it.
const defaultInvitePassword = "welcome123"

// TeamHandler manages the team directory. Members are user records; an
// invite is a registration with a default password.
type TeamHandler struct {
	users ports.UserRepository
	auth  ports.AuthService
}

func NewTeamHandler(users ports.UserRepository, auth ports.AuthService) *TeamHandler {
	return &TeamHandler{users: users, auth: auth}
}

type inviteMemberRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type updateMemberRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Initials *string `json:"initials"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// Create invites a new team member.
func (h *TeamHandler) Create(c echo.Context) error {
	var req inviteMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	password := req.Password
	if password == "" {
		password = defaultInvitePassword
	}

	_, user, err := h.auth.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *TeamHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context(), ports.UserFilter{
		Role:   c.QueryParam("role"),
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *TeamHandler) Get(c echo.Context) error {
	user, err := h.users.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *TeamHandler) Update(c echo.Context) error {
	var req updateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.UpdateFields(c.Request().Context(), c.Param("id"), domain.UserPatch{
		Name:     req.Name,
		Role:     req.Role,
		Initials: req.Initials,
		Status:   req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *TeamHandler) Delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Team member deleted"})
}
