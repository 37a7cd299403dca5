package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

// UserHandler handles HTTP requests for user accounts.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /api/users/.
//
// @Summary      Create a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), req.Username, req.Email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Get handles GET /api/users/:user_id.
//
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        user_id  path      string  true  "User ID (24-char hex)"
// @Success      200      {object}  userResponse
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /users/{user_id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// List handles GET /api/users/.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        skip   query     int  false  "Documents to skip"
// @Param        limit  query     int  false  "Maximum documents to return"
// @Success      200    {array}   userResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	skip := int64Query(c, "skip", 0)
	limit := int64Query(c, "limit", 100)

	users, err := h.service.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}

	out := make([]userResponse, len(users))
	for i, u := range users {
		out[i] = toUserResponse(u)
	}
	return c.JSON(http.StatusOK, out)
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
