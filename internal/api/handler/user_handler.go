package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/todoapp/todo-api/internal/core/ports"
)

// UserHandler serves public user lookups.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Get returns a user by id. The password hash is excluded from the payload.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /user/{id}/ [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.service.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
