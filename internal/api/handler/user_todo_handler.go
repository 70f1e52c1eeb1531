package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/todoapp/todo-api/internal/api/metrics"
	"github.com/todoapp/todo-api/internal/core/domain"
	"github.com/todoapp/todo-api/internal/core/ports"
)

// UserToDoHandler serves the /user/:id/todo/ routes. The path user id must
// match the token identity; the service layer rejects mismatches with 403.
type UserToDoHandler struct {
	service ports.ToDoService
}

func NewUserToDoHandler(service ports.ToDoService) *UserToDoHandler {
	return &UserToDoHandler{service: service}
}

// List returns all to-do items of the addressed user.
//
// @Summary      List a user's to-do items
// @Tags         user-todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id (must match the token identity)"
// @Success      200  {array}   domain.ToDo
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /user/{id}/todo/ [get]
func (h *UserToDoHandler) List(c echo.Context) error {
	callerID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	todos, err := h.service.ListForUser(c.Request().Context(), callerID, userID)
	if err != nil {
		return err
	}
	if todos == nil {
		todos = []domain.ToDo{}
	}
	return c.JSON(http.StatusOK, todos)
}

// Create inserts a to-do item for the addressed user.
//
// @Summary      Create a to-do item for a user
// @Tags         user-todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id (must match the token identity)"
// @Param        body  body      createToDoRequest  true  "To-do details"
// @Success      201   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /user/{id}/todo/ [post]
func (h *UserToDoHandler) Create(c echo.Context) error {
	callerID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req createToDoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	if _, err := h.service.CreateForUser(c.Request().Context(), callerID, userID, ports.CreateToDoInput{
		TodoText:    req.TodoText,
		CurrentTime: req.CurrentTime,
		Fatto:       req.Fatto,
	}); err != nil {
		return err
	}

	metrics.ToDosCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Todo inserted correctly."})
}

// Get returns a single to-do item of the addressed user.
//
// @Summary      Get a user's to-do item
// @Tags         user-todos
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int  true  "User id (must match the token identity)"
// @Param        todo_id  path      int  true  "To-do id"
// @Success      200      {object}  domain.ToDo
// @Failure      401      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /user/{id}/todo/{todo_id}/ [get]
func (h *UserToDoHandler) Get(c echo.Context) error {
	callerID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	todoID, err := pathID(c, "todo_id")
	if err != nil {
		return err
	}

	todo, err := h.service.GetForUser(c.Request().Context(), callerID, userID, todoID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Update applies a partial update to a to-do item of the addressed user.
//
// @Summary      Update a user's to-do item
// @Tags         user-todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                true  "User id (must match the token identity)"
// @Param        todo_id  path      int                true  "To-do id"
// @Param        body     body      updateToDoRequest  true  "Fields to update"
// @Success      200      {object}  messageResponse
// @Failure      401      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /user/{id}/todo/{todo_id}/ [patch]
func (h *UserToDoHandler) Update(c echo.Context) error {
	callerID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	todoID, err := pathID(c, "todo_id")
	if err != nil {
		return err
	}

	var req updateToDoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	upd := domain.ToDoUpdate{TodoText: req.TodoText, Fatto: req.Fatto}
	if err := h.service.UpdateForUser(c.Request().Context(), callerID, userID, todoID, upd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "ToDo Updated."})
}

// Delete removes a to-do item of the addressed user.
//
// @Summary      Delete a user's to-do item
// @Tags         user-todos
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int  true  "User id (must match the token identity)"
// @Param        todo_id  path      int  true  "To-do id"
// @Success      200      {object}  messageResponse
// @Failure      401      {object}  errorResponse
// @Failure      403      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /user/{id}/todo/{todo_id}/ [delete]
func (h *UserToDoHandler) Delete(c echo.Context) error {
	callerID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	todoID, err := pathID(c, "todo_id")
	if err != nil {
		return err
	}

	if err := h.service.DeleteForUser(c.Request().Context(), callerID, userID, todoID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "ToDo deleted."})
}
