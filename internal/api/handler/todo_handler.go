package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/todoapp/todo-api/internal/api/metrics"
	"github.com/todoapp/todo-api/internal/core/domain"
	"github.com/todoapp/todo-api/internal/core/ports"
)

// ToDoHandler serves the /todo/ routes. Every operation is scoped to the
// caller identified by the validated access token.
type ToDoHandler struct {
	service ports.ToDoService
}

func NewToDoHandler(service ports.ToDoService) *ToDoHandler {
	return &ToDoHandler{service: service}
}

// List returns the caller's own to-do items.
//
// @Summary      List own to-do items
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ToDo
// @Failure      401  {object}  errorResponse
// @Router       /todo/ [get]
func (h *ToDoHandler) List(c echo.Context) error {
	callerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	todos, err := h.service.List(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	if todos == nil {
		todos = []domain.ToDo{}
	}
	return c.JSON(http.StatusOK, todos)
}

// Create inserts a new to-do item owned by the caller.
//
// @Summary      Create a to-do item
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createToDoRequest  true  "To-do details"
// @Success      201   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /todo/ [post]
func (h *ToDoHandler) Create(c echo.Context) error {
	callerID, err := ctxUserID(c)
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

	if _, err := h.service.Create(c.Request().Context(), callerID, ports.CreateToDoInput{
		TodoText:    req.TodoText,
		CurrentTime: req.CurrentTime,
		Fatto:       req.Fatto,
	}); err != nil {
		return err
	}

	metrics.ToDosCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Todo inserted"})
}

// Get returns one of the caller's to-do items.
//
// @Summary      Get a to-do item
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "To-do id"
// @Success      200  {object}  domain.ToDo
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /todo/{id}/ [get]
func (h *ToDoHandler) Get(c echo.Context) error {
	callerID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	todo, err := h.service.Get(c.Request().Context(), callerID, todoID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todo)
}

// Update applies a partial update to one of the caller's to-do items.
//
// @Summary      Update a to-do item
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "To-do id"
// @Param        body  body      updateToDoRequest  true  "Fields to update"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /todo/{id}/ [patch]
func (h *ToDoHandler) Update(c echo.Context) error {
	callerID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c, "id")
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
	if err := h.service.Update(c.Request().Context(), callerID, todoID, upd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "ToDo Updated."})
}

// Delete removes one of the caller's to-do items.
//
// @Summary      Delete a to-do item
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "To-do id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /todo/{id}/ [delete]
func (h *ToDoHandler) Delete(c echo.Context) error {
	callerID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	todoID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), callerID, todoID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "ToDo deleted."})
}
