package service

import (
	"context"

	"github.com/todoapp/todo-api/internal/core/domain"
	"github.com/todoapp/todo-api/internal/core/ports"
)

// ToDoService implements the to-do use cases. Every operation is scoped to
// the caller's own rows; the *ForUser variants additionally compare the path
// user id against the token identity and reject mismatches before touching
// the store.
type ToDoService struct {
	todos ports.ToDoRepository
}

func NewToDoService(todos ports.ToDoRepository) *ToDoService {
	return &ToDoService{todos: todos}
}

func (s *ToDoService) List(ctx context.Context, callerID int64) ([]domain.ToDo, error) {
	return s.todos.FindByOwner(ctx, callerID)
}

func (s *ToDoService) Create(ctx context.Context, callerID int64, input ports.CreateToDoInput) (*domain.ToDo, error) {
	todo := &domain.ToDo{
		TodoText:    input.TodoText,
		CurrentTime: input.CurrentTime,
		Fatto:       input.Fatto,
		UserID:      callerID,
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *ToDoService) Get(ctx context.Context, callerID, todoID int64) (*domain.ToDo, error) {
	return s.todos.FindByIDAndOwner(ctx, todoID, callerID)
}

func (s *ToDoService) Update(ctx context.Context, callerID, todoID int64, upd domain.ToDoUpdate) error {
	return s.todos.UpdateFields(ctx, todoID, callerID, upd)
}

func (s *ToDoService) Delete(ctx context.Context, callerID, todoID int64) error {
	return s.todos.Delete(ctx, todoID, callerID)
}

// guard is the per-request ownership check: the token identity must match
// the user id in the request path.
func guard(callerID, userID int64) error {
	if callerID != userID {
		return domain.ErrForbidden
	}
	return nil
}

func (s *ToDoService) ListForUser(ctx context.Context, callerID, userID int64) ([]domain.ToDo, error) {
	if err := guard(callerID, userID); err != nil {
		return nil, err
	}
	return s.todos.FindByOwner(ctx, userID)
}

func (s *ToDoService) CreateForUser(ctx context.Context, callerID, userID int64, input ports.CreateToDoInput) (*domain.ToDo, error) {
	if err := guard(callerID, userID); err != nil {
		return nil, err
	}
	return s.Create(ctx, userID, input)
}

func (s *ToDoService) GetForUser(ctx context.Context, callerID, userID, todoID int64) (*domain.ToDo, error) {
	if err := guard(callerID, userID); err != nil {
		return nil, err
	}
	return s.todos.FindByIDAndOwner(ctx, todoID, userID)
}

func (s *ToDoService) UpdateForUser(ctx context.Context, callerID, userID, todoID int64, upd domain.ToDoUpdate) error {
	if err := guard(callerID, userID); err != nil {
		return err
	}
	return s.todos.UpdateFields(ctx, todoID, userID, upd)
}

func (s *ToDoService) DeleteForUser(ctx context.Context, callerID, userID, todoID int64) error {
	if err := guard(callerID, userID); err != nil {
		return err
	}
	return s.todos.Delete(ctx, todoID, userID)
}
