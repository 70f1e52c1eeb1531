package ports

import (
	"context"

	"github.com/todoapp/todo-api/internal/core/domain"
)

// CreateToDoInput carries the fields needed to create a new to-do item.
type CreateToDoInput struct {
	TodoText    string
	CurrentTime string
	Fatto       bool
}

// ToDoService defines use-case operations on to-do items. CallerID is the
// user id extracted from the validated access token; every operation is
// scoped to the caller's own rows. The *ForUser variants additionally guard
// the path user id against the caller and return domain.ErrForbidden on
// mismatch.
type ToDoService interface {
	List(ctx context.Context, callerID int64) ([]domain.ToDo, error)
	Create(ctx context.Context, callerID int64, input CreateToDoInput) (*domain.ToDo, error)
	Get(ctx context.Context, callerID, todoID int64) (*domain.ToDo, error)
	Update(ctx context.Context, callerID, todoID int64, upd domain.ToDoUpdate) error
	Delete(ctx context.Context, callerID, todoID int64) error

	ListForUser(ctx context.Context, callerID, userID int64) ([]domain.ToDo, error)
	CreateForUser(ctx context.Context, callerID, userID int64, input CreateToDoInput) (*domain.ToDo, error)
	GetForUser(ctx context.Context, callerID, userID, todoID int64) (*domain.ToDo, error)
	UpdateForUser(ctx context.Context, callerID, userID, todoID int64, upd domain.ToDoUpdate) error
	DeleteForUser(ctx context.Context, callerID, userID, todoID int64) error
}
