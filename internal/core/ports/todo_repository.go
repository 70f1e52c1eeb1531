package ports

import (
	"context"

	"github.com/todoapp/todo-api/internal/core/domain"
)

// ToDoRepository defines persistence operations for to-do items. Every
// mutation is atomic at the single-row level; absent rows yield
// domain.ErrToDoNotFound.
type ToDoRepository interface {
	Create(ctx context.Context, todo *domain.ToDo) error
	// FindByIDAndOwner retrieves a to-do only when it belongs to userID;
	// rows owned by anyone else are indistinguishable from absent rows.
	FindByIDAndOwner(ctx context.Context, id, userID int64) (*domain.ToDo, error)
	FindByOwner(ctx context.Context, userID int64) ([]domain.ToDo, error)
	// UpdateFields applies the non-nil fields of upd to the row owned by
	// userID. The owner itself can never change.
	UpdateFields(ctx context.Context, id, userID int64, upd domain.ToDoUpdate) error
	Delete(ctx context.Context, id, userID int64) error
}
