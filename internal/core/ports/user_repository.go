package ports

import (
	"context"

	"github.com/todoapp/todo-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts the user and assigns its id. A duplicate email yields
	// domain.ErrEmailTaken with no row persisted.
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
