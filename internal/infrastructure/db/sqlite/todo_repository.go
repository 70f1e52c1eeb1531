package sqlite

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/todoapp/todo-api/internal/core/domain"
)

// ToDoRepository persists to-do items in SQLite via GORM. All lookups and
// mutations are scoped by owner id, so a row belonging to another user is
// reported as not found rather than leaked.
type ToDoRepository struct {
	db *gorm.DB
}

func NewToDoRepository(db *gorm.DB) *ToDoRepository {
	return &ToDoRepository{db: db}
}

func (r *ToDoRepository) Create(ctx context.Context, todo *domain.ToDo) error {
	if err := r.db.WithContext(ctx).Create(todo).Error; err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

func (r *ToDoRepository) FindByIDAndOwner(ctx context.Context, id, userID int64) (*domain.ToDo, error) {
	var todo domain.ToDo
	err := r.db.WithContext(ctx).First(&todo, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrToDoNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return &todo, nil
}

func (r *ToDoRepository) FindByOwner(ctx context.Context, userID int64) ([]domain.ToDo, error) {
	var todos []domain.ToDo
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&todos).Error; err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// UpdateFields applies the non-nil fields of upd to the caller's row.
// A map is used so a false Fatto is still written (gorm skips zero values
// on struct updates).
func (r *ToDoRepository) UpdateFields(ctx context.Context, id, userID int64, upd domain.ToDoUpdate) error {
	fields := map[string]any{}
	if upd.TodoText != nil {
		fields["todo_text"] = *upd.TodoText
	}
	if upd.Fatto != nil {
		fields["fatto"] = *upd.Fatto
	}
	if len(fields) == 0 {
		// Nothing to change; still report absence of the row.
		_, err := r.FindByIDAndOwner(ctx, id, userID)
		return err
	}

	result := r.db.WithContext(ctx).Model(&domain.ToDo{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("update todo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrToDoNotFound
	}
	return nil
}

func (r *ToDoRepository) Delete(ctx context.Context, id, userID int64) error {
	result := r.db.WithContext(ctx).Delete(&domain.ToDo{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return fmt.Errorf("delete todo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrToDoNotFound
	}
	return nil
}
