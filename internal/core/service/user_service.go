package service

import (
	"context"

	"github.com/todoapp/todo-api/internal/core/domain"
	"github.com/todoapp/todo-api/internal/core/ports"
)

// UserService exposes public user lookups. The password hash never leaves
// this layer serialized (json:"-" on the entity).
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}
