package ports

import (
	"context"

	"github.com/todoapp/todo-api/internal/core/domain"
)

// RegisterInput carries the sign-up form fields.
type RegisterInput struct {
	Name     string
	Surname  string
	Email    string
	Password string
}

// TokenPair is returned on successful login. The access token is fresh;
// the refresh token can only mint further (non-fresh) access tokens.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	UserID       int64
}

// AuthService implements registration, login and access-token refresh.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	// Refresh mints a new non-fresh access token for userID. The caller is
	// responsible for having validated the refresh token beforehand.
	Refresh(ctx context.Context, userID int64) (string, error)
}

// UserService exposes public user lookups.
type UserService interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}
