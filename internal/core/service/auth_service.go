package service

import (
	"context"
	"errors"

	"github.com/todoapp/todo-api/internal/auth"
	"github.com/todoapp/todo-api/internal/core/domain"
	"github.com/todoapp/todo-api/internal/core/ports"
)

// AuthService implements registration, login and token refresh.
type AuthService struct {
	users  ports.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
}

func NewAuthService(users ports.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         input.Name,
		Surname:      input.Surname,
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and returns a fresh access token plus a
// refresh token. An unknown email and a wrong password are deliberately
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueAccess(user.ID, true)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefresh(user.ID)
	if err != nil {
		return nil, err
	}

	return &ports.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID,
	}, nil
}

// Refresh mints a new non-fresh access token. No refresh token rotation.
func (s *AuthService) Refresh(ctx context.Context, userID int64) (string, error) {
	return s.tokens.IssueAccess(userID, false)
}
