package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/todoapp/todo-api/internal/auth"
	"github.com/todoapp/todo-api/internal/core/domain"
	"github.com/todoapp/todo-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := r.users[user.Email]; exists {
		return domain.ErrEmailTaken
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.Email] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func newTestAuthService() (*AuthService, *stubUserRepo, *auth.TokenManager) {
	repo := newStubUserRepo()
	tokens := auth.NewTokenManager(auth.TokenConfig{
		SecretKey: "test-secret",
		AccessTTL: time.Minute,
		Issuer:    "todo-api-test",
	})
	return NewAuthService(repo, auth.NewPasswordHasher(), tokens), repo, tokens
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "Mario", Surname: "Rossi", Email: "mario@example.com", Password: "pass123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, ports.RegisterInput{Name: "A", Surname: "B", Email: "dup@example.com", Password: "p"}); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	if _, err := svc.Register(ctx, ports.RegisterInput{Name: "C", Surname: "D", Email: "dup@example.com", Password: "q"}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected exactly one user row, got %d", len(repo.users))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	ctx := context.Background()

	user, err := svc.Register(ctx, ports.RegisterInput{Name: "A", Surname: "B", Email: "a@x.com", Password: "pw"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	pair, err := svc.Login(ctx, "a@x.com", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if pair.UserID != user.ID {
		t.Fatalf("expected user id %d, got %d", user.ID, pair.UserID)
	}

	// The access token is fresh; the refresh token only validates as refresh.
	if _, err := tokens.Validate(pair.AccessToken, auth.TypeAccess, true); err != nil {
		t.Errorf("access token should be fresh and valid: %v", err)
	}
	if _, err := tokens.Validate(pair.RefreshToken, auth.TypeRefresh, false); err != nil {
		t.Errorf("refresh token should be valid: %v", err)
	}
	if _, err := tokens.Validate(pair.RefreshToken, auth.TypeAccess, false); !errors.Is(err, auth.ErrInvalidToken) {
		t.Errorf("refresh token must not validate as access token, err = %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, ports.RegisterInput{Name: "A", Surname: "B", Email: "a@x.com", Password: "pw"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if _, err := svc.Login(ctx, "a@x.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestAuthService()

	// Unknown email reports the same error as a wrong password.
	if _, err := svc.Login(context.Background(), "ghost@x.com", "pw"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Refresh_NotFresh(t *testing.T) {
	svc, _, tokens := newTestAuthService()

	token, err := svc.Refresh(context.Background(), 42)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	userID, err := tokens.Validate(token, auth.TypeAccess, false)
	if err != nil {
		t.Fatalf("refreshed access token invalid: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user id 42, got %d", userID)
	}
	if _, err := tokens.Validate(token, auth.TypeAccess, true); !errors.Is(err, auth.ErrFreshRequired) {
		t.Fatalf("refreshed token must not be fresh, err = %v", err)
	}
}
