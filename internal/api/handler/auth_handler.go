package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/todoapp/todo-api/internal/api/metrics"
	"github.com/todoapp/todo-api/internal/core/domain"
	"github.com/todoapp/todo-api/internal/core/ports"
)

// AuthHandler handles sign-up, sign-in and token refresh.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignUp registers a new user.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Registration details"
// @Success      201   {object}  signUpResponse
// @Failure      401   {object}  errorResponse  "Duplicate email"
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /sign-up/ [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	_, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		// 401 on duplicate email mirrors the public API contract, odd as
		// the status code is.
		if errors.Is(err, domain.ErrEmailTaken) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Email already exists. Please try again"})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "An error occurred while creating the user"})
	}

	metrics.UsersRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, signUpResponse{
		Message: "Registration completed successfully",
		Status:  "created",
	})
}

// SignIn authenticates a user and returns a fresh access token plus a
// refresh token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Login credentials"
// @Success      200   {object}  signInResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /sign-in/ [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}

	pair, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid credentials. Please try again"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, signInResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ID:           pair.UserID,
	})
}

// Refresh mints a new non-fresh access token from a valid refresh token.
//
// @Summary      Refresh the access token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  refreshResponse
// @Failure      401  {object}  errorResponse
// @Router       /refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	accessToken, err := h.authService.Refresh(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	metrics.TokenRefreshesTotal.Inc()
	return c.JSON(http.StatusOK, refreshResponse{AccessToken: accessToken})
}
