package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/todoapp/todo-api/internal/auth"
)

// tokenError is the error envelope used for every token failure. The error
// field carries a machine-readable code alongside the human message.
type tokenError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Auth validates the bearer token as the given type and injects the token's
// user id into the echo context under "user_id". requireFresh additionally
// rejects access tokens obtained through /refresh.
func Auth(tm *auth.TokenManager, required auth.TokenType, requireFresh bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, tokenError{
					Message: "Request does not contain an access token.",
					Error:   "authorization_required",
				})
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, tokenError{
					Message: "Invalid authorization header.",
					Error:   "authorization_required",
				})
			}

			userID, err := tm.Validate(parts[1], required, requireFresh)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, tokenErrorFor(err))
			}

			c.Set("user_id", userID)
			return next(c)
		}
	}
}

func tokenErrorFor(err error) tokenError {
	switch {
	case errors.Is(err, auth.ErrTokenExpired):
		return tokenError{Message: "The token has expired.", Error: "token_expired"}
	case errors.Is(err, auth.ErrInvalidSignature):
		return tokenError{Message: "Signature verification failed.", Error: "invalid_token"}
	case errors.Is(err, auth.ErrFreshRequired):
		return tokenError{Message: "Fresh token required.", Error: "fresh_required"}
	default:
		return tokenError{Message: "Token verification failed.", Error: "invalid_token"}
	}
}
