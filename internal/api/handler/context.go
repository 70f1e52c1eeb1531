package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ctxUserID extracts the user id injected by the Auth middleware and
// fast-fails when it is absent: presence proves the middleware ran.
func ctxUserID(c echo.Context) (int64, error) {
	id, ok := c.Get("user_id").(int64)
	if !ok || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// pathID parses an integer path parameter. Non-numeric values are treated
// the same as absent resources.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return id, nil
}
