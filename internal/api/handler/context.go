package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/levitica/hr-system/internal/api/middleware"
	"github.com/levitica/hr-system/internal/core/domain"
)

// principal extracts the account resolved by the Auth middleware and
// fast-fails before any service call: a missing principal means the route
// was wired without the gate, which must never admit the request.
func principal(c echo.Context) (*domain.Account, error) {
	account, ok := middleware.Principal(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication principal")
	}
	return account, nil
}
