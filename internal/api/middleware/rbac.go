package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/levitica/hr-system/internal/api/metrics"
	"github.com/levitica/hr-system/internal/core/domain"
)

// RBAC enforces a role tier on top of Auth. The rejection message names the
// tier that was required, never the caller's own role.
func RBAC(tier string, allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, ok := Principal(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, credentialsMessage)
			}
			if _, ok := allowed[account.Role]; !ok {
				metrics.AuthRejectionsTotal.WithLabelValues("role").Inc()
				return echo.NewHTTPError(http.StatusForbidden,
					"Insufficient permissions. "+tier+" access required.")
			}
			return next(c)
		}
	}
}

// RequireSuperadmin admits exactly superadmin-role accounts.
func RequireSuperadmin() echo.MiddlewareFunc {
	return RBAC("Superadmin", domain.RoleSuperadmin)
}

// RequireAdmin admits admin and superadmin accounts.
func RequireAdmin() echo.MiddlewareFunc {
	return RBAC("Admin", domain.RoleAdmin, domain.RoleSuperadmin)
}
