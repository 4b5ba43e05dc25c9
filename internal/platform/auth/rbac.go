package auth

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
)

// RequireRole rejects callers holding none of roles with 403. Admins pass.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	denied := "required role: " + strings.Join(roles, " or ")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !HasAnyRole(RolesFromContext(c.Request().Context()), roles...) {
				return echo.NewHTTPError(http.StatusForbidden, denied)
			}
			return next(c)
		}
	}
}

func HasAnyRole(userRoles []string, roles ...string) bool {
	if slices.Contains(userRoles, RoleAdmin) {
		return true
	}
	return slices.ContainsFunc(userRoles, func(r string) bool { return slices.Contains(roles, r) })
}

// CanAccessOwned reports whether the caller on ctx may touch a resource owned
// by ownerID: unowned resources are open, owners always pass, and otherwise
// the caller needs one of overrideRoles.
func CanAccessOwned(ctx context.Context, ownerID string, overrideRoles ...string) bool {
	if ownerID == "" || ownerID == UserIDFromContext(ctx) {
		return true
	}
	return HasAnyRole(RolesFromContext(ctx), overrideRoles...)
}
