package http

import (
	"net/http"

	"laundrytrack/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity headers are set by the API gateway after authentication.
// This service trusts them; it never sees credentials.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

const (
	contextKeyUserID = "laundrytrack.user_id"
	contextKeyRole   = "laundrytrack.role"
)

// IdentityMiddleware extracts the caller's identity from gateway headers.
// Requests without a valid user ID and role are rejected with 401.
func IdentityMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			userID, err := kernel.UUIDFromString(ctx.Request().Header.Get(HeaderUserID))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing or invalid " + HeaderUserID + " header",
				})
			}

			role, err := kernel.RoleFromString(ctx.Request().Header.Get(HeaderUserRole))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing or invalid " + HeaderUserRole + " header",
				})
			}

			ctx.Set(contextKeyUserID, userID)
			ctx.Set(contextKeyRole, role)
			return next(ctx)
		}
	}
}

func callerID(ctx echo.Context) kernel.UUID {
	id, _ := ctx.Get(contextKeyUserID).(kernel.UUID)
	return id
}

func callerRole(ctx echo.Context) kernel.Role {
	role, _ := ctx.Get(contextKeyRole).(kernel.Role)
	return role
}
