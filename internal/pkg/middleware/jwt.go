package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/ojekdriver/internal/pkg/jwt"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/piresc/ojekdriver/internal/pkg/requestcontext"
	"github.com/piresc/ojekdriver/internal/utils"
)

// Context keys set by JWTAuthMiddleware
const (
	ContextDriverID = "driver_id"
	ContextRole     = "user_role"
)

// JWTAuthMiddleware verifies the bearer token and requires one of roles
func JWTAuthMiddleware(config models.JWTConfig, roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret, config.Issuer)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			if len(roles) > 0 && !hasRole(claims.Role, roles) {
				return utils.ForbiddenResponse(c, "Role not allowed")
			}

			c.Set(ContextDriverID, claims.UserID)
			c.Set(ContextRole, claims.Role)
			AddAttribute(c, AttrDriverID, claims.UserID)
			req := c.Request()
			c.SetRequest(req.WithContext(requestcontext.WithDriverID(req.Context(), claims.UserID)))

			return next(c)
		}
	}
}

func hasRole(role string, allowed []string) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// DriverID returns the authenticated driver id
func DriverID(c echo.Context) string {
	id, _ := c.Get(ContextDriverID).(string)
	return id
}
