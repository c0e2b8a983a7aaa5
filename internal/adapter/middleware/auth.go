package middleware

import (
	"net/http"
	"strings"

	"agrimarket-backend/internal/domain/user"

	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// Auth verifies the bearer token and stores the caller on the echo context.
func Auth(tokens user.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, ok := strings.Cut(raw, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Not authorized, no token"})
			}
			p, err := tokens.Verify(strings.TrimSpace(token))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Not authorized, token failed"})
			}
			SetPrincipal(c, p)
			return next(c)
		}
	}
}

// RequireRoles must run after Auth.
func RequireRoles(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Not authorized"})
			}
			for _, r := range roles {
				if p.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{
				"error": "User role " + string(p.Role) + " is not authorized to access this route",
			})
		}
	}
}

func SetPrincipal(c echo.Context, p user.Principal) { c.Set(principalKey, p) }

func PrincipalFrom(c echo.Context) (user.Principal, bool) {
	p, ok := c.Get(principalKey).(user.Principal)
	return p, ok
}
