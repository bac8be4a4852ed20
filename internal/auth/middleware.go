package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"sportshub/internal/model"
)

// userContextKey is where echo-jwt stores the parsed token.
const userContextKey = "user"

// Middleware returns the bearer-token verification middleware. Requests with
// no Authorization header fail with 401 "missing or malformed jwt"; requests
// with a bad signature or an expired token fail with 401 "invalid or expired
// jwt". The distinction between the two is kept in the response message.
func Middleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
	})
}

// RequireAdmin rejects verified requests whose role claim is not admin.
// Runs after Middleware, so a failed claims lookup means a token type we
// did not issue.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := ClaimsFromContext(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if claims.Role != model.RoleAdmin {
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}

// Bypass skips token verification entirely and injects a synthetic admin
// identity. It is wired only when the explicit AUTH_BYPASS flag is set.
func Bypass() echo.MiddlewareFunc {
	log.Println("WARNING: AUTH_BYPASS enabled, admin routes accept unauthenticated requests")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(userContextKey, &jwt.Token{
				Claims: &Claims{
					UserID: uuid.Nil,
					Email:  "dev@localhost",
					Role:   model.RoleAdmin,
				},
				Valid: true,
			})
			return next(c)
		}
	}
}

// AdminOnly returns the middleware chain guarding admin endpoints.
func AdminOnly(secret string, bypass bool) []echo.MiddlewareFunc {
	if bypass {
		return []echo.MiddlewareFunc{Bypass()}
	}
	return []echo.MiddlewareFunc{Middleware(secret), RequireAdmin()}
}

// ClaimsFromContext returns the claims attached by the middleware.
func ClaimsFromContext(c echo.Context) (*Claims, error) {
	token, ok := c.Get(userContextKey).(*jwt.Token)
	if !ok {
		return nil, errors.New("no token in context")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}
	return claims, nil
}
