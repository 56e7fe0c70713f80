package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type IdentityConfig struct {
	Secret string
}

// NewIdentityMiddleware parses a bearer token when one is present and
// stashes its subject under the "user_id" context key. It never blocks
// a request: no route currently enforces authentication, the token is
// only informational.
func NewIdentityMiddleware(cfg *IdentityConfig) echo.MiddlewareFunc {
	key := []byte(cfg.Secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			if raw == "" {
				return next(c)
			}

			clean := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
			token, err := jwt.Parse(clean, func(t *jwt.Token) (any, error) {
				return key, nil
			})

			if err != nil || !token.Valid {
				log.Debugf("ignoring invalid bearer token: %v", err)
				return next(c)
			}

			if sub, suberr := token.Claims.GetSubject(); suberr == nil && sub != "" {
				c.Set("user_id", sub)
			}
			return next(c)
		}
	}
}
