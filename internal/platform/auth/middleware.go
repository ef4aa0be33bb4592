package auth

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const accountContextKey = "auth.account"

// Require verifies the bearer token and checks that its subject is still
// the active session. Requests presented after logout, or for a different
// account than the active one, are rejected.
func (s *Session) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return s.signingKey, nil
			})
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			current, err := s.slot.Current(c.Request().Context())
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "session lookup failed")
			}
			if current == nil || current.Username != claims.Subject {
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}

			c.Set(accountContextKey, current)
			return next(c)
		}
	}
}

// RequireRole restricts a route to the given roles. Admins pass regardless.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			acct := AccountFromContext(c)
			if acct == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
			}
			if acct.Role == "admin" {
				return next(c)
			}
			for _, role := range roles {
				if acct.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
		}
	}
}

// AccountFromContext returns the authenticated account, or nil when the
// request did not pass Require.
func AccountFromContext(c echo.Context) *Account {
	acct, _ := c.Get(accountContextKey).(*Account)
	return acct
}

// SetAccount places an account on the context. Intended for tests.
func SetAccount(c echo.Context, acct *Account) {
	c.Set(accountContextKey, acct)
}
