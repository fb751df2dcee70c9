package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"goldloan-backend/internal/domain/identity"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const callerContextKey = "caller"

// Claims carried in the access token. Issuance lives in the identity
// service; this backend only verifies and consumes.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func parseToken(raw, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// JWTAuth verifies the Bearer token and stashes the resulting Caller in the
// request context. Handlers and the engine receive identity explicitly from
// here on; nothing downstream reads auth state ambiently.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing Authorization header"})
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "malformed Authorization header"})
			}
			claims, err := parseToken(parts[1], secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
			}

			var caller identity.Caller
			switch identity.Role(claims.Role) {
			case identity.RoleCustomer:
				caller = identity.Customer(claims.Subject)
			case identity.RoleStaff:
				caller = identity.Staff(claims.Subject)
			default:
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unknown role"})
			}
			c.Set(callerContextKey, caller)
			return next(c)
		}
	}
}

// CallerFrom retrieves the Caller placed by JWTAuth.
func CallerFrom(c echo.Context) (identity.Caller, bool) {
	caller, ok := c.Get(callerContextKey).(identity.Caller)
	return caller, ok
}

// SetCaller exists for handler tests that bypass JWTAuth.
func SetCaller(c echo.Context, caller identity.Caller) {
	c.Set(callerContextKey, caller)
}

// RequireCustomer rejects non-customer callers before the handler runs.
func RequireCustomer() echo.MiddlewareFunc {
	return requireRole(identity.RoleCustomer)
}

// RequireStaff rejects non-staff callers before the handler runs.
func RequireStaff() echo.MiddlewareFunc {
	return requireRole(identity.RoleStaff)
}

func requireRole(role identity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := CallerFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing caller identity"})
			}
			if caller.Role != role {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
			}
			return next(c)
		}
	}
}
