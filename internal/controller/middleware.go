package controller

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo"
)

const tokenCookieName = "token"

type authMiddleware struct {
	secret []byte
}

func newAuthMiddleware(secret []byte) *authMiddleware {
	return &authMiddleware{secret: secret}
}

// Authenticate extracts and verifies the session token, then exposes the
// verified user id to the handler. The rest of the stack treats that id
// as opaque.
func (m *authMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := tokenFromRequest(c)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, errorResponse{"No token provided. Please log in."})
		}

		claims := &jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			return m.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || claims.Subject == "" {
			return c.JSON(http.StatusUnauthorized, errorResponse{"Invalid or expired token. Please log in again."})
		}

		c.Set(userIdContextKey, claims.Subject)

		return next(c)
	}
}

// tokenFromRequest checks the session cookie first, then the bearer
// header for non-browser clients.
func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(tokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	return ""
}
