package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"fastdelivery/internal/core/ports"
)

const (
	// SessionCookieName is the cookie carrying the opaque session token.
	SessionCookieName = "session_token"

	// SessionTTL bounds both the redis session entry and the cookie lifetime.
	SessionTTL = 24 * time.Hour

	identityContextKey = "identity"
)

// sessionAuth guards mutating routes. It resolves the session cookie against
// the server-side store and attaches the identity to the request context.
// Missing, unknown, and expired tokens are all rejected the same way.
func sessionAuth(sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, errorEnvelope{Error: "authentication required"})
			}

			identity, err := sessions.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorEnvelope{Error: "authentication required"})
			}

			c.Set(identityContextKey, identity)
			return next(c)
		}
	}
}

func identityFromContext(c echo.Context) (ports.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(ports.Identity)
	return identity, ok
}

func newSessionCookie(token string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
	}
}
