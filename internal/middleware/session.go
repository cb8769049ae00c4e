package middleware // middleware provides shared request processing for handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/garage-booking/internal/model"
	"github.com/iliyamo/garage-booking/internal/utils"
)

// identityKey is the echo context key under which SessionAuth stores the
// resolved identity.
const identityKey = "identity"

// SessionCookieName is the cookie carrying the signed session token.  The
// same token is also accepted as an Authorization bearer value.
const SessionCookieName = "session_token"

// IdentityFinder resolves a session id to the current identity snapshot.
// It returns (nil, nil) when no live session exists for the id.  Defined
// as an interface so tests can stub the session store.
type IdentityFinder interface {
	FindIdentity(ctx context.Context, sid string) (*model.Identity, error)
}

// SessionAuth returns a middleware that authenticates the request from
// its session token and injects the identity into the context.  Requests
// with no token, an invalid token or no live session row get a uniform
// 401; the response never reveals which of the three failed.
func SessionAuth(secret string, sessions IdentityFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, err := ResolveIdentity(c, secret, sessions)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "session lookup failed"})
			}
			if ident == nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
			}
			c.Set(identityKey, ident)
			return next(c)
		}
	}
}

// ResolveIdentity extracts the session token from the request and looks
// up the live identity.  A nil identity with nil error means the request
// is simply unauthenticated.  Exposed for handlers like GET /api/me that
// are reachable without a session.
func ResolveIdentity(c echo.Context, secret string, sessions IdentityFinder) (*model.Identity, error) {
	raw := TokenFromRequest(c)
	if raw == "" {
		return nil, nil
	}
	sid, err := utils.ParseSessionToken(secret, raw)
	if err != nil {
		return nil, nil
	}
	return sessions.FindIdentity(c.Request().Context(), sid)
}

// TokenFromRequest reads the session token from the Authorization header
// or, failing that, the session cookie.
func TokenFromRequest(c echo.Context) string {
	if auth := c.Request().Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

// CurrentIdentity returns the identity stored by SessionAuth, or nil when
// the request did not pass through it.
func CurrentIdentity(c echo.Context) *model.Identity {
	ident, _ := c.Get(identityKey).(*model.Identity)
	return ident
}
