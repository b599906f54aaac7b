package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"campuslink/internal/usecase"
)

const sessionKey = "session"

type AuthMiddleware struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthMiddleware(authUseCase *usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{
		authUseCase: authUseCase,
	}
}

// Authenticate verifies the bearer ID token and resolves the caller's
// session. Suspended users are rejected here with 403 and their refresh
// tokens revoked; no downstream handler ever sees their profile.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		sess, err := m.authUseCase.CurrentSession(c.Request().Context(), parts[1])
		if err != nil {
			return err
		}

		c.Set(sessionKey, sess)
		c.Set("uid", sess.UserID)

		return next(c)
	}
}

// SessionFromToken resolves a session outside the HTTP middleware chain.
// The WebSocket endpoint authenticates with this before upgrading.
func (m *AuthMiddleware) SessionFromToken(c echo.Context, token string) (*usecase.Session, error) {
	return m.authUseCase.CurrentSession(c.Request().Context(), token)
}

// CurrentSession returns the session placed in the request context by
// Authenticate, or nil on an unauthenticated route.
func CurrentSession(c echo.Context) *usecase.Session {
	sess, _ := c.Get(sessionKey).(*usecase.Session)
	return sess
}
