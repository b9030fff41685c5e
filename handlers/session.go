package handlers

import (
	"net/http"

	"mypodinfo/domain"
	"mypodinfo/helpers"
	"mypodinfo/interfaces"
	"mypodinfo/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const sessionContextKey = "podinfo.session"

// SessionConfig configures NewSessionMiddleware.
type SessionConfig struct {
	// Skipper defines a function to skip the middleware. Default skips every route but GET /api/podinfo.
	Skipper middleware.Skipper
	// NewID generates ids for new sessions.
	NewID func() string
}

// NewSessionMiddleware loads the session named by the podinfo.session cookie, or starts a new one
// when the cookie is absent or the session expired. New sessions get the cookie set on the response.
// Saving is left to the handler. A failing store read aborts the request with session_store_failure.
func NewSessionMiddleware(store interfaces.SessionStore, config SessionConfig, logger log.Logger) echo.MiddlewareFunc {
	store = helpers.NilPanic(store, "handlers.session.go: store is required")
	newID := helpers.NilPanic(config.NewID, "handlers.session.go: NewID is required")
	logger = log.WithPrefix(helpers.NilPanic(logger, "handlers.session.go: logger is required"), "component", "sessions")

	skipper := config.Skipper
	if skipper == nil {
		skipper = func(c echo.Context) bool { return c.Path() != "/api/podinfo" }
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper(c) {
				return next(c)
			}

			session, err := loadSession(c, store, newID)
			if err != nil {
				return err
			}
			if session.IsNew {
				level.Debug(logger).Log("msg", "Session created", "session_id", session.ID)
				c.SetCookie(&http.Cookie{
					Name:     domain.SessionCookie,
					Value:    session.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(sessionContextKey, session)
			return next(c)
		}
	}
}

func loadSession(c echo.Context, store interfaces.SessionStore, newID func() string) (*domain.Session, error) {
	cookie, err := c.Cookie(domain.SessionCookie)
	if err != nil || cookie.Value == "" {
		return domain.NewSession(newID()), nil
	}

	session, err := store.Load(c.Request().Context(), cookie.Value)
	if err != nil {
		if service.IsEntityNotFoundError(err) {
			return domain.NewSession(newID()), nil
		}
		return nil, service.NewSessionStoreFailureError("failed to load session", err)
	}
	if session == nil {
		return domain.NewSession(newID()), nil
	}
	return session, nil
}

// SessionFromContext returns the session attached by the session middleware.
func SessionFromContext(c echo.Context) (*domain.Session, error) {
	session, ok := c.Get(sessionContextKey).(*domain.Session)
	if !ok || session == nil {
		return nil, service.NewInternalServerError("no session attached to request", nil)
	}
	return session, nil
}
