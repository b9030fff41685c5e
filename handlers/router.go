package handlers

import (
	"strings"

	"mypodinfo/helpers"
	"mypodinfo/interfaces"
	"mypodinfo/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	apiPrefix          = "/api"
	staticCacheControl = "public, max-age=86400"
	// EventBusPath is where the websocket bridge is mounted.
	EventBusPath = "/api/eventbus"
)

// RouterConfig configures NewRouter.
type RouterConfig struct {
	// WebRoot is the directory static files are served from.
	WebRoot string
	// Origin returns the allowed CORS origin; read on every request so config changes apply live.
	Origin func() string
	// NewSessionID generates ids for new sessions.
	NewSessionID func() string
}

// NewRouter wires the echo instance: error handler, CORS, static files, OpenAPI validation,
// sessions, the API routes and the event-bus bridge.
func NewRouter(
	server ServerInterface,
	bridge *EventBusBridge,
	sessions interfaces.SessionStore,
	config RouterConfig,
	logger log.Logger,
) (*echo.Echo, error) {
	server = helpers.NilPanic(server, "handlers.router.go: server is required")
	bridge = helpers.NilPanic(bridge, "handlers.router.go: bridge is required")
	origin := helpers.NilPanic(config.Origin, "handlers.router.go: Origin is required")
	webRoot := helpers.StrPanic(config.WebRoot, "handlers.router.go: WebRoot is required")

	doc, err := LoadOpenAPI()
	if err != nil {
		return nil, err
	}
	validator, err := NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	service.RegisterErrorHandler(e, logger)

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: func(requestOrigin string) (bool, error) {
			return requestOrigin == origin(), nil
		},
		AllowCredentials: true,
	}))
	e.Use(staticCacheHeaders)
	e.Use(middleware.StaticWithConfig(middleware.StaticConfig{
		Skipper: isAPIRequest,
		Root:    webRoot,
		Index:   "index.html",
		Browse:  false,
	}))
	e.Use(validator)
	e.Use(NewSessionMiddleware(sessions, SessionConfig{NewID: config.NewSessionID}, logger))

	RegisterHandlers(e, server)
	e.GET(EventBusPath, bridge.Handle)

	return e, nil
}

func isAPIRequest(c echo.Context) bool {
	p := c.Request().URL.Path
	return p == apiPrefix || strings.HasPrefix(p, apiPrefix+"/")
}

// staticCacheHeaders lets browsers cache everything outside /api for a day.
func staticCacheHeaders(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !isAPIRequest(c) {
			c.Response().Header().Set("Cache-Control", staticCacheControl)
		}
		return next(c)
	}
}
