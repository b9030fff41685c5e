package handlers

import (
	"strconv"
	"time"

	"mypodinfo/service"

	"github.com/labstack/echo/v4"
)

// PodInfoResponse defines model for PodInfoResponse.
type PodInfoResponse struct {
	Id           string `json:"id"`
	RequestCount int    `json:"requestCount"`
}

// PodInfo defines model for PodInfo.
type PodInfo struct {
	Appname  *string   `json:"appname,omitempty"`
	Id       string    `json:"id"`
	LastSeen time.Time `json:"lastSeen"`
}

// PodsResponse defines model for PodsResponse.
type PodsResponse struct {
	Pods []PodInfo `json:"pods"`
}

// GetPodsParams defines parameters for GetPods.
type GetPodsParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Liveness probe.
	// (GET /api/healthz)
	Healthz(ctx echo.Context) error
	// Returns the serving instance id and the caller's session request count.
	// (GET /api/podinfo)
	GetPodInfo(ctx echo.Context) error
	// Lists the live instances of the cluster, sorted by id.
	// (GET /api/pods)
	GetPods(ctx echo.Context, params GetPodsParams) error
	// Readiness probe.
	// (GET /api/readyz)
	Readyz(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// Healthz converts echo context to params.
func (w *ServerInterfaceWrapper) Healthz(ctx echo.Context) error {
	return w.Handler.Healthz(ctx)
}

// GetPodInfo converts echo context to params.
func (w *ServerInterfaceWrapper) GetPodInfo(ctx echo.Context) error {
	return w.Handler.GetPodInfo(ctx)
}

// GetPods converts echo context to params.
func (w *ServerInterfaceWrapper) GetPods(ctx echo.Context) error {
	var params GetPodsParams

	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return service.NewBadParameterError("invalid format for parameter limit", err)
		}
		params.Limit = &limit
	}

	return w.Handler.GetPods(ctx, params)
}

// Readyz converts echo context to params.
func (w *ServerInterfaceWrapper) Readyz(ctx echo.Context) error {
	return w.Handler.Readyz(ctx)
}

// EchoRouter is the subset of echo routing used to register handlers; *echo.Echo and *echo.Group satisfy it.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET("/api/healthz", wrapper.Healthz)
	router.GET("/api/podinfo", wrapper.GetPodInfo)
	router.GET("/api/pods", wrapper.GetPods)
	router.GET("/api/readyz", wrapper.Readyz)
}

