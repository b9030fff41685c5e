// Package handlers contains the HTTP and gRPC handlers of mypodinfo.
package handlers

import (
	"fmt"
	"net/http"

	"mypodinfo/helpers"
	"mypodinfo/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// DefaultPodsLimit caps GET /api/pods when no limit is given.
const DefaultPodsLimit = 100

// HTTPServer implements ServerInterface.
type HTTPServer struct {
	podInfo   *service.PodInfoService
	members   *service.Members
	readiness *service.Readiness
	logger    log.Logger
}

var _ ServerInterface = (*HTTPServer)(nil)

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(podInfo *service.PodInfoService, members *service.Members, readiness *service.Readiness, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer")
	return &HTTPServer{
		podInfo:   helpers.NilPanic(podInfo, "handlers.http.go: podInfo is required"),
		members:   helpers.NilPanic(members, "handlers.http.go: members is required"),
		readiness: helpers.NilPanic(readiness, "handlers.http.go: readiness is required"),
		logger:    logger,
	}
}

// Healthz (GET /api/healthz) always answers OK while the process serves HTTP.
func (h *HTTPServer) Healthz(ectx echo.Context) error {
	return ectx.String(http.StatusOK, "OK")
}

// Readyz (GET /api/readyz) answers READY once startup completed, 503 before.
func (h *HTTPServer) Readyz(ectx echo.Context) error {
	if !h.readiness.IsReady() {
		return ectx.String(http.StatusServiceUnavailable, "NOT READY")
	}
	return ectx.String(http.StatusOK, "READY")
}

// GetPodInfo (GET /api/podinfo) bumps the caller's session counter. Returns 500 session_store_failure when the session cannot be saved.
func (h *HTTPServer) GetPodInfo(ectx echo.Context) error {
	session, err := SessionFromContext(ectx)
	if err != nil {
		return fmt.Errorf("getPodInfo failed to get session, err: %w", err)
	}

	info, err := h.podInfo.GetPodInfo(ectx.Request().Context(), session)
	if err != nil {
		return fmt.Errorf("getPodInfo failed, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toPodInfoResponse(info))
}

// GetPods (GET /api/pods) lists live cluster members.
func (h *HTTPServer) GetPods(ectx echo.Context, params GetPodsParams) error {
	limit, err := fromGetPodsParams(params)
	if err != nil {
		return err
	}

	members, err := h.members.List(ectx.Request().Context(), limit)
	if err != nil {
		return fmt.Errorf("getPods failed to list members, err: %w", err)
	}

	return ectx.JSON(http.StatusOK, toPodsResponse(members))
}
