package handlers

import (
	"mypodinfo/helpers"
	"mypodinfo/service"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// NewGrpcHealthServer creates a gRPC server exposing the standard health service.
// It reports NOT_SERVING until readiness is marked, SERVING afterwards.
func NewGrpcHealthServer(readiness *service.Readiness) (*grpc.Server, *health.Server) {
	readiness = helpers.NilPanic(readiness, "handlers.grpc_health.go: readiness is required")

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	readiness.OnReady(func() {
		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	})

	return grpcServer, healthServer
}
