package router

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/espresso-emporium-server/internal/api/grpc/middleware"
	"github.com/dtroode/espresso-emporium-server/internal/logger"
)

// Router builds the gRPC server exposing health checking.
type Router struct {
	health *health.Server
	logger *logger.Logger
}

// New creates new gRPC Router instance.
func New(health *health.Server, logger *logger.Logger) *Router {
	return &Router{
		health: health,
		logger: logger,
	}
}

// Register returns a gRPC server with logging interceptors and the health
// service registered.
func (r *Router) Register() *grpc.Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(middleware.UnaryLogging(r.logger)),
		grpc.ChainStreamInterceptor(middleware.StreamLogging(r.logger)),
	)

	healthpb.RegisterHealthServer(s, r.health)
	reflection.Register(s)

	return s
}
