package health

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/espresso-emporium-server/internal/logger"
)

// DefaultInterval is used when NewProbe gets a non-positive interval.
const DefaultInterval = 15 * time.Second

// DatabaseService is the health service name reporting MongoDB reachability.
// The empty service name reports overall server health.
const DatabaseService = "mongodb"

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Probe keeps gRPC health statuses in sync with the database.
type Probe struct {
	pinger   Pinger
	server   *health.Server
	interval time.Duration
	logger   *logger.Logger
}

// NewProbe creates new Probe with a fresh health server.
func NewProbe(pinger Pinger, interval time.Duration, logger *logger.Logger) *Probe {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Probe{
		pinger:   pinger,
		server:   health.NewServer(),
		interval: interval,
		logger:   logger,
	}
}

// Server returns the health server to register on a gRPC server.
func (p *Probe) Server() *health.Server {
	return p.server
}

// Check pings the database once and updates both statuses.
func (p *Probe) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := p.pinger.Ping(ctx); err != nil {
		p.logger.Warn("database ping failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	p.server.SetServingStatus("", status)
	p.server.SetServingStatus(DatabaseService, status)

	return status
}

// Run checks immediately and then every interval until ctx is done,
// after which all statuses are set to NOT_SERVING.
func (p *Probe) Run(ctx context.Context) {
	p.Check(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.server.Shutdown()
			return
		case <-ticker.C:
			p.Check(ctx)
		}
	}
}
