package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	grpchealth "github.com/dtroode/espresso-emporium-server/internal/api/grpc/health"
	grpcrouter "github.com/dtroode/espresso-emporium-server/internal/api/grpc/router"
	grpcserver "github.com/dtroode/espresso-emporium-server/internal/api/grpc/server"
	"github.com/dtroode/espresso-emporium-server/internal/api/rest/router"
	httpserver "github.com/dtroode/espresso-emporium-server/internal/api/rest/server"
	"github.com/dtroode/espresso-emporium-server/internal/config"
	"github.com/dtroode/espresso-emporium-server/internal/logger"
	"github.com/dtroode/espresso-emporium-server/internal/model"
	"github.com/dtroode/espresso-emporium-server/internal/repository/mongo"
	"github.com/dtroode/espresso-emporium-server/internal/server"
	"github.com/dtroode/espresso-emporium-server/internal/service"
	"github.com/dtroode/espresso-emporium-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithFormat(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	logAppVersion()

	conn, err := mongo.NewConnection(ctx, mongo.ConnectionParams{
		URI:              cfg.Mongo.ConnectionURI(),
		Database:         cfg.Mongo.Database,
		ConnectTimeout:   cfg.Mongo.ConnectTimeout,
		OperationTimeout: cfg.Mongo.OperationTimeout,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	logger.Info("connected to MongoDB", "database", cfg.Mongo.Database)

	coffeeRepo := mongo.NewCoffeeRepository(conn, cfg.Mongo.CoffeeCollection)
	userRepo := mongo.NewUserRepository(conn, cfg.Mongo.UserCollection)

	coffeeService := service.NewCoffee(coffeeRepo, logger)
	userService := service.NewUser(userRepo, logger)

	opts := []router.Option{router.WithAllowedOrigins(cfg.CORS.AllowedOrigins)}
	if cfg.Auth.JWTSecret != "" {
		opts = append(opts, router.WithWriteAuth(token.NewJWT(cfg.Auth.JWTSecret)))
		logger.Info("write authentication enabled")
	}

	gin.SetMode(gin.ReleaseMode)
	engine := router.New(coffeeService, userService, conn, logger.With("component", "http"), opts...).Register()

	servers := []listenedServer{{
		Server: httpserver.NewHTTPServer(engine, fmt.Sprintf(":%s", cfg.HTTP.Port)),
		sl:     server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.KeyFileName),
	}}

	var wg sync.WaitGroup

	if cfg.Health.GRPCPort != "" {
		healthLogger := logger.With("component", "grpc-health")
		probe := grpchealth.NewProbe(conn, cfg.Health.ProbeInterval, healthLogger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			probe.Run(ctx)
		}()

		s := grpcrouter.New(probe.Server(), healthLogger).Register()
		// Probe traffic stays on the internal network, so no TLS.
		servers = append(servers, listenedServer{
			Server: grpcserver.NewGRPCServer(s, fmt.Sprintf(":%s", cfg.Health.GRPCPort)),
			sl:     server.NewPlainListener(),
		})
	}

	for _, s := range servers {
		wg.Add(1)
		go func(s listenedServer) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(s.sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()

	if err := conn.Close(shutdownCtx); err != nil {
		logger.Error("failed to disconnect from MongoDB", "error", err)
	}
	logger.Info("shutdown complete")
}

type listenedServer struct {
	model.Server
	sl model.SecurityLayer
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
