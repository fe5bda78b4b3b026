package middleware

import (
	"context"
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"google.golang.org/grpc"

	"github.com/dtroode/espresso-emporium-server/internal/logger"
)

// InterceptorLogger adapts Logger to the go-grpc-middleware logging API.
func InterceptorLogger(l *logger.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// UnaryLogging logs the outcome of every unary call.
func UnaryLogging(l *logger.Logger) grpc.UnaryServerInterceptor {
	return logging.UnaryServerInterceptor(InterceptorLogger(l),
		logging.WithLogOnEvents(logging.FinishCall))
}

// StreamLogging logs the outcome of every streaming call, such as health Watch.
func StreamLogging(l *logger.Logger) grpc.StreamServerInterceptor {
	return logging.StreamServerInterceptor(InterceptorLogger(l),
		logging.WithLogOnEvents(logging.StartCall, logging.FinishCall))
}
