package testutil

import (
	"io"

	"github.com/dtroode/espresso-emporium-server/internal/logger"
)

// MakeNoopLogger returns a Logger that discards every record.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithFormat(0, "text", io.Discard)
}
