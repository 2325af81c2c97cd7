package testutil

import (
	"io"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/logger"
)

// MakeNoopLogger returns a logger that discards all output.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, "debug", false)
}
