package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/logger"
)

// Recovery turns handler panics into Internal errors.
type Recovery struct {
	logger *logger.Logger
}

func NewRecovery(logger *logger.Logger) *Recovery {
	return &Recovery{logger: logger}
}

// Options returns the recovery interceptor options.
func (r *Recovery) Options() []recovery.Option {
	return []recovery.Option{recovery.WithRecoveryHandlerContext(r.handle)}
}

func (r *Recovery) handle(_ context.Context, p any) error {
	r.logger.Error("gRPC handler panicked",
		"panic", fmt.Sprint(p),
		"stack", string(debug.Stack()))
	return status.Error(codes.Internal, "internal server error")
}
