package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/logger"
)

// Logging logs gRPC requests and results.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// HandleGRPC logs method name, duration and status for each unary request.
func (l *Logging) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	l.logger.Info("gRPC request started",
		"method", info.FullMethod,
		"start_time", start.Format(time.RFC3339))

	resp, err := handler(ctx, req)

	l.completed(info.FullMethod, start, err)

	return resp, err
}

// HandleStream logs method name, duration and status for each stream.
func (l *Logging) HandleStream(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()

	l.logger.Info("gRPC stream started",
		"method", info.FullMethod,
		"start_time", start.Format(time.RFC3339))

	err := handler(srv, ss)

	l.completed(info.FullMethod, start, err)

	return err
}

func (l *Logging) completed(method string, start time.Time, err error) {
	duration := time.Since(start)

	statusCode := codes.OK
	if err != nil {
		if st, ok := status.FromError(err); ok {
			statusCode = st.Code()
		} else {
			statusCode = codes.Internal
		}
	}

	l.logger.Info("gRPC request completed",
		"method", method,
		"duration_ms", duration.Milliseconds(),
		"status", statusCode.String())

	if err != nil {
		l.logger.Error("gRPC request failed",
			"method", method,
			"error", err.Error(),
			"status", statusCode.String())
	}
}
