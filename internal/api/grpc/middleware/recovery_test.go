package middleware

import (
	"context"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/varundevpro/kuvaka-tech-assignment/internal/testutil"
)

func TestRecovery_UnaryPanic(t *testing.T) {
	t.Parallel()

	r := NewRecovery(testutil.MakeNoopLogger())
	interceptor := recovery.UnaryServerInterceptor(r.Options()...)

	info := &grpc.UnaryServerInfo{FullMethod: "/chat.Rooms/List"}
	resp, err := interceptor(context.Background(), struct{}{}, info, func(ctx context.Context, req any) (any, error) {
		panic("boom")
	})

	assert.Nil(t, resp)
	st, ok := status.FromError(err)
	assert.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
}

func TestRecovery_PassesThrough(t *testing.T) {
	t.Parallel()

	r := NewRecovery(testutil.MakeNoopLogger())
	interceptor := recovery.UnaryServerInterceptor(r.Options()...)

	info := &grpc.UnaryServerInfo{FullMethod: "/chat.Rooms/List"}
	resp, err := interceptor(context.Background(), struct{}{}, info, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})

	assert.NoError(t, err)
	assert.Equal(t, "ok", resp)
}
