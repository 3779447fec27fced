package middleware

import (
	"context"
	"testing"

	"github.com/fekuna/shopwave-storefront/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestGetSessionID(t *testing.T) {
	assert.Empty(t, GetSessionID(context.Background()))

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(SessionMetadataKey, "from-md"))
	assert.Equal(t, "from-md", GetSessionID(ctx))

	ctx = WithSessionID(ctx, "from-ctx")
	assert.Equal(t, "from-ctx", GetSessionID(ctx))
}

func TestContextInterceptor(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(SessionMetadataKey, "abc"))
	info := &grpc.UnaryServerInfo{FullMethod: "/storefront.v1.StorefrontService/GetView"}

	var seen string
	_, err := ContextInterceptor()(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
		seen, _ = ctx.Value(sessionIDKey{}).(string)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", seen)
}

func TestLoggingInterceptorPassesThrough(t *testing.T) {
	info := &grpc.UnaryServerInfo{FullMethod: "/storefront.v1.StorefrontService/GetView"}
	interceptor := LoggingInterceptor(logger.NewNop())

	resp, err := interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return "resp", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "resp", resp)

	_, err = interceptor(context.Background(), "req", info, func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.NotFound, "session not found")
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

type fakeServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *fakeServerStream) Context() context.Context { return s.ctx }

func TestStreamLoggingInterceptorPassesThrough(t *testing.T) {
	info := &grpc.StreamServerInfo{FullMethod: "/storefront.v1.StorefrontService/WatchView", IsServerStream: true}
	interceptor := StreamLoggingInterceptor(logger.NewNop())
	ss := &fakeServerStream{ctx: context.Background()}

	called := false
	err := interceptor(nil, ss, info, func(srv any, stream grpc.ServerStream) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)

	err = interceptor(nil, ss, info, func(srv any, stream grpc.ServerStream) error {
		return status.Error(codes.NotFound, "session not found")
	})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
