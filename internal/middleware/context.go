package middleware

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// SessionMetadataKey carries the storefront session id on incoming calls.
const SessionMetadataKey = "x-session-id"

type sessionIDKey struct{}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, sessionID)
}

// GetSessionID returns the session id placed on ctx by ContextInterceptor,
// falling back to the raw incoming metadata.
func GetSessionID(ctx context.Context) string {
	if val, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return val
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(SessionMetadataKey); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}

// ContextInterceptor copies the session id from metadata into the request context.
func ContextInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if val := md.Get(SessionMetadataKey); len(val) > 0 && val[0] != "" {
				ctx = WithSessionID(ctx, val[0])
			}
		}
		return handler(ctx, req)
	}
}
