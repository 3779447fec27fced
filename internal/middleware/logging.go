package middleware

import (
	"context"
	"time"

	"github.com/fekuna/shopwave-storefront/internal/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoggingInterceptor logs every unary call with its duration and status code.
// Server-side failures are logged at error level, client mistakes at info.
func LoggingInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logCall(ctx, log, info.FullMethod, start, err)
		return resp, err
	}
}

// StreamLoggingInterceptor logs each stream once it finishes.
func StreamLoggingInterceptor(log logger.ZapLogger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		logCall(ss.Context(), log, info.FullMethod, start, err)
		return err
	}
}

func logCall(ctx context.Context, log logger.ZapLogger, method string, start time.Time, err error) {
	code := status.Code(err)

	fields := []zap.Field{
		zap.String("method", method),
		zap.String("code", code.String()),
		zap.Duration("duration", time.Since(start)),
	}
	if sessionID := GetSessionID(ctx); sessionID != "" {
		fields = append(fields, zap.String("session_id", sessionID))
	}

	switch code {
	case codes.OK:
		log.Debug("grpc call", fields...)
	case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss:
		log.Error("grpc call failed", append(fields, zap.Error(err))...)
	default:
		log.Info("grpc call rejected", append(fields, zap.Error(err))...)
	}
}
