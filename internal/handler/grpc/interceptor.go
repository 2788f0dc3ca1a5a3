package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// traceIDKey is the metadata key carrying the trace ID, the gRPC twin of
// the HTTP X-Trace-ID header.
const traceIDKey = "x-trace-id"

// UnaryInterceptor attaches a trace ID to the request logger and logs
// every call with its status code and duration.
func (h *Handler) UnaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	traceID := uuid.NewString()
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 && values[0] != "" {
			traceID = values[0]
		}
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	log := h.logger.With().Str("trace_id", traceID).Logger()
	resp, err := next(log.WithContext(ctx), req)

	log.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("gRPC request")

	return resp, err
}
