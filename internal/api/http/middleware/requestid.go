package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/tenangapp/tenang_backend/pkg/reqctx"
)

const (
	HeaderRequestID = "X-Request-Id"
	LocalRequestID  = "request_id"
)

// RequestID generates or preserves the request id and attaches request
// metadata and trace ids to the request context for downstream handlers.
func RequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		// prefer incoming, else generate
		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals(LocalRequestID, rid)
		c.Set(HeaderRequestID, rid) // send back to client

		meta := &reqctx.RequestMeta{
			RequestID:   rid,
			ClientIP:    c.IP(),
			UserAgent:   c.Get("User-Agent"),
			RequestedAt: time.Now(),
		}

		ctx := reqctx.WithRequestMeta(c.Context(), meta)
		ctx = reqctx.WithTrace(ctx, traceInfo(ctx))
		c.SetContext(ctx)

		return c.Next()
	}
}

// traceInfo adopts the OpenTelemetry span when the tracing middleware ran
// earlier in the chain, otherwise mints standalone ids for log correlation.
func traceInfo(ctx context.Context) *reqctx.TraceInfo {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return &reqctx.TraceInfo{
			TraceID: sc.TraceID().String(),
			SpanID:  sc.SpanID().String(),
			Sampled: sc.IsSampled(),
		}
	}
	return reqctx.NewTraceInfo()
}
