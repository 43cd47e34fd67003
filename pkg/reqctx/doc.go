// Package reqctx carries request-scoped data through context: the request
// metadata and trace ids set by HTTP middleware, and the authentication
// claims set after token verification.
//
// All context keys are private unexported types to prevent collisions.
// Access is provided through type-safe getter and setter functions.
//
// Setting values (in middleware):
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{
//	    RequestID:   "abc-123",
//	    ClientIP:    "192.168.1.1",
//	    RequestedAt: time.Now(),
//	})
//	ctx = reqctx.WithTrace(ctx, reqctx.NewTraceInfo())
//	ctx = reqctx.WithClaims(ctx, claims)
//
// Getting values (in handlers and services):
//
//	rid := reqctx.RequestIDFromContext(ctx)
//	accountID, ok := reqctx.UserIDFromContext(ctx)
//	traceID := reqctx.TraceIDFromContext(ctx)
//
// RequestMeta and TraceInfo are always set by the request-id middleware;
// claims only for authenticated requests.
package reqctx
