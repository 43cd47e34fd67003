package reqctx

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

type stubClaims struct {
	userID    uuid.UUID
	sessionID *uuid.UUID
}

func (s *stubClaims) GetUserID() uuid.UUID     { return s.userID }
func (s *stubClaims) GetSessionID() *uuid.UUID { return s.sessionID }
func (s *stubClaims) GetTokenType() string     { return "access" }
func (s *stubClaims) IsExpired() bool          { return false }

func TestRequestMetaRoundTrip(t *testing.T) {
	meta := &RequestMeta{
		RequestID:   "req-1",
		ClientIP:    "10.0.0.1",
		UserAgent:   "test-agent",
		RequestedAt: time.Now(),
	}

	ctx := WithRequestMeta(context.Background(), meta)

	got, ok := RequestMetaFromContext(ctx)
	if !ok || got.RequestID != "req-1" || got.ClientIP != "10.0.0.1" {
		t.Fatalf("RequestMetaFromContext = %+v, %v", got, ok)
	}
	if rid := RequestIDFromContext(ctx); rid != "req-1" {
		t.Errorf("RequestIDFromContext = %q, want %q", rid, "req-1")
	}
}

func TestRequestMetaMissing(t *testing.T) {
	if _, ok := RequestMetaFromContext(context.Background()); ok {
		t.Error("expected no meta in empty context")
	}
	if rid := RequestIDFromContext(context.Background()); rid != "" {
		t.Errorf("RequestIDFromContext = %q, want empty", rid)
	}
}

func TestClaimsRoundTrip(t *testing.T) {
	uid := uuid.New()
	ctx := WithClaims(context.Background(), &stubClaims{userID: uid})

	claims := ClaimsFromContext(ctx)
	if claims == nil || claims.GetUserID() != uid {
		t.Fatalf("ClaimsFromContext = %v", claims)
	}

	got, ok := UserIDFromContext(ctx)
	if !ok || got != uid {
		t.Errorf("UserIDFromContext = %v, %v; want %v", got, ok, uid)
	}
}

func TestUserIDMissingClaims(t *testing.T) {
	got, ok := UserIDFromContext(context.Background())
	if ok || got != uuid.Nil {
		t.Errorf("UserIDFromContext = %v, %v; want nil id and false", got, ok)
	}
}

func TestTraceRoundTrip(t *testing.T) {
	info := &TraceInfo{TraceID: "0af7651916cd43dd8448eb211c80319c", SpanID: "b7ad6b7169203331", Sampled: true}
	ctx := WithTrace(context.Background(), info)

	got, ok := TraceFromContext(ctx)
	if !ok || got.TraceID != info.TraceID {
		t.Fatalf("TraceFromContext = %+v, %v", got, ok)
	}
	if id := TraceIDFromContext(ctx); id != info.TraceID {
		t.Errorf("TraceIDFromContext = %q, want %q", id, info.TraceID)
	}
	if id := TraceIDFromContext(context.Background()); id != "" {
		t.Errorf("TraceIDFromContext on empty context = %q, want empty", id)
	}
}

func TestNewTraceInfoShape(t *testing.T) {
	a := NewTraceInfo()
	b := NewTraceInfo()

	if len(a.TraceID) != 32 || len(a.SpanID) != 16 {
		t.Errorf("unexpected id lengths: trace %d, span %d", len(a.TraceID), len(a.SpanID))
	}
	if !a.Sampled {
		t.Error("fresh trace should be sampled")
	}
	if a.TraceID == b.TraceID {
		t.Error("trace ids should not repeat")
	}
}
