package push

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tenangapp/tenang_backend/config"
)

func TestNewFromConfig_Disabled(t *testing.T) {
	client, err := NewFromConfig(config.PushConfig{Enabled: false})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}
	if client.IsEnabled() {
		t.Error("Expected client to be disabled")
	}

	_, err = client.Send(context.Background(), Payload{Token: "tok", Notification: Notification{Title: "t"}})
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Expected ErrDisabled, got: %v", err)
	}
}

func TestNewFromConfig_EnabledWithoutServerKey(t *testing.T) {
	_, err := NewFromConfig(config.PushConfig{Enabled: true})
	if err == nil {
		t.Error("Expected error when server key is missing")
	}
}

func TestSend_Validation(t *testing.T) {
	client, err := NewFromConfig(config.PushConfig{Enabled: true, ServerKey: "test-key"})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	tests := []struct {
		name    string
		payload Payload
		wantErr error
	}{
		{
			name:    "missing token",
			payload: Payload{Notification: Notification{Title: "Halo"}},
			wantErr: ErrMissingToken,
		},
		{
			name:    "missing title",
			payload: Payload{Token: "tok-1"},
			wantErr: ErrMissingTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Send(context.Background(), tt.payload)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSend_Success(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": 1,
			"failure": 0,
			"results": []map[string]any{{"message_id": "0:12345"}},
		})
	}))
	defer srv.Close()

	client, err := NewFromConfig(config.PushConfig{
		Enabled:   true,
		ServerKey: "test-key",
		Endpoint:  srv.URL,
	})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	receipt, err := client.Send(context.Background(), Payload{
		Token: "tok-123",
		Notification: Notification{
			Title:       "Pesan baru dari Sari",
			Body:        "Halo",
			ClickAction: "https://app.tenang.id/chat/A1",
		},
		Data: map[string]string{"appointmentId": "A1", "type": "chat-message"},
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	if receipt.MessageID != "0:12345" {
		t.Errorf("Expected message id 0:12345, got %q", receipt.MessageID)
	}
	if gotAuth != "key=test-key" {
		t.Errorf("Expected server-key auth header, got %q", gotAuth)
	}
	if gotBody["to"] != "tok-123" {
		t.Errorf("Expected to=tok-123, got %v", gotBody["to"])
	}
	if _, ok := gotBody["data"]; !ok {
		t.Error("Expected data bag in request body")
	}
}

func TestSend_NotRegistered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": 0,
			"failure": 1,
			"results": []map[string]any{{"error": "NotRegistered"}},
		})
	}))
	defer srv.Close()

	client, err := NewFromConfig(config.PushConfig{Enabled: true, ServerKey: "k", Endpoint: srv.URL})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	_, err = client.Send(context.Background(), Payload{Token: "stale", Notification: Notification{Title: "t"}})
	if !errors.Is(err, ErrNotRegistered) {
		t.Errorf("Expected ErrNotRegistered, got %v", err)
	}
}

func TestSend_GatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client, err := NewFromConfig(config.PushConfig{Enabled: true, ServerKey: "bad", Endpoint: srv.URL})
	if err != nil {
		t.Fatalf("NewFromConfig failed: %v", err)
	}

	_, err = client.Send(context.Background(), Payload{Token: "tok", Notification: Notification{Title: "t"}})
	if !errors.Is(err, ErrUnexpectedResponse) {
		t.Errorf("Expected ErrUnexpectedResponse, got %v", err)
	}
}
