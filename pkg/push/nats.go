package push

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// NATSSender delivers push payloads over the message bus instead of FCM.
// Used when push is disabled in config: companion agents subscribed to
// tenang.push.<token> still receive notifications locally.
type NATSSender struct {
	nc *nats.Conn
}

func NewNATSSender(nc *nats.Conn) *NATSSender {
	return &NATSSender{nc: nc}
}

func (s *NATSSender) Send(ctx context.Context, p Payload) (*Receipt, error) {
	if p.Token == "" {
		return nil, ErrMissingToken
	}
	if p.Notification.Title == "" {
		return nil, ErrMissingTitle
	}

	body, err := json.Marshal(struct {
		Notification Notification      `json:"notification"`
		Data         map[string]string `json:"data,omitempty"`
	}{
		Notification: p.Notification,
		Data:         p.Data,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal push payload: %w", err)
	}

	if err := s.nc.Publish(fmt.Sprintf("tenang.push.%s", p.Token), body); err != nil {
		return nil, fmt.Errorf("publish push: %w", err)
	}

	return &Receipt{MessageID: uuid.New().String()}, nil
}
