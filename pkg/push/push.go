// Package push provides a minimal HTTP client for FCM push delivery.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tenangapp/tenang_backend/config"
)

const defaultEndpoint = "https://fcm.googleapis.com/fcm/send"

var (
	ErrDisabled           = errors.New("push: sending is disabled")
	ErrMissingToken       = errors.New("push: device token is required")
	ErrMissingTitle       = errors.New("push: notification title is required")
	ErrNotRegistered      = errors.New("push: device token is not registered")
	ErrUnexpectedResponse = errors.New("push: unexpected response from gateway")
)

// Notification is the visible part of a push payload.
type Notification struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	Icon        string `json:"icon,omitempty"`
	ClickAction string `json:"click_action,omitempty"`
}

// Payload is one outbound push message, routed by a per-device token.
type Payload struct {
	Notification Notification      `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
	Token        string            `json:"-"`
}

// Receipt is the gateway's acknowledgement of an accepted send.
type Receipt struct {
	MessageID string
}

// Sender sends a single push payload. Implemented by *Client; services take
// the interface so tests can capture sends.
type Sender interface {
	Send(ctx context.Context, p Payload) (*Receipt, error)
}

// Client is a lightweight FCM HTTP client using server-key auth.
type Client struct {
	serverKey  string
	endpoint   string
	enabled    bool
	httpClient *http.Client
}

// NewFromConfig creates a push client from the application configuration.
// If push is disabled, returns a client that fails sends with ErrDisabled.
func NewFromConfig(cfg config.PushConfig) (*Client, error) {
	if !cfg.Enabled {
		return &Client{enabled: false}, nil
	}
	if cfg.ServerKey == "" {
		return nil, fmt.Errorf("push: FCM server key required when push enabled")
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		serverKey:  cfg.ServerKey,
		endpoint:   endpoint,
		enabled:    true,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// IsEnabled returns whether push sending is enabled.
func (c *Client) IsEnabled() bool {
	return c.enabled
}

// Send delivers one payload to one device token. It is a single attempt:
// no retry, no queueing. Callers own any failure policy.
func (c *Client) Send(ctx context.Context, p Payload) (*Receipt, error) {
	if !c.enabled {
		return nil, ErrDisabled
	}
	if p.Token == "" {
		return nil, ErrMissingToken
	}
	if p.Notification.Title == "" {
		return nil, ErrMissingTitle
	}

	reqBody := map[string]any{
		"to":           p.Token,
		"notification": p.Notification,
	}
	if len(p.Data) > 0 {
		reqBody["data"] = p.Data
	}

	var resp struct {
		MulticastID int64 `json:"multicast_id"`
		Success     int   `json:"success"`
		Failure     int   `json:"failure"`
		Results     []struct {
			MessageID string `json:"message_id"`
			Error     string `json:"error"`
		} `json:"results"`
	}

	if err := c.post(ctx, reqBody, &resp); err != nil {
		return nil, fmt.Errorf("push send: %w", err)
	}

	if resp.Success < 1 || len(resp.Results) == 0 {
		if len(resp.Results) > 0 {
			switch resp.Results[0].Error {
			case "NotRegistered", "InvalidRegistration":
				return nil, ErrNotRegistered
			default:
				return nil, fmt.Errorf("%w (error=%s)", ErrUnexpectedResponse, resp.Results[0].Error)
			}
		}
		return nil, ErrUnexpectedResponse
	}

	return &Receipt{MessageID: resp.Results[0].MessageID}, nil
}

func (c *Client) post(ctx context.Context, body any, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+c.serverKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("%w (status=%d)", ErrUnexpectedResponse, res.StatusCode)
	}

	return json.NewDecoder(res.Body).Decode(out)
}
