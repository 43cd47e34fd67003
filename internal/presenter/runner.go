package presenter

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// Runner binds a Presenter to the push subjects for one device token. The
// server publishes delivered pushes on tenang.push.<token> and direct
// show requests on tenang.agent.<token>.show.
type Runner struct {
	nc    *nats.Conn
	p     *Presenter
	token string

	subs []*nats.Subscription
}

func NewRunner(nc *nats.Conn, p *Presenter, deviceToken string) *Runner {
	return &Runner{nc: nc, p: p, token: deviceToken}
}

// Start subscribes to the device's push subjects. Malformed payloads are
// logged and dropped; the subscription stays alive.
func (r *Runner) Start() error {
	pushSub, err := r.nc.Subscribe(fmt.Sprintf("tenang.push.%s", r.token), func(msg *nats.Msg) {
		var payload PushPayload
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			slog.Warn("agent: malformed push payload", "err", err)
			return
		}
		if _, err := r.p.HandlePush(payload); err != nil {
			slog.Warn("agent: display push failed", "err", err)
		}
	})
	if err != nil {
		return fmt.Errorf("subscribe push: %w", err)
	}
	r.subs = append(r.subs, pushSub)

	showSub, err := r.nc.Subscribe(fmt.Sprintf("tenang.agent.%s.show", r.token), func(msg *nats.Msg) {
		var req ShowVideoReminder
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			slog.Warn("agent: malformed show request", "err", err)
			return
		}
		if _, err := r.p.HandleShowVideoReminder(req); err != nil {
			slog.Warn("agent: display reminder failed", "err", err)
		}
	})
	if err != nil {
		return fmt.Errorf("subscribe show: %w", err)
	}
	r.subs = append(r.subs, showSub)

	slog.Info("agent: listening", "device_token", r.token)
	return nil
}

// Stop unsubscribes from all subjects.
func (r *Runner) Stop() {
	for _, sub := range r.subs {
		if err := sub.Unsubscribe(); err != nil {
			slog.Warn("agent: unsubscribe failed", "err", err)
		}
	}
	r.subs = nil
}
