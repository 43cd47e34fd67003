package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/tenangapp/tenang_backend/internal/service/dispatch"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc          fx.Lifecycle
	NC          *nats.Conn
	DispatchSvc dispatch.Service
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startDispatchWorker(p.NC, p.DispatchSvc)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// dispatch_worker
// ---------------------------------------------------------------------------

// startDispatchWorker subscribes to message-created events. The subject
// carries the appointment id, the payload the new message id. Each event is
// dispatched exactly once; replayed events dispatch again.
func startDispatchWorker(nc *nats.Conn, dispatchSvc dispatch.Service) {
	_, err := nc.Subscribe("tenang.message.new.*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		if len(parts) < 4 {
			return
		}
		apptID, err := uuid.Parse(parts[3])
		if err != nil {
			return
		}

		msgID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}

		dispatchSvc.HandleMessageCreated(context.Background(), apptID, msgID)
	})
	if err != nil {
		slog.Error("dispatch_worker: subscribe message.new failed", "err", err)
	}

	slog.Info("dispatch_worker: started")
}
