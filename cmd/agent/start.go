package agent

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/tenangapp/tenang_backend/config"
	"github.com/tenangapp/tenang_backend/internal/presenter"
	"github.com/tenangapp/tenang_backend/pkg/logs"
)

func NewStartCommand() *cobra.Command {
	var deviceToken string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the notification agent for one device",
		Long: `Subscribes to the push subjects for a registered device token and
renders incoming notifications. Clicks are routed to the matching
in-app view.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}

			slog.SetDefault(logs.New(cfg))

			if deviceToken == "" {
				deviceToken = cfg.Agent.DeviceToken
			}
			if deviceToken == "" {
				return fmt.Errorf("device token required (--device-token or agent.device_token)")
			}

			nc, err := nats.Connect(cfg.Nats.URL, nats.Name("tenang-agent"))
			if err != nil {
				return fmt.Errorf("connect nats: %w", err)
			}
			defer nc.Drain()

			p := presenter.New(presenter.ConsoleDisplay{}, presenter.ConsoleWindows{}, cfg.App.DefaultIcon)

			runner := presenter.NewRunner(nc, p, deviceToken)
			if err := runner.Start(); err != nil {
				return err
			}
			defer runner.Stop()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig

			slog.Info("agent: shutting down")
			return nil
		},
	}

	cmd.Flags().StringVar(&deviceToken, "device-token", "", "Device token to listen for (overrides config)")

	return cmd
}
