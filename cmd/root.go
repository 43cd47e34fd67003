package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	agentcmd "github.com/tenangapp/tenang_backend/cmd/agent"
	httpcmd "github.com/tenangapp/tenang_backend/cmd/http"
	systemcmd "github.com/tenangapp/tenang_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "tenang",
	Short: "Tenang online mental-health consultation platform.",
	Long: `Tenang connects patients with licensed psychologists for chat and video
consultations, and keeps both sides informed through push notifications,
in-app notifications, and reminder fallback channels.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
	rootCmd.AddCommand(agentcmd.NewAgentCommand())
}
