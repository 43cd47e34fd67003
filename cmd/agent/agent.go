package agent

import "github.com/spf13/cobra"

func NewAgentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agent",
		Short: "Companion notification agent commands",
	}

	cmd.AddCommand(NewStartCommand())

	return cmd
}
