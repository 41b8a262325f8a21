package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/feathr-version/internal/service/client"
)

// newQueryCmd asks a running version service what it reports.
func newQueryCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "query [server-address]",
		Short: "Query a running version service.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use server address argument if provided, otherwise rely on config.
			var serverAddress string
			if len(args) > 0 {
				serverAddress = args[0]
			}

			_, err := client.Run(ctx, &client.Options{
				Config:        root.settings,
				ServerAddress: serverAddress,
				Out:           cmd.OutOrStdout(),
			})

			return err
		},
	}
}
