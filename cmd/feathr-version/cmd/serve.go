package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/feathr-version/internal/service/common"
	"github.com/oshokin/feathr-version/internal/service/server"
	"github.com/oshokin/feathr-version/internal/version"
)

// newServeCmd runs the gRPC version service.
func newServeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve [listen-address]",
		Short: "Run the gRPC version service.",
		Long: `Starts a gRPC server answering GetVersion and GetMavenArtifactFullname.

Only the port from server_addr in the configuration file is used for listening.
Listen address can be provided as argument to override config (e.g., :9090).
The artifact version override is resolved on every request.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			return server.Run(ctx, &server.Options{
				Config:        root.settings,
				ListenAddress: listenAddress,
				Lookup:        version.Chain(common.ArtifactSources(nil, version.OSLookup, root.settings)...),
			})
		},
	}
}
