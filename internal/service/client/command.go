package client

import (
	"context"
	"fmt"
	"io"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/oshokin/feathr-version/internal/artifact"
	"github.com/oshokin/feathr-version/internal/config"
	"github.com/oshokin/feathr-version/internal/logger"
	"github.com/oshokin/feathr-version/internal/service/common"
)

// Options configures a query against the version server.
type Options struct {
	// Config provides the server address and call timeout. Defaults are used when nil.
	Config *config.Config
	// ServerAddress overrides server address from config when specified.
	ServerAddress string
	// Out receives the query result.
	Out io.Writer
}

// Result is what the server reported.
type Result struct {
	// Status is the health status of the version service.
	Status healthpb.HealthCheckResponse_ServingStatus
	// Version is the release version of the server.
	Version string
	// MavenArtifact is the Maven coordinate resolved by the server.
	MavenArtifact string
	// Artifact is MavenArtifact split into its parts.
	Artifact artifact.Coordinate
}

// Run connects to the server, asks for its version and artifact coordinate and prints them.
func Run(ctx context.Context, opts *Options) (*Result, error) {
	ctx = logger.WithName(ctx, "feathr-version-query")

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = client.Close()
	}()

	logger.DebugKV(ctx, "Querying version server", "server_address", serverAddress)

	status, err := client.Health(ctx)
	if err != nil {
		return nil, err
	}

	if status != healthpb.HealthCheckResponse_SERVING {
		logger.WarnKV(ctx, "Version service is not serving", "server_address", serverAddress, "status", status)
	}

	result := &Result{Status: status}

	if result.Version, err = client.GetVersion(ctx); err != nil {
		return nil, err
	}

	if result.MavenArtifact, err = client.GetMavenArtifactFullname(ctx); err != nil {
		return nil, err
	}

	if result.Artifact, err = artifact.Parse(result.MavenArtifact); err != nil {
		return nil, fmt.Errorf("server %s returned a malformed artifact: %w", serverAddress, err)
	}

	if opts.Out != nil {
		if _, err := fmt.Fprintf(opts.Out, "version: %s\nmaven_artifact: %s\n", result.Version, result.MavenArtifact); err != nil {
			return nil, fmt.Errorf("write result: %w", err)
		}
	}

	return result, nil
}
