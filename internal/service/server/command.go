package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	api "github.com/oshokin/feathr-version/internal/api/grpc/versionapi"
	"github.com/oshokin/feathr-version/internal/config"
	"github.com/oshokin/feathr-version/internal/logger"
	"github.com/oshokin/feathr-version/internal/version"
)

// Options controls the version server process.
type Options struct {
	// Config provides the server address. Defaults are used when nil.
	Config *config.Config
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// Lookup resolves the artifact version override for every request.
	Lookup version.Lookup
	// Ready, when set, receives the bound listen address once the server accepts connections.
	Ready chan<- string
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// Run starts the gRPC server and blocks until context is canceled or server stops.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "feathr-version-server")

	settings := opts.Config
	if settings == nil {
		settings = config.Default()
	}

	// Determine listen address: CLI argument overrides config port extraction.
	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	healthServer := health.NewServer()
	healthServer.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)

	grpcServer := grpc.NewServer()
	api.Register(grpcServer, api.NewServer(newService(opts.Lookup)))
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	boundAddress := lis.Addr().String()
	logger.InfoKV(
		ctx,
		"Version server listening",
		"listen_address", boundAddress,
		"version", version.Get(),
		"maven_artifact", version.MavenArtifactFullnameFrom(opts.Lookup),
	)

	if opts.Ready != nil {
		opts.Ready <- boundAddress
	}

	// Done channel is closed after GracefulStop finishes to ensure we block
	// until the server fully stops before returning.
	done := make(chan struct{})

	go func() {
		<-ctx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		close(done)
	}()

	if err := grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	<-done
	logger.Info(ctx, "GRPC server stopped")

	return nil
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
// Returns appropriate listen address (e.g., ":8080" for port-only binding).
func resolveListenAddress(configAddr, override string) (string, error) {
	// Use override address if provided (e.g., ":9090", "0.0.0.0:8080").
	if override != "" {
		return override, nil
	}

	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	// Return port-only listen address to bind on all interfaces.
	return ":" + port, nil
}
