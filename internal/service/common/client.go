//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	api "github.com/oshokin/feathr-version/internal/api/grpc/versionapi"
	"github.com/oshokin/feathr-version/internal/config"
)

// Client wraps a gRPC connection to the version service with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the version server.
	conn *grpc.ClientConn
	// health queries the standard gRPC health service.
	health healthpb.HealthClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errNotConnected is returned when a call is made on a client without a connection.
	errNotConnected = errors.New("client is not connected")
)

// Dial creates a gRPC client for the version server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial version server: %w", err)
	}

	client := &Client{
		conn:        conn,
		health:      healthpb.NewHealthClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// GetVersion retrieves the release version reported by the server.
func (c *Client) GetVersion(ctx context.Context) (string, error) {
	value, err := c.invoke(ctx, api.GetVersionMethod)
	if err != nil {
		return "", fmt.Errorf("get version: %w", err)
	}

	return value, nil
}

// GetMavenArtifactFullname retrieves the Maven coordinate reported by the server.
func (c *Client) GetMavenArtifactFullname(ctx context.Context) (string, error) {
	value, err := c.invoke(ctx, api.GetMavenArtifactFullnameMethod)
	if err != nil {
		return "", fmt.Errorf("get maven artifact fullname: %w", err)
	}

	return value, nil
}

// Health reports the serving status of the version service.
func (c *Client) Health(ctx context.Context) (healthpb.HealthCheckResponse_ServingStatus, error) {
	if c == nil || c.health == nil {
		return healthpb.HealthCheckResponse_UNKNOWN, errNotConnected
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.health.Check(callCtx, &healthpb.HealthCheckRequest{Service: api.ServiceName})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, fmt.Errorf("health check: %w", err)
	}

	return resp.GetStatus(), nil
}

// invoke calls a unary method that takes Empty and returns StringValue.
func (c *Client) invoke(ctx context.Context, method string) (string, error) {
	if c == nil || c.conn == nil {
		return "", errNotConnected
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	out := new(wrapperspb.StringValue)
	if err := c.conn.Invoke(callCtx, method, new(emptypb.Empty), out); err != nil {
		return "", err
	}

	return out.GetValue(), nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
