package versionapi

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Provider abstracts the version queries the transport layer depends on.
type Provider interface {
	Version(ctx context.Context) string
	MavenArtifactFullname(ctx context.Context) string
}

// Server implements VersionServiceServer.
type Server struct {
	// provider answers the version queries.
	provider Provider
}

// NewServer wires the provided implementation into a gRPC handler.
func NewServer(provider Provider) *Server {
	return &Server{
		provider: provider,
	}
}

// GetVersion returns the release version.
func (s *Server) GetVersion(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	if s.provider == nil {
		return nil, status.Error(codes.Unavailable, "version provider is not configured")
	}

	return wrapperspb.String(s.provider.Version(ctx)), nil
}

// GetMavenArtifactFullname returns the Maven coordinate of the Feathr runtime.
func (s *Server) GetMavenArtifactFullname(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	if s.provider == nil {
		return nil, status.Error(codes.Unavailable, "version provider is not configured")
	}

	return wrapperspb.String(s.provider.MavenArtifactFullname(ctx)), nil
}
