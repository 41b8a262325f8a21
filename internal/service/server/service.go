package server

import (
	"context"

	"github.com/oshokin/feathr-version/internal/logger"
	"github.com/oshokin/feathr-version/internal/version"
)

// service answers version queries from the release metadata and an override lookup.
// The lookup is consulted on every call so environment changes are picked up.
type service struct {
	// lookup resolves MAVEN_ARTIFACT_VERSION.
	lookup version.Lookup
}

// newService creates a service reading overrides through lookup.
func newService(lookup version.Lookup) *service {
	return &service{
		lookup: lookup,
	}
}

// Version returns the release version.
func (s *service) Version(ctx context.Context) string {
	v := version.Get()
	logger.DebugKV(ctx, "Version requested", "version", v)

	return v
}

// MavenArtifactFullname returns the Maven coordinate of the Feathr runtime.
func (s *service) MavenArtifactFullname(ctx context.Context) string {
	coordinate := version.MavenArtifactFullnameFrom(s.lookup)
	logger.DebugKV(ctx, "Maven artifact requested", "maven_artifact", coordinate)

	return coordinate
}
