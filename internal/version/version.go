package version

import (
	"fmt"
	"os"
)

//nolint:gochecknoglobals // Injected at build time via ldflags.
var (
	// Version is the semantic version of the release. It can be overridden via ldflags.
	Version = "0.10.4-rc1"
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

const (
	// MavenGroupID is the Maven group of the Feathr Spark runtime.
	MavenGroupID = "com.linkedin.feathr"
	// MavenArtifactID is the Maven artifact id of the Feathr Spark runtime.
	MavenArtifactID = "feathr_2.12"
	// ArtifactVersionEnv names the environment variable overriding the artifact version.
	ArtifactVersionEnv = "MAVEN_ARTIFACT_VERSION"
)

// Get returns the release version string unchanged.
func Get() string {
	return Version
}

// Full returns the release version with the commit and build time it was built from.
func Full() string {
	return fmt.Sprintf("version: %s, commit: %s, built at: %s", Get(), Commit, BuildTime)
}

// MavenArtifactFullname returns the Maven coordinate of the Feathr runtime,
// reading MAVEN_ARTIFACT_VERSION from the process environment.
func MavenArtifactFullname() string {
	return MavenArtifactFullnameFrom(os.LookupEnv)
}

// MavenArtifactFullnameFrom is MavenArtifactFullname against the given lookup.
func MavenArtifactFullnameFrom(lookup Lookup) string {
	return fmt.Sprintf("%s:%s:%s", MavenGroupID, MavenArtifactID, ArtifactVersion(lookup))
}

// ArtifactVersion returns the version segment of the Maven coordinate.
// A set override wins even when it is empty; otherwise Version is used.
func ArtifactVersion(lookup Lookup) string {
	if lookup == nil {
		return Version
	}

	if v, ok := lookup(ArtifactVersionEnv); ok {
		return v
	}

	return Version
}
