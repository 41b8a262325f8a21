package artifact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/oshokin/feathr-version/internal/version"
)

// Coordinate identifies a versioned Maven artifact.
type Coordinate struct {
	// GroupID is the Maven group, e.g. "com.linkedin.feathr".
	GroupID string `json:"group_id" yaml:"group_id"`
	// ArtifactID is the Maven artifact id, e.g. "feathr_2.12".
	ArtifactID string `json:"artifact_id" yaml:"artifact_id"`
	// Version is the artifact version. It may be empty.
	Version string `json:"version" yaml:"version"`
}

const coordinateParts = 3

var (
	// ErrMalformedCoordinate is returned when a coordinate does not have exactly three parts.
	ErrMalformedCoordinate = errors.New("coordinate must have the form group:artifact:version")
	// ErrEmptyGroupID is returned when the group part is empty.
	ErrEmptyGroupID = errors.New("group id is empty")
	// ErrEmptyArtifactID is returned when the artifact part is empty.
	ErrEmptyArtifactID = errors.New("artifact id is empty")
	// ErrEmptyVersion is returned when a version is required but empty.
	ErrEmptyVersion = errors.New("version is empty")
)

// Feathr returns the coordinate of the Feathr Spark runtime, resolving the
// version segment through lookup.
func Feathr(lookup version.Lookup) Coordinate {
	return Coordinate{
		GroupID:    version.MavenGroupID,
		ArtifactID: version.MavenArtifactID,
		Version:    version.ArtifactVersion(lookup),
	}
}

// Parse splits s into a Coordinate. The version part may be empty.
func Parse(s string) (Coordinate, error) {
	parts := strings.Split(s, ":")
	if len(parts) != coordinateParts {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrMalformedCoordinate, s)
	}

	c := Coordinate{
		GroupID:    parts[0],
		ArtifactID: parts[1],
		Version:    parts[2],
	}

	switch {
	case c.GroupID == "":
		return Coordinate{}, ErrEmptyGroupID
	case c.ArtifactID == "":
		return Coordinate{}, ErrEmptyArtifactID
	}

	return c, nil
}

// String renders the coordinate as group:artifact:version.
func (c Coordinate) String() string {
	return c.GroupID + ":" + c.ArtifactID + ":" + c.Version
}

// Semver parses the version segment as a strict semantic version.
func (c Coordinate) Semver() (*semver.Version, error) {
	if c.Version == "" {
		return nil, ErrEmptyVersion
	}

	v, err := semver.StrictNewVersion(c.Version)
	if err != nil {
		return nil, fmt.Errorf("parse version %q: %w", c.Version, err)
	}

	return v, nil
}
