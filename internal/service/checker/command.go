package checker

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/hashicorp/go-multierror"

	"github.com/oshokin/feathr-version/internal/artifact"
	"github.com/oshokin/feathr-version/internal/logger"
	"github.com/oshokin/feathr-version/internal/version"
)

// Options configures a release check.
type Options struct {
	// Sources resolve the artifact version, in precedence order.
	Sources []version.Source
	// Expect, when non-nil, is the artifact version the check requires.
	Expect *string
}

// Report describes what the check looked at.
type Report struct {
	// Version is the release version.
	Version string
	// Artifact is the resolved Maven coordinate.
	Artifact artifact.Coordinate
	// Source names where the artifact version came from.
	Source string
}

var (
	// ErrInvalidVersion is returned when a version is not a strict semantic version.
	ErrInvalidVersion = errors.New("invalid semantic version")
	// ErrUnexpectedArtifactVersion is returned when the artifact version differs from the expected one.
	ErrUnexpectedArtifactVersion = errors.New("unexpected artifact version")
)

// Run checks the release metadata and returns every violation found.
// The report is returned even when the check fails.
func Run(ctx context.Context, opts *Options) (*Report, error) {
	ctx = logger.WithName(ctx, "feathr-version-check")

	_, source := version.Resolve(opts.Sources...)
	report := &Report{
		Version:  version.Get(),
		Artifact: artifact.Feathr(version.Chain(opts.Sources...)),
		Source:   source,
	}

	var merr error

	if _, err := semver.StrictNewVersion(report.Version); err != nil {
		logger.ErrorKV(ctx, "Release version is not a semantic version", "version", report.Version, "error", err)
		merr = multierror.Append(merr, fmt.Errorf("%w: release version %q: %w", ErrInvalidVersion, report.Version, err))
	}

	if _, err := report.Artifact.Semver(); err != nil {
		logger.ErrorKV(ctx, "Artifact version is not a semantic version",
			"version", report.Artifact.Version, "source", source, "error", err)
		merr = multierror.Append(merr, fmt.Errorf("%w: artifact version from %s: %w", ErrInvalidVersion, source, err))
	}

	if opts.Expect != nil && *opts.Expect != report.Artifact.Version {
		logger.ErrorKV(ctx, "Artifact version mismatch",
			"expected", *opts.Expect, "actual", report.Artifact.Version, "source", source)
		merr = multierror.Append(merr, fmt.Errorf("%w: expected %q, got %q from %s",
			ErrUnexpectedArtifactVersion, *opts.Expect, report.Artifact.Version, source))
	}

	if merr != nil {
		return report, merr
	}

	logger.InfoKV(ctx, "Release metadata is valid",
		"version", report.Version, "maven_artifact", report.Artifact.String(), "source", source)

	return report, nil
}
