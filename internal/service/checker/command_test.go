package checker

import (
	"context"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/feathr-version/internal/version"
)

func envSource(value string) version.Source {
	return version.Source{
		Name:   "env",
		Lookup: version.MapLookup(map[string]string{version.ArtifactVersionEnv: value}),
	}
}

// TestRun_Defaults passes with the compiled-in release version.
func TestRun_Defaults(t *testing.T) {
	t.Parallel()

	report, err := Run(context.Background(), new(Options))
	require.NoError(t, err)
	require.Equal(t, version.Version, report.Version)
	require.Equal(t, version.MavenArtifactFullnameFrom(nil), report.Artifact.String())
	require.Equal(t, version.SourceDefault, report.Source)
}

// TestRun_Expect compares the resolved artifact version with the expected one.
func TestRun_Expect(t *testing.T) {
	t.Parallel()

	expect := "9.9.9"

	report, err := Run(context.Background(), &Options{
		Sources: []version.Source{envSource("9.9.9")},
		Expect:  &expect,
	})
	require.NoError(t, err)
	require.Equal(t, "env", report.Source)
	require.Equal(t, "9.9.9", report.Artifact.Version)

	expect = "1.0.0"

	_, err = Run(context.Background(), &Options{
		Sources: []version.Source{envSource("9.9.9")},
		Expect:  &expect,
	})
	require.ErrorIs(t, err, ErrUnexpectedArtifactVersion)
}

// TestRun_CollectsAllViolations reports an invalid and mismatched override together.
func TestRun_CollectsAllViolations(t *testing.T) {
	t.Parallel()

	expect := "1.0.0"

	report, err := Run(context.Background(), &Options{
		Sources: []version.Source{envSource("")},
		Expect:  &expect,
	})
	require.Error(t, err)
	require.NotNil(t, report)
	require.Equal(t, "com.linkedin.feathr:feathr_2.12:", report.Artifact.String())

	require.ErrorIs(t, err, ErrInvalidVersion)
	require.ErrorIs(t, err, ErrUnexpectedArtifactVersion)

	var merr *multierror.Error

	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 2)
}
