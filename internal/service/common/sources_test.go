//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/feathr-version/internal/config"
	"github.com/oshokin/feathr-version/internal/version"
)

// TestArtifactSources_Precedence walks the flag > env > config > default chain.
func TestArtifactSources_Precedence(t *testing.T) {
	t.Parallel()

	var (
		flagValue = "4.0.0"
		env       = version.MapLookup(map[string]string{version.ArtifactVersionEnv: "3.0.0"})
		noEnv     = version.MapLookup(nil)
		cfg       = &config.Config{ArtifactVersion: "2.0.0"}
	)

	v, src := version.Resolve(ArtifactSources(&flagValue, env, cfg)...)
	require.Equal(t, "4.0.0", v)
	require.Equal(t, SourceFlag, src)

	v, src = version.Resolve(ArtifactSources(nil, env, cfg)...)
	require.Equal(t, "3.0.0", v)
	require.Equal(t, SourceEnv, src)

	v, src = version.Resolve(ArtifactSources(nil, noEnv, cfg)...)
	require.Equal(t, "2.0.0", v)
	require.Equal(t, SourceConfig, src)

	v, src = version.Resolve(ArtifactSources(nil, noEnv, nil)...)
	require.Equal(t, version.Version, v)
	require.Equal(t, version.SourceDefault, src)
}

// TestArtifactSources_EmptyFlag keeps an explicitly empty override.
func TestArtifactSources_EmptyFlag(t *testing.T) {
	t.Parallel()

	empty := ""
	env := version.MapLookup(map[string]string{version.ArtifactVersionEnv: "3.0.0"})

	lookup := version.Chain(ArtifactSources(&empty, env, nil)...)
	require.Equal(t, "com.linkedin.feathr:feathr_2.12:", version.MavenArtifactFullnameFrom(lookup))
}
