//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"github.com/oshokin/feathr-version/internal/config"
	"github.com/oshokin/feathr-version/internal/version"
)

// Names of the artifact version sources, in precedence order.
const (
	SourceFlag   = "flag"
	SourceEnv    = "env"
	SourceConfig = "config"
)

// ArtifactSources returns the artifact version sources used by the commands:
// the command-line override (nil when not given), then env, then cfg.
func ArtifactSources(override *string, env version.Lookup, cfg *config.Config) []version.Source {
	sources := make([]version.Source, 0, 3) //nolint:mnd // flag, env, config.

	if override != nil {
		sources = append(sources, version.Source{
			Name:   SourceFlag,
			Lookup: version.MapLookup(map[string]string{version.ArtifactVersionEnv: *override}),
		})
	}

	sources = append(sources,
		version.Source{Name: SourceEnv, Lookup: env},
		version.Source{Name: SourceConfig, Lookup: cfg.ArtifactLookup()},
	)

	return sources
}
