package version

import (
	"maps"
	"os"
)

// Lookup reports the value of a named setting and whether it is set.
// os.LookupEnv satisfies it.
type Lookup func(key string) (string, bool)

// Source is a named Lookup consulted when resolving the artifact version.
type Source struct {
	// Name identifies where the value came from (e.g. "flag", "env").
	Name string
	// Lookup reads the value.
	Lookup Lookup
}

// SourceDefault is reported by Resolve when no source provides a value.
const SourceDefault = "default"

// OSLookup reads the process environment.
//
//nolint:gochecknoglobals // Alias of os.LookupEnv.
var OSLookup Lookup = os.LookupEnv

// MapLookup returns a Lookup backed by a copy of m.
func MapLookup(m map[string]string) Lookup {
	values := maps.Clone(m)

	return func(key string) (string, bool) {
		v, ok := values[key]

		return v, ok
	}
}

// Chain returns a Lookup that consults sources in order and returns the first hit.
func Chain(sources ...Source) Lookup {
	return func(key string) (string, bool) {
		for _, s := range sources {
			if s.Lookup == nil {
				continue
			}

			if v, ok := s.Lookup(key); ok {
				return v, true
			}
		}

		return "", false
	}
}

// Resolve returns the artifact version and the name of the source that supplied it.
// When no source sets ArtifactVersionEnv, it returns Version and SourceDefault.
func Resolve(sources ...Source) (string, string) {
	for _, s := range sources {
		if s.Lookup == nil {
			continue
		}

		if v, ok := s.Lookup(ArtifactVersionEnv); ok {
			return v, s.Name
		}
	}

	return Version, SourceDefault
}
