package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/feathr-version/internal/version"
)

// TestService_Answers checks both queries against an injected lookup.
func TestService_Answers(t *testing.T) {
	t.Parallel()

	values := map[string]string{}
	lookup := func(key string) (string, bool) {
		v, ok := values[key]

		return v, ok
	}

	s := newService(lookup)
	ctx := context.Background()

	require.Equal(t, version.Version, s.Version(ctx))
	require.Equal(t, "com.linkedin.feathr:feathr_2.12:"+version.Version, s.MavenArtifactFullname(ctx))

	// The lookup is consulted per call, not cached.
	values[version.ArtifactVersionEnv] = "9.9.9"

	require.Equal(t, "com.linkedin.feathr:feathr_2.12:9.9.9", s.MavenArtifactFullname(ctx))
}

// TestResolveListenAddress covers override, port extraction and errors.
func TestResolveListenAddress(t *testing.T) {
	t.Parallel()

	addr, err := resolveListenAddress("server.example.com:8080", "")
	require.NoError(t, err)
	require.Equal(t, ":8080", addr)

	addr, err = resolveListenAddress("server.example.com:8080", "127.0.0.1:9090")
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9090", addr)

	_, err = resolveListenAddress("", "")
	require.ErrorIs(t, err, ErrNoServerAddress)

	_, err = resolveListenAddress("no-port", "")
	require.Error(t, err)
}
