package version

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes key for the duration of the test and restores it afterwards.
func unsetEnv(t *testing.T, key string) {
	t.Helper()

	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

// TestFull renders the release version with build metadata.
func TestFull(t *testing.T) {
	t.Parallel()

	require.Equal(t, "version: 0.10.4-rc1, commit: "+Commit+", built at: "+BuildTime, Full())
}

// TestGet_ReturnsReleaseConstant checks the release string and that it ignores the environment.
func TestGet_ReturnsReleaseConstant(t *testing.T) {
	t.Setenv(ArtifactVersionEnv, "9.9.9")

	require.Equal(t, "0.10.4-rc1", Get())
	require.Equal(t, Get(), Get())
}

// TestMavenArtifactFullname_Unset falls back to the release version.
func TestMavenArtifactFullname_Unset(t *testing.T) {
	unsetEnv(t, ArtifactVersionEnv)

	require.Equal(t, "com.linkedin.feathr:feathr_2.12:0.10.4-rc1", MavenArtifactFullname())
	require.Equal(t, MavenArtifactFullname(), MavenArtifactFullname())
}

// TestMavenArtifactFullname_Override uses the environment value as the version segment.
func TestMavenArtifactFullname_Override(t *testing.T) {
	t.Setenv(ArtifactVersionEnv, "9.9.9")

	require.Equal(t, "com.linkedin.feathr:feathr_2.12:9.9.9", MavenArtifactFullname())
}

// TestMavenArtifactFullname_EmptyOverride substitutes a set-but-empty value verbatim.
func TestMavenArtifactFullname_EmptyOverride(t *testing.T) {
	t.Setenv(ArtifactVersionEnv, "")

	require.Equal(t, "com.linkedin.feathr:feathr_2.12:", MavenArtifactFullname())
}

// TestMavenArtifactFullnameFrom covers injected lookups without touching the process environment.
func TestMavenArtifactFullnameFrom(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		lookup Lookup
		want   string
	}{
		{
			name:   "nil lookup",
			lookup: nil,
			want:   "com.linkedin.feathr:feathr_2.12:0.10.4-rc1",
		},
		{
			name:   "unset",
			lookup: MapLookup(nil),
			want:   "com.linkedin.feathr:feathr_2.12:0.10.4-rc1",
		},
		{
			name:   "override",
			lookup: MapLookup(map[string]string{ArtifactVersionEnv: "9.9.9"}),
			want:   "com.linkedin.feathr:feathr_2.12:9.9.9",
		},
		{
			name:   "empty override",
			lookup: MapLookup(map[string]string{ArtifactVersionEnv: ""}),
			want:   "com.linkedin.feathr:feathr_2.12:",
		},
		{
			name:   "whitespace kept",
			lookup: MapLookup(map[string]string{ArtifactVersionEnv: " 1.0.0 "}),
			want:   "com.linkedin.feathr:feathr_2.12: 1.0.0 ",
		},
		{
			name:   "other keys ignored",
			lookup: MapLookup(map[string]string{"VERSION": "1.2.3"}),
			want:   "com.linkedin.feathr:feathr_2.12:0.10.4-rc1",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tc.want, MavenArtifactFullnameFrom(tc.lookup))
		})
	}
}

// TestMapLookup_CopiesInput verifies later writes to the source map are not observed.
func TestMapLookup_CopiesInput(t *testing.T) {
	t.Parallel()

	m := map[string]string{ArtifactVersionEnv: "1.0.0"}
	lookup := MapLookup(m)
	m[ArtifactVersionEnv] = "2.0.0"

	require.Equal(t, "1.0.0", ArtifactVersion(lookup))
}

// TestResolve reports both the value and the source that supplied it.
func TestResolve(t *testing.T) {
	t.Parallel()

	flag := Source{Name: "flag", Lookup: MapLookup(map[string]string{ArtifactVersionEnv: "3.0.0"})}
	env := Source{Name: "env", Lookup: MapLookup(map[string]string{ArtifactVersionEnv: "2.0.0"})}
	empty := Source{Name: "config", Lookup: MapLookup(nil)}

	v, src := Resolve(flag, env)
	require.Equal(t, "3.0.0", v)
	require.Equal(t, "flag", src)

	v, src = Resolve(empty, Source{Name: "nil"}, env)
	require.Equal(t, "2.0.0", v)
	require.Equal(t, "env", src)

	v, src = Resolve(empty)
	require.Equal(t, Version, v)
	require.Equal(t, SourceDefault, src)

	require.Equal(t, "com.linkedin.feathr:feathr_2.12:2.0.0", MavenArtifactFullnameFrom(Chain(empty, env, flag)))
}

// TestAttachCobraVersionCommand checks the subcommand prints the full version line.
func TestAttachCobraVersionCommand(t *testing.T) {
	t.Parallel()

	root := &cobra.Command{Use: "root"}
	AttachCobraVersionCommand(root)

	var out bytes.Buffer

	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	require.Equal(t, Full()+"\n", out.String())
}
