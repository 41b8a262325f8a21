package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/feathr-version/internal/logger"
	"github.com/oshokin/feathr-version/internal/service/common"
	"github.com/oshokin/feathr-version/internal/version"
)

// newArtifactCmd prints the Maven coordinate of the Feathr runtime.
func newArtifactCmd(root *rootOptions) *cobra.Command {
	var override string

	cmd := &cobra.Command{
		Use:   "artifact",
		Short: "Print the Maven artifact of the Feathr runtime.",
		Long: `Prints com.linkedin.feathr:feathr_2.12:<version>.

The version is taken from --version-override, then MAVEN_ARTIFACT_VERSION,
then artifact_version in the configuration file, then the release version.
An override set to the empty string is used as is.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var flagValue *string
			if cmd.Flags().Changed("version-override") {
				flagValue = &override
			}

			sources := common.ArtifactSources(flagValue, version.OSLookup, root.settings)
			_, source := version.Resolve(sources...)
			coordinate := version.MavenArtifactFullnameFrom(version.Chain(sources...))

			logger.DebugKV(cmd.Context(), "Resolved Maven artifact", "maven_artifact", coordinate, "source", source)

			_, err := fmt.Fprintln(cmd.OutOrStdout(), coordinate)

			return err
		},
	}

	cmd.Flags().StringVar(&override, "version-override", "", "artifact version to use instead of the resolved one")

	return cmd
}
