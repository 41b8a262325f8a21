package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oshokin/feathr-version/internal/service/checker"
	"github.com/oshokin/feathr-version/internal/service/common"
	"github.com/oshokin/feathr-version/internal/version"
)

// newCheckCmd validates release metadata.
func newCheckCmd(root *rootOptions) *cobra.Command {
	var expect string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the release and artifact versions.",
		Long: `Checks that the release version and the resolved Maven artifact version are
strict semantic versions. With --expect, the artifact version must also match.
All violations are reported at once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := &checker.Options{
				Sources: common.ArtifactSources(nil, version.OSLookup, root.settings),
			}
			if cmd.Flags().Changed("expect") {
				opts.Expect = &expect
			}

			report, err := checker.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %s (%s)\n", report.Artifact, report.Source)

			return err
		},
	}

	cmd.Flags().StringVar(&expect, "expect", "", "required artifact version")

	return cmd
}
