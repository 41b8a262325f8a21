package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/feathr-version/internal/service/common"
	"github.com/oshokin/feathr-version/internal/service/info"
	"github.com/oshokin/feathr-version/internal/version"
)

// newInfoCmd prints build information.
func newInfoCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print build information.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := info.ParseFormat(format)
			if err != nil {
				return err
			}

			bi := info.Collect(common.ArtifactSources(nil, version.OSLookup, root.settings)...)

			return info.Write(cmd.OutOrStdout(), bi, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(info.FormatText), "output format: text, json or yaml")

	return cmd
}
