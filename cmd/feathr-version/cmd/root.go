package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/feathr-version/internal/config"
	"github.com/oshokin/feathr-version/internal/logger"
	"github.com/oshokin/feathr-version/internal/version"
)

// rootOptions holds flags and settings shared by every subcommand.
type rootOptions struct {
	// configPath is the path to the configuration YAML file.
	configPath string
	// logLevel overrides the log level from the configuration file.
	logLevel string
	// settings is loaded before any subcommand runs.
	settings *config.Config
}

// errUnknownLogLevel is returned when --log-level cannot be parsed.
var errUnknownLogLevel = errors.New("unknown log level")

// NewRootCmd builds the feathr-version command tree.
func NewRootCmd() *cobra.Command {
	opts := new(rootOptions)

	root := &cobra.Command{
		Use:   "feathr-version",
		Short: "Print the Feathr release version.",
		Long: `Reports release metadata of the Feathr SDK.

Without a subcommand it prints the release version. The Maven artifact of the
Feathr Spark runtime is derived from it unless MAVEN_ARTIFACT_VERSION is set,
which lets the runtime be released independently of the SDK.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version.Get())
		},
	}

	root.PersistentFlags().
		StringVarP(&opts.configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (overrides configuration file)")

	version.AttachCobraVersionCommand(root)
	root.AddCommand(
		newArtifactCmd(opts),
		newInfoCmd(opts),
		newCheckCmd(opts),
		newServeCmd(opts),
		newQueryCmd(opts),
	)

	return root
}

// Execute runs the feathr-version CLI and exits with non-zero status on error.
func Execute() {
	root := NewRootCmd()

	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		os.Exit(1)
	}
}

// setup loads settings and applies the log level.
// A missing configuration file is fine unless --config was given explicitly.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	var err error

	if cmd.Flags().Changed("config") {
		o.settings, err = config.Load(o.configPath)
	} else {
		o.settings, err = config.LoadOrDefault(o.configPath)
	}

	if err != nil {
		return err
	}

	level := o.settings.LogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}

	parsed, ok := logger.ParseLogLevel(level)
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, level)
	}

	logger.SetLevel(parsed)

	return nil
}
