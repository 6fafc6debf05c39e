// Package cmd contains the CLI commands for the nanoid application.
package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/hustcer/nanoid/internal/config"
	"github.com/hustcer/nanoid/internal/logging"
)

// settingsKey carries the loaded *config.Config through the command context.
type settingsKey struct{}

// NewRootCmd creates a root command without subcommands. Its persistent
// pre-run loads configuration and installs the logger in the context.
func NewRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "nanoid",
		Short: "Generate short, unique, URL-friendly identifiers",
		Long: "nanoid generates random identifiers drawn uniformly from a configurable alphabet.\n\n" +
			"Defaults come from nanoid.yaml in the working directory or $HOME/.config/nanoid,\n" +
			"then from NANOID_* environment variables. Flags override both.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return &ContextError{Op: "load config", Path: configPath, Err: err}
			}
			if verbose {
				cfg.Log.Level = "debug"
			}

			logger := logging.New(cmd.ErrOrStderr(), cfg.Log)
			if cfg.File != "" {
				logger.Debug().Str("file", cfg.File).Msg("loaded config")
			}

			ctx := context.WithValue(cmd.Context(), settingsKey{}, cfg)
			ctx = logging.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ./nanoid.yaml or $HOME/.config/nanoid/nanoid.yaml)")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &InvalidInputError{Err: err}
	})

	return cmd
}

// BuildCommandTree returns a root command with every subcommand attached.
func BuildCommandTree() *cobra.Command {
	root := NewRootCmd()
	root.AddCommand(
		NewGenerateCmd(),
		NewValidateCmd(),
		NewInspectCmd(),
		NewCompareCmd(),
		NewPresetsCmd(),
		NewReserveCmd(),
	)
	return root
}

// settingsFrom returns the configuration stored by the root pre-run, or the
// built-in defaults when a command runs without a root.
func settingsFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(settingsKey{}).(*config.Config); ok {
		return cfg
	}
	d := config.Default()
	return &d
}

// Run executes a fresh command tree with args and returns the process exit
// code. Errors are written to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := BuildCommandTree()
	root.SetContext(ctx)
	return RunCLI(root, args, stdout, stderr)
}

// exactArgs is cobra.ExactArgs with usage errors mapped to exit status 2.
func exactArgs(n int) cobra.PositionalArgs {
	return invalidArgs(cobra.ExactArgs(n))
}

// noArgs is cobra.NoArgs with usage errors mapped to exit status 2.
func noArgs(cmd *cobra.Command, args []string) error {
	return invalidArgs(cobra.NoArgs)(cmd, args)
}

func invalidArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &InvalidInputError{Err: err}
		}
		return nil
	}
}
