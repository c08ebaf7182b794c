package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/sagit117/BuilderBricks/internal/app"
	"github.com/spf13/cobra"
)

// ConfigArgPrefix marks the positional argument selecting the application
// configuration file.
const ConfigArgPrefix = "app.config="

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options holds the flag values of the root command.
type options struct {
	dryRun    bool
	logFormat string
}

// newRootCommand creates the bricks root command. RunE only records the
// parsed configuration in *out.
func newRootCommand(out **app.Config) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "bricks [app.config=PATH]",
		Short: "BuilderBricks - runs prioritised scenarios with a pluggable logger.",
		Long: `BuilderBricks loads the application configuration, binds the logging module
and launches every scenario of the scenario directory in ascending priority.

Arguments:
  app.config=PATH
    Application configuration file. Defaults to ` + app.DefaultConfigPath + `,
    looked up on disk first and among the bundled resources second.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, found := configPath(args)
			if found && path == "" {
				return &ExitError{Code: 2, Message: "invalid argument: " + ConfigArgPrefix + " requires a path"}
			}
			slog.Debug("Config path determined.", "path", path, "explicit", found)

			cfg, err := app.NewConfig(app.Config{
				ConfigPath: path,
				DryRun:     opts.dryRun,
				LogFormat:  opts.logFormat,
			})
			if err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}
			*out = cfg
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the ordered scenario plan without launching anything.")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	return cmd
}

// configPath returns the value of the first app.config= argument.
func configPath(args []string) (string, bool) {
	for _, arg := range args {
		if strings.HasPrefix(arg, ConfigArgPrefix) {
			return strings.TrimSpace(strings.TrimPrefix(arg, ConfigArgPrefix)), true
		}
	}
	return "", false
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var cfg *app.Config
	cmd := newRootCommand(&cfg)
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	if err := cmd.Execute(); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// Help was requested: cobra printed it and never ran RunE.
	if cfg == nil {
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
