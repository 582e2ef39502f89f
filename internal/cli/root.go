// Package cli provides the command-line interface for constraints.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/constraints/pkg/config"
	"github.com/dmitrymomot/constraints/pkg/logger"
)

// Version information (set at build time).
var Version = "dev"

// ErrViolations is returned by validate when the document breaks a rule.
// The violations themselves have already been printed.
var ErrViolations = errors.New("document has violations")

type (
	appKey     struct{}
	commandKey struct{}
)

// app carries the settings shared by all commands.
type app struct {
	cfg config.Config
	log *slog.Logger
}

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:   "constraints",
		Short: "Validate documents against declarative rule schemas",
		Long: `constraints checks JSON and YAML documents against a schema of rules.

A schema lists targets, their properties and the rules bound to each
property. Rules can be limited to validation groups, and sanitizer rules
can rewrite string values before they are checked.

Settings are read from the environment and .env files:
  CONSTRAINTS_SCHEMA, CONSTRAINTS_GROUPS, CONSTRAINTS_OUTPUT,
  CONSTRAINTS_STRICT, LOG_LEVEL, LOG_FORMAT, APP_ENV`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			a, err := newApp(cmd, envFiles)
			if err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), appKey{}, a)
			ctx = context.WithValue(ctx, commandKey{}, cmd.Name())
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringP("schema", "s", "", "schema file (JSON or YAML), overrides CONSTRAINTS_SCHEMA")
	flags.StringSliceP("groups", "g", nil, "validation groups, overrides CONSTRAINTS_GROUPS")
	flags.StringP("output", "o", "", "output format (table|json), overrides CONSTRAINTS_OUTPUT")
	flags.StringSliceVar(&envFiles, "env-file", nil, ".env files to load before reading settings")

	_ = root.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputTable, config.OutputJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(
		newValidateCommand(),
		newRulesCommand(),
		newKindsCommand(),
		newVersionCommand(),
	)
	return root
}

// newApp loads settings, applies flag overrides and builds the logger.
func newApp(cmd *cobra.Command, envFiles []string) (*app, error) {
	if len(envFiles) > 0 {
		if err := config.LoadEnv(envFiles...); err != nil {
			return nil, err
		}
	}

	var cfg config.Config
	if err := config.ForceReload(&cfg); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("schema") {
		cfg.SchemaPath, _ = flags.GetString("schema")
	}
	if flags.Changed("groups") {
		cfg.Groups, _ = flags.GetStringSlice("groups")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := append(cfg.LoggerOptions("constraints"),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextValue("command", commandKey{}),
	)
	return &app{cfg: cfg, log: logger.New(opts...)}, nil
}

// appFrom returns the app stored by the root command.
func appFrom(ctx context.Context) *app {
	if a, ok := ctx.Value(appKey{}).(*app); ok {
		return a
	}
	return &app{
		cfg: config.Config{Output: config.OutputTable, Strict: true},
		log: logger.Discard(),
	}
}

// Execute runs the root command with the process arguments and returns the
// process exit code.
func Execute(ctx context.Context) int {
	return run(ctx, NewRootCmd(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, root *cobra.Command, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, ErrViolations) {
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}
