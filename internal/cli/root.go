// Package cli implements the ebar command tree.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jacoelho/ebar/internal/config"
	"github.com/jacoelho/ebar/internal/document"
	"github.com/jacoelho/ebar/internal/exit"
	"github.com/jacoelho/ebar/internal/output"
)

// version is set via ldflags during release builds.
var version = "dev"

// Version returns the compiled version or "dev" when run from source.
func Version() string {
	return version
}

// app is the state shared by every command of one invocation.
type app struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// Execute runs the command line args and returns how the process should
// terminate. Results go to stdout, diagnostics to stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) *exit.Result {
	cmd := NewRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	result := exit.FromError(cmd.ExecuteContext(ctx))
	if result.ExitCode == exit.CodeSuccess {
		result.Output = stdout
	} else {
		result.Output = stderr
	}
	return result
}

// NewRootCommand builds the ebar command tree. Defaults come from the
// EBAR_* environment variables and are overridden by flags.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		cfg:    config.Load(),
		stdout: stdout,
		stderr: stderr,
		logger: slog.New(slog.DiscardHandler),
	}

	root := &cobra.Command{
		Use:   "ebar",
		Short: "Resolve view paths and search JSON and YAML documents",
		Long: `ebar addresses values inside JSON and YAML documents with view paths:
fields (a.b), quoted fields ("first name"), indexes ([0]) and coalesce
groups ((id | uuid)), where the first present member wins.`,
		Args:          usageArgs(cobra.NoArgs),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.Validate(); err != nil {
				return exit.MarkUsage(err)
			}
			a.logger = newLogger(stderr, a.cfg.LogLevel())
			a.logger.Debug("command started",
				"command", cmd.CommandPath(),
				"format", a.cfg.InputFormat().String(),
				"output", a.cfg.OutputFormat().String())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return exit.MarkUsage(err)
	})

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Format, "format", a.cfg.Format, "input document format: auto, json or yaml (env "+config.EnvFormat+")")
	flags.StringVarP(&a.cfg.Output, "output", "o", a.cfg.Output, "result format: text, json or yaml (env "+config.EnvOutput+")")
	flags.BoolVar(&a.cfg.Debug, "debug", a.cfg.Debug, "enable debug logging on stderr (env "+config.EnvDebug+")")
	flags.StringVarP(&a.cfg.Dir, "dir", "C", "", "resolve relative FILE arguments against this directory")

	root.AddCommand(
		newSearchCommand(a),
		newResolveCommand(a),
		newPathCommand(a),
		newMCPCommand(a),
		newVersionCommand(a),
	)
	return root
}

// newLogger returns a text logger tagged with a fresh invocation id, so
// lines from one run can be grouped.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("invocation", uuid.NewString())
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return exit.MarkUsage(validate(cmd, args))
	}
}

func (a *app) printer() *output.Printer {
	return output.NewPrinter(a.stdout, a.cfg.OutputFormat())
}

func (a *app) readDocument(file string) (any, error) {
	a.logger.Debug("reading document", "file", file, "dir", a.cfg.Dir)
	return document.ReadFileIn(a.cfg.Dir, file, a.cfg.InputFormat())
}
