package cli

import (
	"github.com/spf13/cobra"

	"github.com/jacoelho/ebar/internal/viewpath"
)

func newPathCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Check and convert view paths",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "fmt PATH...",
			Short:   "Print each path in canonical form",
			Example: `  ebar path fmt '.a . ( x|y )[0]'`,
			Args:    usageArgs(cobra.MinimumNArgs(1)),
			RunE: func(_ *cobra.Command, args []string) error {
				return a.formatPaths(args, (*viewpath.Path).String)
			},
		},
		&cobra.Command{
			Use:     "json PATH...",
			Short:   "Print each path as an RFC 9535 normalized JSONPath",
			Example: `  ebar path json 'a."b c"[0]'`,
			Args:    usageArgs(cobra.MinimumNArgs(1)),
			RunE: func(_ *cobra.Command, args []string) error {
				return a.formatPaths(args, (*viewpath.Path).JSONPath)
			},
		},
	)
	return cmd
}

// formatPaths parses every argument before printing, so a bad path prints
// nothing.
func (a *app) formatPaths(args []string, render func(*viewpath.Path) string) error {
	texts := make([]string, 0, len(args))
	for _, arg := range args {
		path, err := viewpath.Parse(arg)
		if err != nil {
			return err
		}
		texts = append(texts, render(path))
	}
	return a.printer().Lines(texts)
}
