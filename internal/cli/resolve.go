package cli

import (
	"github.com/spf13/cobra"

	"github.com/jacoelho/ebar/internal/config"
	"github.com/jacoelho/ebar/internal/exit"
	"github.com/jacoelho/ebar/internal/query"
)

func newResolveCommand(a *app) *cobra.Command {
	var opts config.ResolveOptions

	cmd := &cobra.Command{
		Use:   "resolve (--target VALUE | --regex PATTERN) FILE",
		Short: "Print the paths of every value matching a target or pattern",
		Long: `Search the document in FILE for scalars. With --target, print the path of
every scalar whose text equals VALUE (true/false for booleans, numbers in
canonical decimal form, strings without quotes). With --regex, print
"path: value" for every scalar whose text contains a match of PATTERN.
Nulls never match.`,
		Example: `  ebar resolve -t 8080 config.json
  ebar resolve -r '^https?://' config.yaml`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.File = args[0]
			opts.HasTarget = cmd.Flags().Changed("target")
			opts.HasRegex = cmd.Flags().Changed("regex")
			if err := opts.Validate(); err != nil {
				return exit.MarkUsage(err)
			}
			return a.resolve(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Target, "target", "t", "", "exact scalar text to find")
	cmd.Flags().StringVarP(&opts.Regex, "regex", "r", "", "regular expression matched anywhere in scalar text")
	return cmd
}

func (a *app) resolve(opts config.ResolveOptions) error {
	doc, err := a.readDocument(opts.File)
	if err != nil {
		return err
	}

	printer := a.printer()
	if opts.HasRegex {
		matches, err := query.FindPattern(doc, opts.Regex)
		if err != nil {
			return err
		}
		a.logger.Debug("regex search", "regex", opts.Regex, "count", len(matches))
		if matches == nil {
			return printer.NotFound(opts.Query())
		}
		return printer.Matches(matches)
	}

	paths := query.FindValue(doc, opts.Target)
	a.logger.Debug("value search", "target", opts.Target, "count", len(paths))
	if paths == nil {
		return printer.NotFound(opts.Query())
	}
	return printer.Paths(paths)
}
