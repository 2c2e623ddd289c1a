package cli

import (
	"github.com/spf13/cobra"

	"github.com/jacoelho/ebar/internal/config"
	"github.com/jacoelho/ebar/internal/exit"
	"github.com/jacoelho/ebar/internal/query"
	"github.com/jacoelho/ebar/internal/viewpath"
)

func newSearchCommand(a *app) *cobra.Command {
	var opts config.SearchOptions

	cmd := &cobra.Command{
		Use:   "search [--path PATH | --jsonpath EXPR] FILE",
		Short: "Print a document, or the value at a path",
		Long: `Print the document in FILE. With --path, print only the value the view
path resolves to; nothing is printed when the path does not resolve.
With --jsonpath, print every value an RFC 9535 JSONPath selects.`,
		Example: `  ebar search config.json
  ebar search -p 'servers[0].(host | address)' config.yaml
  ebar search --jsonpath '$..port' config.yaml`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(_ *cobra.Command, args []string) error {
			opts.File = args[0]
			if err := opts.Validate(); err != nil {
				return exit.MarkUsage(err)
			}
			return a.search(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Path, "path", "p", "", "view path to resolve, e.g. a.b[0]")
	cmd.Flags().StringVar(&opts.JSONPath, "jsonpath", "", "RFC 9535 JSONPath expression")
	return cmd
}

func (a *app) search(opts config.SearchOptions) error {
	var path *viewpath.Path
	if opts.Path != "" {
		parsed, err := viewpath.Parse(opts.Path)
		if err != nil {
			return err
		}
		path = parsed
	}

	doc, err := a.readDocument(opts.File)
	if err != nil {
		return err
	}

	printer := a.printer()
	switch {
	case opts.JSONPath != "":
		values, err := query.SelectJSONPath(doc, opts.JSONPath)
		if err != nil {
			return err
		}
		a.logger.Debug("jsonpath selected", "jsonpath", opts.JSONPath, "count", len(values))
		return printer.Values(values)
	case path != nil:
		value, ok := query.SearchPath(doc, path)
		a.logger.Debug("path resolved", "path", path.String(), "found", ok)
		if !ok {
			return nil
		}
		return printer.Value(value)
	default:
		return printer.Value(doc)
	}
}
