package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jacoelho/ebar/internal/mcpserver"
)

func newMCPCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the resolve, find and format_path tools over MCP stdio",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.logger.Debug("starting mcp server")
			err := mcpserver.Run(cmd.Context(), mcpserver.Options{
				Version: Version(),
				Format:  a.cfg.InputFormat(),
				Logger:  a.logger,
			})
			if err != nil {
				return fmt.Errorf("mcp server: %w", err)
			}
			return nil
		},
	}
}
