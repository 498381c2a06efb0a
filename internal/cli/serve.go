package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/image-resizer/internal/server"
)

func (a *app) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as an MCP tool server on stdin/stdout",
		Long: `Run a Model Context Protocol server speaking JSON-RPC over stdin/stdout.

The server exposes image_load, image_dimensions and image_transform tools.
image_transform accepts the same options as the command line. Logs go to
stderr so stdout carries protocol messages only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline, err := a.pipeline()
			if err != nil {
				return err
			}
			a.logger.Info("mcp server starting", "version", a.info.Version)
			return server.New(pipeline, a.logger, a.info.Version).Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
