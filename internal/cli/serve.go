package cli

import (
	"github.com/spf13/cobra"

	"github.com/broccoli/backend/internal/config"
	"github.com/broccoli/backend/internal/entrypoint"
)

func newServeCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entrypoint.Run(config.NewConfig(), version)
			return nil
		},
	}
}
