// Package cli implements the broccoli command line: the HTTP server and the
// schema and seed-data maintenance commands.
package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/broccoli/backend/internal/config"
	"github.com/broccoli/backend/internal/database"
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	faintColor   = color.New(color.Faint)
)

// NewRootCommand builds the command tree. Running it without a subcommand
// starts the server.
func NewRootCommand(version string) *cobra.Command {
	serve := newServeCommand(version)

	root := &cobra.Command{
		Use:   "broccoli",
		Short: "Workout log REST backend",
		Long: `Broccoli serves the workout log API: categories, exercises and the
weight/rep records logged against them.

QUICK START:

  $ broccoli migrate        # Create tables if absent
  $ broccoli seed           # Load the starter exercise catalogue
  $ broccoli serve          # Start the HTTP server on $PORT (default 8000)

CONFIGURATION:

  DATABASE_URL    sqlite://./broccoli.db, postgres://..., mysql://...
  CORS_ORIGINS    comma-separated list of allowed origins`,
		Version:      version,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	root.AddCommand(
		serve,
		newMigrateCommand(),
		newResetCommand(),
		newSeedCommand(),
		newSeedRecordsCommand(),
	)
	return root
}

// initDatabase connects and ensures the schema, retrying per config.
func initDatabase(cmd *cobra.Command) (*database.Database, error) {
	cfg := config.NewConfig()
	return database.NewInitializer(cfg.Database).Run(cmd.Context())
}
