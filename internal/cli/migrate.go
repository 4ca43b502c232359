package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/broccoli/backend/internal/config"
	"github.com/broccoli/backend/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables",
		Long:  "Create every table that does not exist yet. Existing tables and rows are left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := initDatabase(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			successColor.Fprintf(cmd.OutOrStdout(), "✓ Schema is up to date (%s)\n", db.Dialect)
			return nil
		},
	}
}

var errResetNotConfirmed = errors.New("refusing to drop tables without --yes")

func newResetCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop and recreate all tables",
		Long:  "Drop every table and create the schema again. All data is lost.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				warnColor.Fprintln(cmd.ErrOrStderr(), "This deletes every category, exercise and record.")
				return errResetNotConfirmed
			}

			cfg := config.NewConfig()
			db, err := database.Open(cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("reset failed: %w", err)
			}
			successColor.Fprintln(cmd.OutOrStdout(), "✓ Tables dropped and recreated")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm that all data may be deleted")
	return cmd
}
