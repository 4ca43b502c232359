package cli

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/broccoli/backend/internal/entities"
	"github.com/broccoli/backend/internal/seed"
)

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the starter exercise catalogue",
		Long:  "Insert the built-in muscle groups and exercises. Rows that already exist are skipped.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := initDatabase(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			result, err := seed.Catalog(cmd.Context(), db)
			if err != nil {
				return err
			}

			successColor.Fprintf(cmd.OutOrStdout(), "✓ Catalogue seeded: %d categories, %d exercises added\n",
				result.Categories, result.Exercises)
			return nil
		},
	}
}

func newSeedRecordsCommand() *cobra.Command {
	var count, perDay int
	var randSeed uint64

	cmd := &cobra.Command{
		Use:   "seed-records",
		Short: "Generate synthetic training history",
		Long: `Generate exercise records walking back from today, four sessions a week
(Mon, Wed, Fri, Sat). Requires the catalogue; run 'broccoli seed' first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := initDatabase(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			opts := seed.HistoryOptions{Count: count, PerDay: perDay}
			if cmd.Flags().Changed("seed") {
				opts.Rand = rand.New(rand.NewPCG(randSeed, randSeed))
			}

			result, err := seed.TrainingHistory(cmd.Context(), db, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			successColor.Fprintf(out, "✓ Created %d records\n", result.Created)
			if result.Created > 0 {
				faintColor.Fprintf(out, "  %s to %s\n",
					result.From.Format(entities.DateLayout), result.To.Format(entities.DateLayout))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", seed.DefaultHistoryCount, "number of records to create")
	cmd.Flags().IntVar(&perDay, "per-day", seed.DefaultHistoryPerDay, "exercises per training day")
	cmd.Flags().Uint64Var(&randSeed, "seed", 0, "random seed for reproducible output")
	return cmd
}
