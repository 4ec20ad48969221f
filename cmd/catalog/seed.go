package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/angelmondragon/shopassist-backend/internal/products"
)

func seedCmd() *cobra.Command {
	var (
		minSize    int
		randomSeed int64
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the product table when it is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			if !cmd.Flags().Changed("min-size") {
				minSize = e.cfg.Catalog.MinSize
			}
			if !cmd.Flags().Changed("random-seed") {
				randomSeed = e.cfg.Catalog.RandomSeed
			}

			repo := products.NewRepository(e.db.DB())
			seeder, err := products.NewSeeder(repo, e.logg, randomSeed)
			if err != nil {
				return err
			}
			inserted, err := seeder.SeedIfEmpty(ctx, minSize)
			if err != nil {
				return fmt.Errorf("seed catalog: %w", err)
			}
			if inserted == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "catalog already populated, nothing seeded")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products\n", inserted)
			return nil
		},
	}
	cmd.Flags().IntVar(&minSize, "min-size", 200, "minimum catalog size after seeding")
	cmd.Flags().Int64Var(&randomSeed, "random-seed", 0, "seed for generated filler (0 picks one)")
	return cmd
}
