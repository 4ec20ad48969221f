package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/angelmondragon/shopassist-backend/internal/products"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List distinct product categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			categories, err := products.NewRepository(e.db.DB()).DistinctCategories(ctx)
			if err != nil {
				return fmt.Errorf("list categories: %w", err)
			}
			for _, c := range categories {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
