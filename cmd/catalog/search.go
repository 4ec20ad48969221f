package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/angelmondragon/shopassist-backend/internal/chatbot"
	"github.com/angelmondragon/shopassist-backend/internal/products"
)

func searchCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Run a chatbot query against the catalog without recording history",
		Long: `Run a query through the same intent rules the chatbot endpoint uses.

Examples:
  catalog search "show all products"
  catalog search "cheap wireless mouse" --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer e.Close()

			resolver, err := chatbot.NewResolver(products.NewRepository(e.db.DB()))
			if err != nil {
				return err
			}
			res, err := resolver.Resolve(ctx, strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("search failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]any{
					"intent":   res.Intent,
					"query":    res.Query,
					"response": res.Response,
					"products": res.Products,
				})
			}
			fmt.Fprintf(out, "intent: %s\n\n%s\n", res.Intent, res.Response)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
