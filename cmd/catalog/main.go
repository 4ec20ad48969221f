package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/angelmondragon/shopassist-backend/pkg/config"
	"github.com/angelmondragon/shopassist-backend/pkg/db"
	"github.com/angelmondragon/shopassist-backend/pkg/logger"
	"github.com/angelmondragon/shopassist-backend/pkg/migrate"
)

var Version = "dev"

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Operator tooling for the shop assistant catalog",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(tokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env is what every database-backed subcommand needs.
type env struct {
	cfg  *config.Config
	logg *logger.Logger
	db   *db.Client
}

func (e *env) Close() error {
	return e.db.Close()
}

func bootstrap(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logg := logger.New(logger.Options{
		ServiceName: "catalog",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := migrate.MaybeRun(ctx, cfg, logg, client); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &env{cfg: cfg, logg: logg, db: client}, nil
}
