package migrate

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strconv"

	"github.com/angelmondragon/shopassist-backend/pkg/config"
	"github.com/pressly/goose/v3"
)

// DefaultDir is where `migrate create` writes new files, relative to the repo root.
const DefaultDir = "pkg/migrate/migrations"

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var embedded embed.FS

// Migrations returns the embedded migration set for a dialect.
func Migrations(dialect string) (fs.FS, error) {
	switch dialect {
	case config.DBDriverPostgres, config.DBDriverSQLite:
		return fs.Sub(embedded, path.Join("migrations", dialect))
	default:
		return nil, fmt.Errorf("unsupported migration dialect %q", dialect)
	}
}

func gooseDialect(dialect string) (goose.Dialect, error) {
	switch dialect {
	case config.DBDriverPostgres:
		return goose.DialectPostgres, nil
	case config.DBDriverSQLite:
		return goose.DialectSQLite3, nil
	default:
		return "", fmt.Errorf("unsupported migration dialect %q", dialect)
	}
}

// NewProvider builds a goose provider over the embedded migrations for dialect.
func NewProvider(db *sql.DB, dialect string) (*goose.Provider, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	gd, err := gooseDialect(dialect)
	if err != nil {
		return nil, err
	}
	fsys, err := Migrations(dialect)
	if err != nil {
		return nil, err
	}
	provider, err := goose.NewProvider(gd, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return provider, nil
}

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB, dialect string) ([]*goose.MigrationResult, error) {
	provider, err := NewProvider(db, dialect)
	if err != nil {
		return nil, err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return results, fmt.Errorf("goose up: %w", err)
	}
	return results, nil
}

// Down rolls back the most recent migration.
func Down(ctx context.Context, db *sql.DB, dialect string) (*goose.MigrationResult, error) {
	provider, err := NewProvider(db, dialect)
	if err != nil {
		return nil, err
	}
	result, err := provider.Down(ctx)
	if err != nil {
		return result, fmt.Errorf("goose down: %w", err)
	}
	return result, nil
}

// Status lists every known migration and whether it has been applied.
func Status(ctx context.Context, db *sql.DB, dialect string) ([]*goose.MigrationStatus, error) {
	provider, err := NewProvider(db, dialect)
	if err != nil {
		return nil, err
	}
	return provider.Status(ctx)
}

// Version returns the current database schema version.
func Version(ctx context.Context, db *sql.DB, dialect string) (int64, error) {
	provider, err := NewProvider(db, dialect)
	if err != nil {
		return 0, err
	}
	return provider.GetDBVersion(ctx)
}

// MigrateToVersion migrates up/down to the requested version by comparing current DB version.
func MigrateToVersion(ctx context.Context, db *sql.DB, dialect string, targetVersion string) error {
	if targetVersion == "" {
		return fmt.Errorf("targetVersion is required")
	}
	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid version %q (expected YYYYMMDDHHMMSS): %w", targetVersion, err)
	}

	provider, err := NewProvider(db, dialect)
	if err != nil {
		return err
	}
	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("get db version: %w", err)
	}

	switch {
	case current == target:
		return nil
	case current < target:
		if _, err := provider.UpTo(ctx, target); err != nil {
			return fmt.Errorf("goose up-to %d: %w", target, err)
		}
	default:
		if _, err := provider.DownTo(ctx, target); err != nil {
			return fmt.Errorf("goose down-to %d: %w", target, err)
		}
	}
	return nil
}
