package migrate

import (
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"

	"github.com/angelmondragon/shopassist-backend/pkg/config"
)

var sqlFileRe = regexp.MustCompile(`^(\d{14})_[a-z0-9_]+\.sql$`)

// ValidateFS checks migration filenames and goose headers in fsys and returns the versions found.
func ValidateFS(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	seen := map[string]string{}
	var versions []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".sql") {
			continue
		}

		m := sqlFileRe.FindStringSubmatch(name)
		if m == nil {
			return nil, fmt.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", name)
		}
		version := m[1]
		if prev, ok := seen[version]; ok {
			return nil, fmt.Errorf("duplicate migration version %s in %q and %q", version, prev, name)
		}
		seen[version] = name

		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read file %q: %w", name, err)
		}
		txt := string(b)
		if !strings.Contains(txt, "-- +goose Up") {
			return nil, fmt.Errorf("migration %q missing \"-- +goose Up\"", name)
		}
		if !strings.Contains(txt, "-- +goose Down") {
			return nil, fmt.Errorf("migration %q missing \"-- +goose Down\"", name)
		}
		versions = append(versions, version)
	}
	sort.Strings(versions)
	return versions, nil
}

// ValidateEmbedded validates both dialect sets and requires them to share the same versions.
func ValidateEmbedded() error {
	var reference []string
	for _, dialect := range []string{config.DBDriverPostgres, config.DBDriverSQLite} {
		fsys, err := Migrations(dialect)
		if err != nil {
			return err
		}
		versions, err := ValidateFS(fsys)
		if err != nil {
			return fmt.Errorf("%s: %w", dialect, err)
		}
		if reference == nil {
			reference = versions
			continue
		}
		if strings.Join(reference, ",") != strings.Join(versions, ",") {
			return fmt.Errorf("%s migrations %v do not match postgres %v", dialect, versions, reference)
		}
	}
	return nil
}
