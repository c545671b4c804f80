// Package migrations holds the schema for series_data and the app's own
// tables, applied in filename order and recorded in schema_migrations.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

//go:embed *.sql
var files embed.FS

// Migration represents a database migration
type Migration struct {
	ID       int
	Filename string
	Content  string
}

// Run applies every migration newer than the recorded version and returns
// how many ran.
func Run(ctx context.Context, db *sql.DB, log *zap.Logger) (int, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := createMigrationsTable(ctx, db); err != nil {
		return 0, fmt.Errorf("failed to create migrations table: %w", err)
	}

	currentVersion, err := CurrentVersion(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("failed to get current version: %w", err)
	}

	migrations, err := Load()
	if err != nil {
		return 0, fmt.Errorf("failed to load migrations: %w", err)
	}

	applied := 0
	for _, m := range migrations {
		if m.ID <= currentVersion {
			continue
		}
		log.Info("running migration", zap.Int("version", m.ID), zap.String("file", m.Filename))
		if err := runMigration(ctx, db, m); err != nil {
			return applied, fmt.Errorf("failed to run migration %d: %w", m.ID, err)
		}
		applied++
	}
	log.Info("migrations complete", zap.Int("applied", applied), zap.Int("from_version", currentVersion))
	return applied, nil
}

func createMigrationsTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			filename VARCHAR(255) NOT NULL,
			executed_at TIMESTAMP DEFAULT NOW()
		)`)
	return err
}

// CurrentVersion is the highest applied migration, or 0.
func CurrentVersion(ctx context.Context, db *sql.DB) (int, error) {
	var version int
	err := db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	return version, err
}

// Load returns the embedded migrations sorted by ID. Files are named
// NNN_description.sql.
func Load() ([]Migration, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, err
	}

	var migrations []Migration
	for _, e := range entries {
		name := e.Name()
		if !strings.HasSuffix(name, ".sql") {
			continue
		}
		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			continue
		}
		id, err := strconv.Atoi(prefix)
		if err != nil {
			continue
		}
		content, err := fs.ReadFile(files, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration file %s: %w", name, err)
		}
		migrations = append(migrations, Migration{ID: id, Filename: name, Content: string(content)})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].ID < migrations[j].ID
	})
	for i := 1; i < len(migrations); i++ {
		if migrations[i].ID == migrations[i-1].ID {
			return nil, fmt.Errorf("duplicate migration version %d", migrations[i].ID)
		}
	}
	return migrations, nil
}

func runMigration(ctx context.Context, db *sql.DB, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.Content); err != nil {
		return fmt.Errorf("failed to execute migration: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, filename) VALUES ($1, $2)",
		m.ID, m.Filename,
	); err != nil {
		return fmt.Errorf("failed to record migration: %w", err)
	}
	return tx.Commit()
}
