package db

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/ChaiyasitZ/backend-project-AdvCompro/db/migrations"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const createSchemaMigrationsQuery = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version VARCHAR(255) NOT NULL PRIMARY KEY
)`

// Migrate applies every embedded *.up.sql file for the connection's driver
// that is not yet recorded in schema_migrations, in file name order.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	dir := db.DriverName()

	files, err := upMigrationFiles(dir)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, createSchemaMigrationsQuery); err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	var applied []string
	if err := db.SelectContext(ctx, &applied, "SELECT version FROM schema_migrations"); err != nil {
		return fmt.Errorf("reading schema_migrations: %w", err)
	}
	done := make(map[string]struct{}, len(applied))
	for _, version := range applied {
		done[version] = struct{}{}
	}

	for _, file := range files {
		version := strings.TrimSuffix(file, ".up.sql")
		if _, ok := done[version]; ok {
			continue
		}

		content, err := fs.ReadFile(migrations.FS, path.Join(dir, file))
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", file, err)
		}

		if err := applyMigration(ctx, db, version, string(content)); err != nil {
			zap.L().Error("migration failed", zap.String("driver", dir), zap.String("version", version), zap.Error(err))
			return fmt.Errorf("migration %s: %w", file, err)
		}

		zap.L().Info("applied migration", zap.String("driver", dir), zap.String("version", version))
	}

	return nil
}

// applyMigration runs a migration and records its version in one transaction.
// MySQL commits DDL implicitly, so there only the SQLite path is fully atomic.
func applyMigration(ctx context.Context, db *sqlx.DB, version, content string) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, content); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("applying: %w", err)
	}
	if _, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO schema_migrations (version) VALUES (?)"), version); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("recording: %w", err)
	}

	return tx.Commit()
}

func upMigrationFiles(dir string) ([]string, error) {
	entries, err := fs.ReadDir(migrations.FS, dir)
	if err != nil {
		return nil, fmt.Errorf("no migrations for driver %q: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	return files, nil
}
