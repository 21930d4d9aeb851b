package sqlite

import (
	"context"
	"database/sql"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

const migrationTable = "schema_migrations"

// applyMigrations executes every .sql file in migrationFS at most once
func applyMigrations(ctx context.Context, db *sql.DB, migrationFS fs.FS) error {
	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return goerr.Wrap(err, "failed to read migrations dir")
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+migrationTable+` (
		name TEXT PRIMARY KEY,
		applied_at INTEGER NOT NULL
	)`); err != nil {
		return goerr.Wrap(err, "failed to ensure migration table")
	}

	for _, file := range files {
		var count int
		if err := db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM `+migrationTable+` WHERE name = ?`, file,
		).Scan(&count); err != nil {
			return goerr.Wrap(err, "failed to check migration", goerr.V("file", file))
		}
		if count > 0 {
			continue
		}

		content, err := fs.ReadFile(migrationFS, file)
		if err != nil {
			return goerr.Wrap(err, "failed to read migration", goerr.V("file", file))
		}

		if err := applyOne(ctx, db, file, extractUp(string(content))); err != nil {
			return err
		}
	}

	return nil
}

func applyOne(ctx context.Context, db *sql.DB, file, upSQL string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin migration", goerr.V("file", file))
	}

	if strings.TrimSpace(upSQL) != "" {
		if _, err := tx.ExecContext(ctx, upSQL); err != nil {
			_ = tx.Rollback()
			return goerr.Wrap(err, "failed to apply migration", goerr.V("file", file))
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO `+migrationTable+` (name, applied_at) VALUES (?, ?)`,
		file, time.Now().UTC().UnixMilli(),
	); err != nil {
		_ = tx.Rollback()
		return goerr.Wrap(err, "failed to record migration", goerr.V("file", file))
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit migration", goerr.V("file", file))
	}
	return nil
}

// extractUp returns the statements between "-- +migrate Up" and "-- +migrate Down".
// Files without markers are applied whole.
func extractUp(content string) string {
	const upMarker = "-- +migrate Up"
	const downMarker = "-- +migrate Down"

	start := strings.Index(content, upMarker)
	if start < 0 {
		return content
	}
	content = content[start+len(upMarker):]
	if end := strings.Index(content, downMarker); end >= 0 {
		content = content[:end]
	}
	return content
}
