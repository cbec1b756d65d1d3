package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"

	goose "github.com/pressly/goose/v3"
)

const versionTable = "goose_db_version"

var (
	ErrMigrationsPending = errors.New("pending migrations and MIGRATE_ON_START is off")
	ErrMigrationsStuck   = errors.New("migrations still pending after up")
)

// UpMigrations applies every pending migration found in fsys.
func UpMigrations(db *sql.DB, fsys fs.FS) error {
	goose.SetBaseFS(fsys)
	goose.SetLogger(goose.NopLogger())
	goose.SetTableName(versionTable)

	err := goose.SetDialect("postgres")
	if err != nil {
		return err
	}

	err = goose.Up(db, ".")
	if err != nil && !errors.Is(err, goose.ErrNoNextVersion) {
		return err
	}

	return nil
}

// RegisteredVersions returns the versions of the migration files in fsys.
func RegisteredVersions(fsys fs.FS) ([]int64, error) {
	files, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	versions := make([]int64, 0, len(files))

	for _, f := range files {
		v, err := goose.NumericComponent(path.Base(f))
		if err != nil {
			return nil, fmt.Errorf("migration %s: %w", f, err)
		}

		versions = append(versions, v)
	}

	sort.Slice(versions, func(i, j int) bool { return versions[i] < versions[j] })

	return versions, nil
}

// AppliedVersions reads the goose history. A version counts as applied when
// its most recent history row has is_applied set; a later rollback row
// cancels an earlier apply. A missing history table means nothing is applied.
func AppliedVersions(ctx context.Context, db *sql.DB) (map[int64]bool, error) {
	var exists bool

	err := db.QueryRowContext(ctx, `SELECT to_regclass($1) IS NOT NULL`, versionTable).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("check history table: %w", err)
	}

	applied := make(map[int64]bool)

	if !exists {
		return applied, nil
	}

	rows, err := db.QueryContext(ctx, `SELECT version_id, is_applied FROM `+versionTable+` ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	seen := make(map[int64]bool)

	for rows.Next() {
		var (
			version   int64
			isApplied bool
		)

		err = rows.Scan(&version, &isApplied)
		if err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}

		if seen[version] {
			continue
		}

		seen[version] = true

		if isApplied {
			applied[version] = true
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	return applied, nil
}

// AllMigrationsApplied reports whether every migration in fsys is recorded
// as applied. Without a handle there is nothing to check.
func AllMigrationsApplied(ctx context.Context, db *sql.DB, fsys fs.FS) (bool, error) {
	if db == nil {
		return true, nil
	}

	registered, err := RegisteredVersions(fsys)
	if err != nil {
		return false, err
	}

	applied, err := AppliedVersions(ctx, db)
	if err != nil {
		return false, err
	}

	return len(Pending(registered, applied)) == 0, nil
}

// Pending returns registered versions missing from applied.
func Pending(registered []int64, applied map[int64]bool) []int64 {
	var pending []int64

	for _, v := range registered {
		if !applied[v] {
			pending = append(pending, v)
		}
	}

	return pending
}

// EnsureMigrations applies pending migrations when migrate is set and refuses
// to continue otherwise. db must come from a pool that has already been pinged.
func EnsureMigrations(ctx context.Context, l *slog.Logger, db *sql.DB, fsys fs.FS, migrate bool) error {
	applied, err := AllMigrationsApplied(ctx, db, fsys)
	if err != nil {
		return err
	}

	if applied {
		l.Debug("all migrations applied")
		return nil
	}

	if !migrate {
		return ErrMigrationsPending
	}

	l.Info("applying pending migrations")

	err = UpMigrations(db, fsys)
	if err != nil {
		return fmt.Errorf("up migrations: %w", err)
	}

	applied, err = AllMigrationsApplied(ctx, db, fsys)
	if err != nil {
		return err
	}

	if !applied {
		return ErrMigrationsStuck
	}

	return nil
}
