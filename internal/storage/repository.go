package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/apratimrana/FInTracker/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository owns the single database file holding transactions,
// budgets and settings.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	repo := &SQLiteRepository{db: db}

	if err := repo.seedDefaultSettings(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed default settings: %w", err)
	}

	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Ping verifies the store is reachable. Used by the readiness endpoint.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// seedDefaultSettings inserts the known settings rows once. Existing rows
// are never overwritten, so repeated startups keep user values intact.
func (r *SQLiteRepository) seedDefaultSettings(ctx context.Context) error {
	defaults := []struct {
		key, value string
	}{
		{core.SettingMonthlyBudget, "0"},
		{core.SettingCurrency, core.DefaultCurrency},
	}

	for _, d := range defaults {
		var count int
		err := r.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM settings WHERE key = ?`, d.key).Scan(&count)
		if err != nil {
			return fmt.Errorf("check setting %s: %w", d.key, err)
		}
		if count > 0 {
			continue
		}
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO settings (key, value) VALUES (?, ?)`, d.key, d.value); err != nil {
			return fmt.Errorf("insert default setting %s: %w", d.key, err)
		}
		slog.InfoContext(ctx, "Seeded default setting", "key", d.key, "value", d.value)
	}

	return nil
}
