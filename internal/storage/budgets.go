package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/apratimrana/FInTracker/internal/core"
)

// MonthlyBudget reads the monthly_budget setting. An absent row, empty
// value or unparseable value all mean "no budget set" and yield 0.
func (r *SQLiteRepository) MonthlyBudget(ctx context.Context) (float64, error) {
	value, err := r.setting(ctx, core.SettingMonthlyBudget)
	if err != nil {
		return 0, err
	}
	if value == "" {
		return 0, nil
	}
	budget, err := strconv.ParseFloat(value, 64)
	if err != nil {
		slog.WarnContext(ctx, "Unparseable monthly budget setting, treating as unset", "value", value)
		return 0, nil
	}
	return budget, nil
}

// SetMonthlyBudget upserts the monthly_budget setting.
func (r *SQLiteRepository) SetMonthlyBudget(ctx context.Context, budget float64) error {
	value := strconv.FormatFloat(budget, 'f', -1, 64)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		core.SettingMonthlyBudget, value)
	if err != nil {
		return fmt.Errorf("set monthly budget: %w", err)
	}

	slog.InfoContext(ctx, "Monthly budget updated", "budget", budget)
	return nil
}

// Currency reads the currency setting, defaulting to INR when unset.
func (r *SQLiteRepository) Currency(ctx context.Context) (string, error) {
	value, err := r.setting(ctx, core.SettingCurrency)
	if err != nil {
		return "", err
	}
	if value == "" {
		return core.DefaultCurrency, nil
	}
	return value, nil
}

// CategoryBudgets returns the budget rows for the given YYYY-MM month.
func (r *SQLiteRepository) CategoryBudgets(ctx context.Context, month string) ([]core.CategoryBudget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, monthly_budget FROM budgets WHERE current_month = ?`, month)
	if err != nil {
		return nil, fmt.Errorf("list category budgets: %w", err)
	}
	defer rows.Close()

	budgets := []core.CategoryBudget{}
	for rows.Next() {
		var b core.CategoryBudget
		if err := rows.Scan(&b.Category, &b.MonthlyBudget); err != nil {
			return nil, fmt.Errorf("scan category budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category budgets: %w", err)
	}
	return budgets, nil
}

// SetCategoryBudget upserts the (category, month) budget row. The unique
// index on budgets(category, current_month) keys the conflict.
func (r *SQLiteRepository) SetCategoryBudget(ctx context.Context, category string, budget float64, month string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO budgets (category, monthly_budget, current_month, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(category, current_month)
		 DO UPDATE SET monthly_budget = excluded.monthly_budget, updated_at = CURRENT_TIMESTAMP`,
		category, budget, month)
	if err != nil {
		return fmt.Errorf("set category budget %s/%s: %w", category, month, err)
	}

	slog.InfoContext(ctx, "Category budget updated", "category", category, "month", month, "budget", budget)
	return nil
}

// DeleteCategoryBudget removes the (category, month) row. Deleting a pair
// that does not exist is a silent no-op.
func (r *SQLiteRepository) DeleteCategoryBudget(ctx context.Context, category, month string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM budgets WHERE category = ? AND current_month = ?`, category, month)
	if err != nil {
		return fmt.Errorf("delete category budget %s/%s: %w", category, month, err)
	}

	slog.InfoContext(ctx, "Category budget deleted", "category", category, "month", month)
	return nil
}

func (r *SQLiteRepository) setting(ctx context.Context, key string) (string, error) {
	var value sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting %s: %w", key, err)
	}
	return value.String, nil
}
