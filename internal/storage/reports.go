package storage

import (
	"context"
	"fmt"

	"github.com/apratimrana/FInTracker/internal/core"
)

// Summary computes the dashboard snapshot. The current month is an explicit
// parameter so the derivation is independent of the wall clock.
func (r *SQLiteRepository) Summary(ctx context.Context, month string) (core.Summary, error) {
	var s core.Summary

	err := r.db.QueryRowContext(ctx,
		`SELECT
			COALESCE(SUM(CASE WHEN type = 'Income' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'Expense' THEN amount ELSE 0 END), 0)
		 FROM transactions`).Scan(&s.TotalIncome, &s.TotalExpense)
	if err != nil {
		return core.Summary{}, fmt.Errorf("sum totals: %w", err)
	}
	s.Balance = s.TotalIncome - s.TotalExpense

	err = r.db.QueryRowContext(ctx,
		`SELECT
			COALESCE(SUM(CASE WHEN type = 'Income' THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN type = 'Expense' THEN amount ELSE 0 END), 0)
		 FROM transactions
		 WHERE strftime('%Y-%m', date) = ?`, month).Scan(&s.MonthlyIncome, &s.MonthlyExpense)
	if err != nil {
		return core.Summary{}, fmt.Errorf("sum monthly totals: %w", err)
	}

	s.MonthlyBudget, err = r.MonthlyBudget(ctx)
	if err != nil {
		return core.Summary{}, err
	}
	s.BudgetUsedPercentage, s.BudgetRemaining = core.BudgetUsage(s.MonthlyBudget, s.MonthlyExpense)

	budgets, err := r.CategoryBudgets(ctx, month)
	if err != nil {
		return core.Summary{}, err
	}
	s.CategoryBudgets = map[string]float64{}
	for _, b := range budgets {
		s.CategoryBudgets[b.Category] = b.MonthlyBudget
	}

	s.CategorySpending, err = r.categorySpending(ctx, month)
	if err != nil {
		return core.Summary{}, err
	}

	s.RecentTransactions, err = r.recentTransactions(ctx, 5)
	if err != nil {
		return core.Summary{}, err
	}

	s.Currency, err = r.Currency(ctx)
	if err != nil {
		return core.Summary{}, err
	}

	return s, nil
}

// ExpenseBreakdown sums all expense transactions by category, over all time.
func (r *SQLiteRepository) ExpenseBreakdown(ctx context.Context) ([]core.CategoryTotal, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, SUM(amount) AS total
		 FROM transactions
		 WHERE type = 'Expense'
		 GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("expense breakdown: %w", err)
	}
	defer rows.Close()

	totals := []core.CategoryTotal{}
	for rows.Next() {
		var ct core.CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, fmt.Errorf("scan expense breakdown: %w", err)
		}
		totals = append(totals, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expense breakdown: %w", err)
	}
	return totals, nil
}

// MonthlyComparison sums income and expense per distinct YYYY-MM month,
// sorted ascending by month. Months with only one transaction type report 0
// for the other sum.
func (r *SQLiteRepository) MonthlyComparison(ctx context.Context) ([]core.MonthlyTotals, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT
			strftime('%Y-%m', date) AS month,
			SUM(CASE WHEN type = 'Income' THEN amount ELSE 0 END) AS income,
			SUM(CASE WHEN type = 'Expense' THEN amount ELSE 0 END) AS expense
		 FROM transactions
		 GROUP BY strftime('%Y-%m', date)
		 ORDER BY month ASC`)
	if err != nil {
		return nil, fmt.Errorf("monthly comparison: %w", err)
	}
	defer rows.Close()

	months := []core.MonthlyTotals{}
	for rows.Next() {
		var mt core.MonthlyTotals
		if err := rows.Scan(&mt.Month, &mt.Income, &mt.Expense); err != nil {
			return nil, fmt.Errorf("scan monthly comparison: %w", err)
		}
		months = append(months, mt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate monthly comparison: %w", err)
	}
	return months, nil
}

// categorySpending sums the month's expense transactions by category.
func (r *SQLiteRepository) categorySpending(ctx context.Context, month string) (map[string]float64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT category, SUM(amount) AS spent
		 FROM transactions
		 WHERE type = 'Expense' AND strftime('%Y-%m', date) = ?
		 GROUP BY category`, month)
	if err != nil {
		return nil, fmt.Errorf("category spending: %w", err)
	}
	defer rows.Close()

	spending := map[string]float64{}
	for rows.Next() {
		var category string
		var spent float64
		if err := rows.Scan(&category, &spent); err != nil {
			return nil, fmt.Errorf("scan category spending: %w", err)
		}
		spending[category] = spent
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category spending: %w", err)
	}
	return spending, nil
}

// recentTransactions returns the most recent rows, newest date first with
// the identifier as tie-break so colliding dates stay deterministic.
func (r *SQLiteRepository) recentTransactions(ctx context.Context, limit int) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions ORDER BY date DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}
