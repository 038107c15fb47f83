package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apratimrana/FInTracker/internal/core"
)

func setupTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "finance_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func expense(category string, amount float64, date string) core.TransactionInput {
	return core.TransactionInput{
		Type:     core.TypeExpense,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
}

func income(category string, amount float64, date string) core.TransactionInput {
	return core.TransactionInput{
		Type:     core.TypeIncome,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
}

func TestNewSQLiteRepository_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "finance_test.db")

	repo, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	// Reopening the same file must not error or disturb seeded settings.
	repo, err = NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	defer repo.Close()

	currency, err := repo.Currency(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "INR", currency)

	budget, err := repo.MonthlyBudget(context.Background())
	require.NoError(t, err)
	assert.Zero(t, budget)
}

func TestSeedDefaults_DoNotOverwriteExisting(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "finance_test.db")
	ctx := context.Background()

	repo, err := NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	require.NoError(t, repo.SetMonthlyBudget(ctx, 2500))
	require.NoError(t, repo.Close())

	repo, err = NewSQLiteRepository(dbPath)
	require.NoError(t, err)
	defer repo.Close()

	budget, err := repo.MonthlyBudget(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 2500.0, budget, 1e-9)
}

func TestTransactionCRUD(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	t.Run("create then read back", func(t *testing.T) {
		in := core.TransactionInput{
			Type:          core.TypeExpense,
			Amount:        199.99,
			Category:      "Food",
			Description:   "groceries",
			Date:          "2024-03-14",
			PaymentMethod: "card",
			Notes:         "weekly run",
		}

		id, err := repo.CreateTransaction(ctx, in)
		require.NoError(t, err)
		assert.NotZero(t, id)

		got, err := repo.GetTransaction(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, in.Type, got.Type)
		assert.InDelta(t, in.Amount, got.Amount, 1e-9)
		assert.Equal(t, in.Category, got.Category)
		assert.Equal(t, in.Description, got.Description)
		assert.Equal(t, in.Date, got.Date)
		assert.Equal(t, in.PaymentMethod, got.PaymentMethod)
		assert.Equal(t, in.Notes, got.Notes)
		assert.NotEmpty(t, got.CreatedAt)
		assert.NotEmpty(t, got.UpdatedAt)
	})

	t.Run("optional fields default to empty strings", func(t *testing.T) {
		id, err := repo.CreateTransaction(ctx, expense("Misc", 10, "2024-03-15"))
		require.NoError(t, err)

		got, err := repo.GetTransaction(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, got.Description)
		assert.Empty(t, got.PaymentMethod)
		assert.Empty(t, got.Notes)
	})

	t.Run("update reflects new values", func(t *testing.T) {
		id, err := repo.CreateTransaction(ctx, expense("Food", 50, "2024-03-16"))
		require.NoError(t, err)

		updated := core.TransactionInput{
			Type:        core.TypeIncome,
			Amount:      75.5,
			Category:    "Salary",
			Description: "corrected entry",
			Date:        "2024-03-17",
		}
		require.NoError(t, repo.UpdateTransaction(ctx, id, updated))

		got, err := repo.GetTransaction(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, core.TypeIncome, got.Type)
		assert.InDelta(t, 75.5, got.Amount, 1e-9)
		assert.Equal(t, "Salary", got.Category)
		assert.Equal(t, "corrected entry", got.Description)
		assert.Equal(t, "2024-03-17", got.Date)
		assert.NotEmpty(t, got.UpdatedAt)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		id, err := repo.CreateTransaction(ctx, expense("Food", 5, "2024-03-18"))
		require.NoError(t, err)

		require.NoError(t, repo.DeleteTransaction(ctx, id))

		var nfe *core.NotFoundError
		_, err = repo.GetTransaction(ctx, id)
		require.ErrorAs(t, err, &nfe)
		assert.Equal(t, id, nfe.ID)

		assert.ErrorAs(t, repo.UpdateTransaction(ctx, id, expense("Food", 5, "2024-03-18")), &nfe)
		assert.ErrorAs(t, repo.DeleteTransaction(ctx, id), &nfe)
	})

	t.Run("missing identifier yields not found", func(t *testing.T) {
		var nfe *core.NotFoundError

		_, err := repo.GetTransaction(ctx, 999999)
		assert.ErrorAs(t, err, &nfe)
		assert.ErrorAs(t, repo.UpdateTransaction(ctx, 999999, expense("Food", 1, "2024-01-01")), &nfe)
		assert.ErrorAs(t, repo.DeleteTransaction(ctx, 999999), &nfe)
	})
}

func TestListTransactions_OrderedByDateDescending(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateTransaction(ctx, expense("Food", 10, "2024-01-05"))
	require.NoError(t, err)
	_, err = repo.CreateTransaction(ctx, income("Salary", 1000, "2024-02-01"))
	require.NoError(t, err)
	_, err = repo.CreateTransaction(ctx, expense("Travel", 30, "2023-12-24"))
	require.NoError(t, err)

	all, err := repo.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2024-02-01", all[0].Date)
	assert.Equal(t, "2024-01-05", all[1].Date)
	assert.Equal(t, "2023-12-24", all[2].Date)
}

func TestListTransactions_EmptyStore(t *testing.T) {
	repo := setupTestRepo(t)

	all, err := repo.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NotNil(t, all)
}

func TestMonthlyBudgetSetting(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	t.Run("upsert replaces previous value", func(t *testing.T) {
		require.NoError(t, repo.SetMonthlyBudget(ctx, 1000))
		require.NoError(t, repo.SetMonthlyBudget(ctx, 1500))

		budget, err := repo.MonthlyBudget(ctx)
		require.NoError(t, err)
		assert.InDelta(t, 1500.0, budget, 1e-9)
	})
}

func TestCategoryBudgets(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()
	const month = "2024-06"

	t.Run("upsert keeps one row per category and month", func(t *testing.T) {
		require.NoError(t, repo.SetCategoryBudget(ctx, "Food", 500, month))
		require.NoError(t, repo.SetCategoryBudget(ctx, "Food", 650, month))

		budgets, err := repo.CategoryBudgets(ctx, month)
		require.NoError(t, err)
		require.Len(t, budgets, 1)
		assert.Equal(t, "Food", budgets[0].Category)
		assert.InDelta(t, 650.0, budgets[0].MonthlyBudget, 1e-9)
	})

	t.Run("months are independent", func(t *testing.T) {
		require.NoError(t, repo.SetCategoryBudget(ctx, "Food", 400, "2024-07"))

		budgets, err := repo.CategoryBudgets(ctx, month)
		require.NoError(t, err)
		require.Len(t, budgets, 1)
		assert.InDelta(t, 650.0, budgets[0].MonthlyBudget, 1e-9)
	})

	t.Run("delete removes the pair", func(t *testing.T) {
		require.NoError(t, repo.DeleteCategoryBudget(ctx, "Food", month))

		budgets, err := repo.CategoryBudgets(ctx, month)
		require.NoError(t, err)
		assert.Empty(t, budgets)
	})

	t.Run("deleting an absent pair is a silent no-op", func(t *testing.T) {
		assert.NoError(t, repo.DeleteCategoryBudget(ctx, "Nonexistent", month))
	})
}
