package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/apratimrana/FInTracker/internal/core"
)

const transactionColumns = `id, type, amount, category,
	COALESCE(description, ''), date, COALESCE(payment_method, ''),
	COALESCE(notes, ''), COALESCE(created_at, ''), COALESCE(updated_at, '')`

// CreateTransaction persists a new transaction row and returns its
// assigned identifier.
func (r *SQLiteRepository) CreateTransaction(ctx context.Context, in core.TransactionInput) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (type, amount, category, description, date, payment_method, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		in.Type, in.Amount, in.Category, in.Description, in.Date, in.PaymentMethod, in.Notes)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	slog.InfoContext(ctx, "Transaction saved",
		"id", id,
		"type", in.Type,
		"category", in.Category,
		"amount", in.Amount,
		"date", in.Date)

	return id, nil
}

// GetTransaction returns the transaction with the given identifier, or a
// core.NotFoundError when no such row exists.
func (r *SQLiteRepository) GetTransaction(ctx context.Context, id int64) (core.Transaction, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Transaction{}, &core.NotFoundError{ID: id}
	}
	if err != nil {
		return core.Transaction{}, fmt.Errorf("get transaction %d: %w", id, err)
	}
	return txn, nil
}

// ListTransactions returns every transaction ordered by date descending.
func (r *SQLiteRepository) ListTransactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// UpdateTransaction overwrites every writable field of an existing row and
// refreshes its updated timestamp. The row's existence is checked first so
// a missing identifier surfaces as core.NotFoundError, not a silent no-op.
func (r *SQLiteRepository) UpdateTransaction(ctx context.Context, id int64, in core.TransactionInput) error {
	if err := r.requireTransaction(ctx, id); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx,
		`UPDATE transactions
		 SET type = ?, amount = ?, category = ?, description = ?, date = ?,
		     payment_method = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		in.Type, in.Amount, in.Category, in.Description, in.Date, in.PaymentMethod, in.Notes, id)
	if err != nil {
		return fmt.Errorf("update transaction %d: %w", id, err)
	}

	slog.InfoContext(ctx, "Transaction updated", "id", id, "type", in.Type, "category", in.Category)
	return nil
}

// DeleteTransaction removes the row permanently, returning
// core.NotFoundError when the identifier does not exist.
func (r *SQLiteRepository) DeleteTransaction(ctx context.Context, id int64) error {
	if err := r.requireTransaction(ctx, id); err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}

	slog.InfoContext(ctx, "Transaction deleted", "id", id)
	return nil
}

func (r *SQLiteRepository) requireTransaction(ctx context.Context, id int64) error {
	var got int64
	err := r.db.QueryRowContext(ctx, `SELECT id FROM transactions WHERE id = ?`, id).Scan(&got)
	if errors.Is(err, sql.ErrNoRows) {
		return &core.NotFoundError{ID: id}
	}
	if err != nil {
		return fmt.Errorf("check transaction %d: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (core.Transaction, error) {
	var t core.Transaction
	err := row.Scan(&t.ID, &t.Type, &t.Amount, &t.Category,
		&t.Description, &t.Date, &t.PaymentMethod,
		&t.Notes, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func collectTransactions(rows *sql.Rows) ([]core.Transaction, error) {
	transactions := []core.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return transactions, nil
}
