// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/models"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// PRAGMA foreign_keys is per connection; keep a single one.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ping checks that the database is reachable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CreateTransaction persists a transaction and its member expenses in order.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.CreatedAt == 0 {
		txn.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (id, account_id, description, amount, payer_id, split, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		txn.ID, txn.AccountID, txn.Description, txn.Amount, txn.Payer, txn.Split, txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	for position, amount := range txn.MemberExpenses {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO member_expenses (transaction_id, position, amount) VALUES (?, ?, ?)",
			txn.ID, position, amount,
		)
		if err != nil {
			return fmt.Errorf("failed to insert member expense: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetTransaction retrieves a transaction by ID, including its member expenses.
func (s *SQLiteStore) GetTransaction(ctx context.Context, txnID string) (*models.Transaction, error) {
	txn := &models.Transaction{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, account_id, description, amount, payer_id, split, created_at
		 FROM transactions WHERE id = ?`,
		txnID,
	).Scan(&txn.ID, &txn.AccountID, &txn.Description, &txn.Amount, &txn.Payer, &txn.Split, &txn.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", txnID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	expenses, err := s.memberExpenses(ctx, txn.ID)
	if err != nil {
		return nil, err
	}
	txn.MemberExpenses = expenses

	return txn, nil
}

// ListTransactionsByAccount retrieves an account's transactions, newest first.
func (s *SQLiteStore) ListTransactionsByAccount(ctx context.Context, accountID string) ([]*models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, description, amount, payer_id, split, created_at
		 FROM transactions WHERE account_id = ?
		 ORDER BY created_at DESC, rowid DESC`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	var txns []*models.Transaction
	for rows.Next() {
		txn := &models.Transaction{}
		if err := rows.Scan(&txn.ID, &txn.AccountID, &txn.Description, &txn.Amount, &txn.Payer, &txn.Split, &txn.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	for _, txn := range txns {
		expenses, err := s.memberExpenses(ctx, txn.ID)
		if err != nil {
			return nil, err
		}
		txn.MemberExpenses = expenses
	}

	return txns, nil
}

func (s *SQLiteStore) memberExpenses(ctx context.Context, txnID string) ([]int64, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT amount FROM member_expenses WHERE transaction_id = ? ORDER BY position",
		txnID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get member expenses: %w", err)
	}
	defer rows.Close()

	var expenses []int64
	for rows.Next() {
		var amount int64
		if err := rows.Scan(&amount); err != nil {
			return nil, fmt.Errorf("failed to scan member expense: %w", err)
		}
		expenses = append(expenses, amount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate member expenses: %w", err)
	}

	return expenses, nil
}
