// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/models"
)

var (
	// ErrNotFound is wrapped by stores when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is wrapped by stores when a record collides with an existing one.
	ErrConflict = errors.New("already exists")
)

// Store defines the interface for account, member and transaction storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the ledger or service layers.
type Store interface {
	// CreateMember persists a new member. ID and CreatedAt are filled in when empty.
	// Returns an error wrapping ErrConflict if the email is taken.
	CreateMember(ctx context.Context, member *models.Member) error

	// GetMembersByIDs returns the members that exist among ids, keyed by ID.
	GetMembersByIDs(ctx context.Context, ids []string) (map[string]*models.Member, error)

	// CreateAccount persists a new account with its ordered member list.
	CreateAccount(ctx context.Context, account *models.Account) error

	// GetAccount retrieves an account with members in their stored order.
	// Returns an error wrapping ErrNotFound if the account does not exist.
	GetAccount(ctx context.Context, accountID string) (*models.Account, error)

	// CreateTransaction persists a transaction and its member expenses.
	CreateTransaction(ctx context.Context, txn *models.Transaction) error

	// GetTransaction retrieves a transaction by its ID.
	GetTransaction(ctx context.Context, txnID string) (*models.Transaction, error)

	// ListTransactionsByAccount returns an account's transactions, newest first.
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]*models.Transaction, error)

	// Close releases any resources held by the store.
	Close() error
}
