package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/models"
	"github.com/AntrikshRawat/spend-manager-f-sub000/internal/storage"
)

// CreateAccount persists a new account and its ordered member list.
func (s *SQLiteStore) CreateAccount(ctx context.Context, account *models.Account) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	if account.CreatedAt == 0 {
		account.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO accounts (id, name, created_at) VALUES (?, ?, ?)",
		account.ID, account.Name, account.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	for position, memberID := range account.Members {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO account_members (account_id, member_id, position) VALUES (?, ?, ?)",
			account.ID, memberID, position,
		)
		if err != nil {
			return fmt.Errorf("failed to insert account member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetAccount retrieves an account with its members in position order.
func (s *SQLiteStore) GetAccount(ctx context.Context, accountID string) (*models.Account, error) {
	account := &models.Account{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM accounts WHERE id = ?",
		accountID,
	).Scan(&account.ID, &account.Name, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %s: %w", accountID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT member_id FROM account_members WHERE account_id = ? ORDER BY position",
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get account members: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var memberID string
		if err := rows.Scan(&memberID); err != nil {
			return nil, fmt.Errorf("failed to scan account member: %w", err)
		}
		account.Members = append(account.Members, memberID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account members: %w", err)
	}

	return account, nil
}
